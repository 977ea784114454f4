package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/cecil-the-coder/animal-fact-kit/pkg/backend/middleware"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/backendtypes"
)

// SendJSON writes a JSON response with the given status
func SendJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// SendError writes the stable error body and logs it with the request ID
func SendError(w http.ResponseWriter, r *http.Request, statusCode int, body backendtypes.ErrorResponse) {
	log.Printf("[%s] request failed: status=%d error=%q animal=%q category=%q",
		middleware.GetRequestID(r.Context()), statusCode, body.Error, body.Animal, body.Category)
	SendJSON(w, statusCode, body)
}
