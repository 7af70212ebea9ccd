package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/invest-portal/models"
)

// WriteJSON serializes data and writes it with the given status code and a
// JSON content type. It returns the number of body bytes written.
//
// If marshaling fails the client receives a 500 and the wrapped error is
// returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes {"error": message} with statusCode.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
