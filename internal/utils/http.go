package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/avatar-dashboard/models"
)

// marshalFailureBody is written when a response value cannot be encoded.
const marshalFailureBody = `{"success":false,"error":"internal server error"}`

// WriteJSON encodes data and writes it with statusCode. When data cannot be
// encoded the client gets a 500 failure envelope instead.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteResult writes the {success, data, error} envelope. A nil err produces
// a successful result carrying data; otherwise error holds message, or
// err.Error() when message is empty.
func WriteResult(w http.ResponseWriter, data any, err error, message string, statusCode int) (int, error) {
	if err == nil {
		return WriteJSON(w, models.APIResult{Success: true, Data: data}, statusCode)
	}

	if message == "" {
		message = err.Error()
	}

	return WriteJSON(w, models.APIResult{Success: false, Error: message}, statusCode)
}

// WriteBinary writes raw bytes such as images with an explicit content type
// and length.
func WriteBinary(w http.ResponseWriter, data []byte, contentType string, statusCode int) (int, error) {
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(statusCode)

	return w.Write(data)
}
