package handler

import (
	"net/http"

	"github.com/goccy/go-json"
)

type messageBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Details []any  `json:"details,omitempty"`
}

func Index(w http.ResponseWriter) {
	Message(w, http.StatusOK, "hobbyplan index")
}

func Message(w http.ResponseWriter, status int, message string, details ...any) {
	JSON(w, status, messageBody{Message: message, Details: details})
}

func Error(w http.ResponseWriter, status int, message string, err error, details ...any) {
	body := messageBody{Message: message, Details: details}
	if err != nil {
		body.Error = err.Error()
	}
	JSON(w, status, body)
}

// JSON writes v as the response body. When v cannot be marshalled the
// response becomes a 500 that still carries valid json.
func JSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(messageBody{Message: "could not marshal response", Error: err.Error()})
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
