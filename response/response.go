// Package response writes the JSON bodies shared by handlers and middleware.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const ServerErrorMessage = "the server encountered a problem and could not process your request"

type Envelope map[string]interface{}

// JSON writes data as tab-indented JSON followed by a newline.
func JSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

// Message writes {"message": message}.
func Message(w http.ResponseWriter, r *http.Request, status int, message string) {
	write(w, r, status, Envelope{"message": message})
}

// Error writes {"error": message}.
func Error(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	write(w, r, status, Envelope{"error": message})
}

func ServerError(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusInternalServerError, ServerErrorMessage)
}

func write(w http.ResponseWriter, r *http.Request, status int, env Envelope) {
	if err := JSON(w, status, env, nil); err != nil {
		slog.ErrorContext(r.Context(), "failed to write response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
