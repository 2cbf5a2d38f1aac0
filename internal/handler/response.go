package handler

import (
	"encoding/json"
	"net/http"

	"github.com/suar-net/bestsellers-gw/internal/model"
)

// statusMessages holds the generic message sent with each error status.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable entity",
	http.StatusInternalServerError: "server error",
}

func statusMessage(code int) string {
	if msg, ok := statusMessages[code]; ok {
		return msg
	}
	return http.StatusText(code)
}

// respondWithSuccess wraps an upstream payload in the success envelope.
func respondWithSuccess(w http.ResponseWriter, payload json.RawMessage) {
	respondWithJson(w, http.StatusOK, model.Envelope{Success: true, Response: payload})
}

// respondWithError sends the generic error envelope for code.
func respondWithError(w http.ResponseWriter, code int) {
	respondWithJson(w, code, model.ErrorEnvelope{
		Success: false,
		Error:   code,
		Message: statusMessage(code),
	})
}

func respondWithJson(w http.ResponseWriter, code int, payload interface{}) {
	dat, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"error":500,"message":"server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(dat)
}
