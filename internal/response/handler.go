package response

import (
	"log/slog"
	"net/http"
)

type ResponseHandler interface {
	WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any)
	WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string)
	WriteErrorDetails(w http.ResponseWriter, r *http.Request, status int, code, message, details string)
	HandleError(w http.ResponseWriter, r *http.Request, err error)
	WriteCSV(w http.ResponseWriter, r *http.Request, filename string, body []byte)
	WriteRaw(w http.ResponseWriter, r *http.Request, status int, contentType string, body []byte)
}

type responseHandler struct {
	Log *slog.Logger
}

func New(log *slog.Logger) *responseHandler {
	return &responseHandler{Log: log}
}
