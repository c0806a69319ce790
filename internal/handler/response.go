package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"ebill-api/internal/model"
	"ebill-api/pkg/apierror"
)

func writeSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{Success: true, Data: data})
}

// writeError translates domain errors into the error envelope.
// Anything unclassified is logged and reduced to a generic 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal Server Error"

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		message = apiErr.Message
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		message = "User not found"
	case errors.Is(err, model.ErrInvalidToken):
		status = http.StatusUnauthorized
		message = "Unauthorized: Invalid token"
	default:
		slog.Error("unhandled error", "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{Message: message})
}
