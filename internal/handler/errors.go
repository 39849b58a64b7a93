package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"analysisdesk/internal/domain"
	"analysisdesk/internal/httputil"
)

// handleError converts domain errors to HTTP responses.
// Errors that carry no status code are logged and reported as 500 without their detail.
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, r, httpErr.StatusCode(), err.Error())
		return
	}

	logger.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", httputil.GetRequestID(r.Context()),
		"error", err,
	)
	httputil.RespondError(w, r, http.StatusInternalServerError, "internal server error")
}
