package handler

import (
	"net/http"

	models "analysisdesk/internal/domain/models/analysis"
	"analysisdesk/internal/httputil"
)

// toPatch maps a decoded JSON PATCH field onto the transport-agnostic tri-state
func toPatch[T any](o httputil.Optional[T]) models.Patch[T] {
	switch {
	case !o.Present:
		return models.Unchanged[T]()
	case o.Value == nil:
		return models.Cleared[T]()
	default:
		return models.Set(*o.Value)
	}
}

// pathID parses the {id} path parameter, writing a 400 on failure
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := httputil.PathInt64(r, "id")
	if err != nil {
		httputil.RespondError(w, r, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}

// parseBody decodes the JSON body, writing a 400 on failure
func parseBody(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := httputil.ParseJSON(w, r, dest); err != nil {
		httputil.RespondError(w, r, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
