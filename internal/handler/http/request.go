package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/fit-journal/internal/utils"
	"github.com/go-chi/chi/v5"
)

// decodeJSON unmarshals the body stored by the JSON body stage into v.
// Fields absent from the document keep their current values in v.
func decodeJSON(r *http.Request, v any) error {
	body, ok := utils.JSONBodyFromContext(r.Context())
	if !ok {
		return fmt.Errorf("%w: %w", ErrBadRequest, ErrMissingBody)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return nil
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %w", ErrBadRequest, ErrInvalidID)
	}
	return id, nil
}

func userID(r *http.Request) (int64, error) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ErrNoUserID
	}
	return id, nil
}
