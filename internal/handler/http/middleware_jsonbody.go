package http

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/MKhiriev/fit-journal/internal/app"
	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/MKhiriev/fit-journal/internal/utils"
	"github.com/tidwall/gjson"
)

// maxJSONBodySize is the largest JSON body accepted (100 KiB).
const maxJSONBodySize = 100 << 10

// withJSONBody reads JSON request bodies, rejects malformed or oversized
// ones and stores the raw document in the request context for handlers.
// Requests of other content types pass through untouched.
func (h *Handler) withJSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody || !isJSONContent(r) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBodySize))
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				log.Debug().Int64("limit", maxBytesErr.Limit).Msg("request body too large")
				utils.WriteError(w, app.MsgRequestEntityTooLarge, http.StatusRequestEntityTooLarge)
				return
			}
			log.Debug().Err(err).Msg("error reading request body")
			utils.WriteError(w, app.MsgInvalidJSONBody, http.StatusBadRequest)
			return
		}

		if len(bytes.TrimSpace(body)) == 0 {
			r.Body = http.NoBody
			next.ServeHTTP(w, r)
			return
		}

		if !gjson.ValidBytes(body) {
			log.Debug().Msg("malformed JSON body")
			utils.WriteError(w, app.MsgInvalidJSONBody, http.StatusBadRequest)
			return
		}

		r = r.WithContext(utils.WithJSONBody(r.Context(), body))
		r.Body = io.NopCloser(bytes.NewReader(body))
		r.ContentLength = int64(len(body))

		next.ServeHTTP(w, r)
	})
}

func isJSONContent(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}
