package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/rs/zerolog"
)

type accessLogKey struct{}

// accessRecord collects values known only deeper in the pipeline (the
// authenticated user) so the access log can report them.
type accessRecord struct {
	userID int64
}

func recordUserID(ctx context.Context, userID int64) {
	if rec, ok := ctx.Value(accessLogKey{}).(*accessRecord); ok {
		rec.userID = userID
	}
}

// withLogging writes one access log entry per request. Production logs the
// short field set (method, uri, status, size, duration); other modes add the
// client address, protocol, user, referer and user agent.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}
		rec := &accessRecord{}

		next.ServeHTTP(lw, r.WithContext(context.WithValue(r.Context(), accessLogKey{}, rec)))

		duration := time.Since(start)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		event := log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size)

		if !h.mode.IsProduction() {
			event = commonFields(event, r, rec)
		}

		event.Send()
	})
}

func commonFields(event *zerolog.Event, r *http.Request, rec *accessRecord) *zerolog.Event {
	event = event.
		Str("remote_addr", r.RemoteAddr).
		Str("proto", r.Proto)

	if rec.userID != 0 {
		event = event.Int64("user_id", rec.userID)
	}
	if referer := r.Referer(); referer != "" {
		event = event.Str("referer", referer)
	}
	if ua := r.UserAgent(); ua != "" {
		event = event.Str("user_agent", ua)
	}
	return event
}
