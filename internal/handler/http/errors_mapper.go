package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fit-journal/internal/service"
)

// errorStatus maps a sentinel to the status written for it. detailed
// entries expose the full error text to the client because it names the
// offending field; the rest only expose the sentinel's own message.
type errorStatus struct {
	target   error
	status   int
	detailed bool
}

var errorStatusMap = []errorStatus{
	{target: ErrBadRequest, status: http.StatusBadRequest, detailed: true},
	{target: service.ErrValidation, status: http.StatusBadRequest, detailed: true},
	{target: service.ErrInvalidReference, status: http.StatusBadRequest},
	{target: service.ErrWrongCredentials, status: http.StatusUnauthorized},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized},
	{target: service.ErrNotFound, status: http.StatusNotFound},
	{target: service.ErrUsernameTaken, status: http.StatusConflict},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// clientMessage returns the message shown to clients for a 4xx error.
func clientMessage(err error) string {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			if e.detailed {
				return err.Error()
			}
			return e.target.Error()
		}
	}
	return err.Error()
}

// errorChain lists the messages of err and of every error it wraps, walking
// both single and joined wrappers depth first.
func errorChain(err error) []string {
	var chain []string
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		chain = append(chain, e.Error())
		switch u := e.(type) {
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		}
	}
	walk(err)
	return chain
}
