// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/fit-journal/internal/app"
	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/MKhiriev/fit-journal/internal/utils"
	"github.com/MKhiriev/fit-journal/models"
)

// appHandler is a route handler that reports failures by returning them.
type appHandler func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to [http.HandlerFunc]. Errors that map to a client status
// are written as {"error":{"message":...}}; all others go to the terminal
// renderer.
func (h *Handler) handle(fn appHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.renderError(w, r, err)
		}
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		h.renderServerError(w, r, err, nil)
		return
	}

	logger.FromRequest(r).Debug().Err(err).Int("status", status).Msg("client error")
	utils.WriteError(w, clientMessage(err), status)
}

// renderServerError writes a 500. Production clients only ever see
// {"error":{"message":"server error"}}; in other modes the body carries the
// error message, its type, its wrap chain and, for panics, the stack.
func (h *Handler) renderServerError(w http.ResponseWriter, r *http.Request, err error, stack []byte) {
	log := logger.FromRequest(r)

	if h.mode.IsProduction() {
		log.Error().Err(err).Msg("request failed")
		utils.WriteError(w, app.MsgServerError, http.StatusInternalServerError)
		return
	}

	event := log.Error().Err(err)
	if stack != nil {
		event = event.Bytes("stack", stack)
	}
	event.Msg("request failed")

	utils.WriteJSON(w, models.DebugErrorResponse{
		Message: err.Error(),
		Error: models.ErrorDetail{
			Type:  fmt.Sprintf("%T", err),
			Chain: errorChain(err),
			Stack: string(stack),
		},
	}, http.StatusInternalServerError)
}

// withRecover turns panics raised further down the pipeline into server
// error responses. http.ErrAbortHandler is re-raised so net/http can abort
// the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = errors.New(fmt.Sprint(rec))
			}
			h.renderServerError(w, r, err, debug.Stack())
		}()

		next.ServeHTTP(w, r)
	})
}
