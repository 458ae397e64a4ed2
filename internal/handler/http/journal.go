// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/fit-journal/internal/service"
	"github.com/MKhiriev/fit-journal/internal/utils"
	"github.com/MKhiriev/fit-journal/models"
	"github.com/go-chi/chi/v5"
)

// journalRouter serves CRUD for one kind of journal record under prefix.
// Every operation is scoped to the user the authentication gate stored in
// the request context.
type journalRouter[T any, P models.RecordPtr[T]] struct {
	prefix  string
	service service.JournalService[T]
}

// mountJournal registers the record routes for svc under prefix on r.
func mountJournal[T any, P models.RecordPtr[T]](r chi.Router, h *Handler, prefix string, svc service.JournalService[T]) {
	jr := &journalRouter[T, P]{prefix: prefix, service: svc}

	r.Route(prefix, func(r chi.Router) {
		r.Get("/", h.handle(jr.list))
		r.Post("/", h.handle(jr.create))
		r.Get("/{id}", h.handle(jr.get))
		r.Put("/{id}", h.handle(jr.replace))
		r.Patch("/{id}", h.handle(jr.update))
		r.Delete("/{id}", h.handle(jr.delete))
	})
}

func (jr *journalRouter[T, P]) list(w http.ResponseWriter, r *http.Request) error {
	owner, err := userID(r)
	if err != nil {
		return err
	}

	records, err := jr.service.List(r.Context(), owner)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, records, http.StatusOK)
	return err
}

func (jr *journalRouter[T, P]) create(w http.ResponseWriter, r *http.Request) error {
	owner, err := userID(r)
	if err != nil {
		return err
	}

	var record T
	if err = decodeJSON(r, P(&record)); err != nil {
		return err
	}
	*P(&record).Meta() = models.Owned{UserID: owner}

	created, err := jr.service.Create(r.Context(), record)
	if err != nil {
		return err
	}

	id := P(&created).Meta().ID
	w.Header().Set("Location", jr.prefix+"/"+strconv.FormatInt(id, 10))
	_, err = utils.WriteJSON(w, created, http.StatusCreated)
	return err
}

func (jr *journalRouter[T, P]) get(w http.ResponseWriter, r *http.Request) error {
	owner, err := userID(r)
	if err != nil {
		return err
	}
	id, err := idParam(r)
	if err != nil {
		return err
	}

	record, err := jr.service.Get(r.Context(), owner, id)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, record, http.StatusOK)
	return err
}

// update merges the JSON document onto the stored record, so fields the
// client leaves out keep their values.
func (jr *journalRouter[T, P]) update(w http.ResponseWriter, r *http.Request) error {
	owner, err := userID(r)
	if err != nil {
		return err
	}
	id, err := idParam(r)
	if err != nil {
		return err
	}

	ctx := r.Context()
	record, err := jr.service.Get(ctx, owner, id)
	if err != nil {
		return err
	}
	meta := *P(&record).Meta()

	if err = decodeJSON(r, P(&record)); err != nil {
		return err
	}
	*P(&record).Meta() = meta

	return jr.save(w, r, record)
}

// replace overwrites every field of the stored record with the document.
func (jr *journalRouter[T, P]) replace(w http.ResponseWriter, r *http.Request) error {
	owner, err := userID(r)
	if err != nil {
		return err
	}
	id, err := idParam(r)
	if err != nil {
		return err
	}

	var record T
	if err = decodeJSON(r, P(&record)); err != nil {
		return err
	}
	*P(&record).Meta() = models.Owned{ID: id, UserID: owner}

	return jr.save(w, r, record)
}

func (jr *journalRouter[T, P]) save(w http.ResponseWriter, r *http.Request, record T) error {
	updated, err := jr.service.Update(r.Context(), record)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, updated, http.StatusOK)
	return err
}

func (jr *journalRouter[T, P]) delete(w http.ResponseWriter, r *http.Request) error {
	owner, err := userID(r)
	if err != nil {
		return err
	}
	id, err := idParam(r)
	if err != nil {
		return err
	}

	if err = jr.service.Delete(r.Context(), owner, id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
