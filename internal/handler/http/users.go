package http

import (
	"net/http"

	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/MKhiriev/fit-journal/internal/utils"
	"github.com/MKhiriev/fit-journal/models"
)

// register creates an account from {username, password, full_name} and
// responds 201 with the stored user. The password is never echoed.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) error {
	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		return err
	}

	created, err := h.services.AuthService.RegisterUser(r.Context(), user)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Info().Int64("user_id", created.UserID).Msg("user registered")
	_, err = utils.WriteJSON(w, created.Public(), http.StatusCreated)
	return err
}

// login checks {username, password} and responds with a bearer token, both
// in the body as {"authToken": ...} and in the Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	var credentials models.User
	if err := decodeJSON(r, &credentials); err != nil {
		return err
	}

	ctx := r.Context()
	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		return err
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return err
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	_, err = utils.WriteJSON(w, models.LoginResponse{AuthToken: token.SignedString}, http.StatusOK)
	return err
}

// me returns the authenticated user.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) error {
	id, err := userID(r)
	if err != nil {
		return err
	}

	user, err := h.services.AuthService.CurrentUser(r.Context(), id)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user.Public(), http.StatusOK)
	return err
}
