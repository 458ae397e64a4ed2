package http

import (
	"net/http"

	"github.com/MKhiriev/fit-journal/internal/app"
	"github.com/MKhiriev/fit-journal/internal/utils"
	"github.com/MKhiriev/fit-journal/models"
	"github.com/go-chi/chi/v5"
)

// Path prefixes of the resource routers.
const (
	UsersPrefix            = "/api/users"
	ExercisesPrefix        = "/api/exercises"
	BodyPartsPrefix        = "/api/body-parts"
	MuscleGroupsPrefix     = "/api/muscle-groups"
	MealsPrefix            = "/api/meals"
	BodyCompositionsPrefix = "/api/body-compositions"
)

// Init builds the router with every pipeline stage installed in order.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	for _, stage := range h.Pipeline() {
		router.Use(stage.Middleware)
	}

	// set before any sub-router is mounted so they inherit them
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Get("/", h.hello)
	router.Head("/", h.hello)

	// routes without authorization
	router.Route(UsersPrefix, func(r chi.Router) {
		r.Post("/", h.handle(h.register))
		r.Post("/login", h.handle(h.login))
		r.With(h.auth).Get("/me", h.handle(h.me))
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		mountJournal[models.Exercise](r, h, ExercisesPrefix, h.services.Exercises)
		mountJournal[models.BodyPart](r, h, BodyPartsPrefix, h.services.BodyParts)
		mountJournal[models.MuscleGroup](r, h, MuscleGroupsPrefix, h.services.MuscleGroups)
		mountJournal[models.Meal](r, h, MealsPrefix, h.services.Meals)
		mountJournal[models.BodyComposition](r, h, BodyCompositionsPrefix, h.services.BodyCompositions)
	})

	return router
}

func (h *Handler) hello(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(app.MsgHelloWorld))
}

func (h *Handler) notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
