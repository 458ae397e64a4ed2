package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/fit-journal/internal/config"
	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/MKhiriev/fit-journal/internal/mock"
	"github.com/MKhiriev/fit-journal/internal/service"
	"github.com/MKhiriev/fit-journal/models"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

// testConfig returns the default configuration in mode without a static
// directory.
func testConfig(mode config.Mode) config.StructuredConfig {
	cfg := *config.Defaults()
	cfg.App.Env = mode
	cfg.Server.StaticDir = ""
	return cfg
}

// newTestHandler creates a Handler with a nop logger and no services.
func newTestHandler(mode config.Mode) *Handler {
	return NewHandler(&service.Services{}, testConfig(mode), logger.Nop())
}

// injectNopLogger puts a disabled zerolog.Logger into the request context
// the same way withTraceID does.
func injectNopLogger(r *http.Request) *http.Request {
	nop := zerolog.Nop()
	return r.WithContext(nop.WithContext(r.Context()))
}

// mockedServices holds the gomock doubles behind a Handler built by
// newMockedHandler.
type mockedServices struct {
	auth             *mock.MockAuthService
	exercises        *mock.MockJournalService[models.Exercise]
	bodyParts        *mock.MockJournalService[models.BodyPart]
	muscleGroups     *mock.MockJournalService[models.MuscleGroup]
	meals            *mock.MockJournalService[models.Meal]
	bodyCompositions *mock.MockJournalService[models.BodyComposition]
}

func newMockedServices(t *testing.T) (*service.Services, *mockedServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &mockedServices{
		auth:             mock.NewMockAuthService(ctrl),
		exercises:        mock.NewMockJournalService[models.Exercise](ctrl),
		bodyParts:        mock.NewMockJournalService[models.BodyPart](ctrl),
		muscleGroups:     mock.NewMockJournalService[models.MuscleGroup](ctrl),
		meals:            mock.NewMockJournalService[models.Meal](ctrl),
		bodyCompositions: mock.NewMockJournalService[models.BodyComposition](ctrl),
	}

	return &service.Services{
		AuthService:      m.auth,
		Exercises:        m.exercises,
		BodyParts:        m.bodyParts,
		MuscleGroups:     m.muscleGroups,
		Meals:            m.meals,
		BodyCompositions: m.bodyCompositions,
	}, m
}

// newMockedHandler returns the full router for cfg backed by mocks.
func newMockedHandler(t *testing.T, cfg config.StructuredConfig) (http.Handler, *mockedServices) {
	t.Helper()

	services, m := newMockedServices(t)
	return NewHandler(services, cfg, logger.Nop()).Init(), m
}

// expectToken makes the auth mock accept token for userID.
func (m *mockedServices) expectToken(token string, userID int64) {
	m.auth.EXPECT().
		ParseToken(gomock.Any(), token).
		Return(models.Token{SignedString: token, UserID: userID}, nil).
		AnyTimes()
}
