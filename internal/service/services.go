package service

import (
	"github.com/MKhiriev/fit-journal/internal/config"
	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/MKhiriev/fit-journal/internal/store"
	"github.com/MKhiriev/fit-journal/internal/validators"
	"github.com/MKhiriev/fit-journal/models"
)

type Services struct {
	AuthService AuthService

	BodyParts        JournalService[models.BodyPart]
	MuscleGroups     JournalService[models.MuscleGroup]
	Exercises        JournalService[models.Exercise]
	Meals            JournalService[models.Meal]
	BodyCompositions JournalService[models.BodyComposition]
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	journal := validators.NewJournalValidator()

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		BodyParts:        NewJournalService[models.BodyPart](storages.BodyParts, journal, logger),
		MuscleGroups:     NewJournalService[models.MuscleGroup](storages.MuscleGroups, journal, logger),
		Exercises:        NewJournalService[models.Exercise](storages.Exercises, journal, logger),
		Meals:            NewJournalService[models.Meal](storages.Meals, journal, logger),
		BodyCompositions: NewJournalService[models.BodyComposition](storages.BodyCompositions, journal, logger),
	}
}
