package store

import (
	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/MKhiriev/fit-journal/models"
)

// Storages groups every repository backed by one database connection.
type Storages struct {
	UserRepository UserRepository

	BodyParts        JournalRepository[models.BodyPart]
	MuscleGroups     JournalRepository[models.MuscleGroup]
	Exercises        JournalRepository[models.Exercise]
	Meals            JournalRepository[models.Meal]
	BodyCompositions JournalRepository[models.BodyComposition]
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		BodyParts:        NewJournalRepository[models.BodyPart](db, log),
		MuscleGroups:     NewJournalRepository[models.MuscleGroup](db, log),
		Exercises:        NewJournalRepository[models.Exercise](db, log),
		Meals:            NewJournalRepository[models.Meal](db, log),
		BodyCompositions: NewJournalRepository[models.BodyComposition](db, log),
	}
}
