package store

import (
	"context"

	"github.com/MKhiriev/fit-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with id and created_at set.
	// A taken username yields [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns [ErrNoUserWasFound] when nothing matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// JournalRepository persists one kind of journal record. Every method is
// scoped to the owning user; rows of other users behave as missing.
type JournalRepository[T any] interface {
	List(ctx context.Context, userID int64) ([]T, error)
	Get(ctx context.Context, userID, id int64) (T, error)
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, record T) (T, error)
	Delete(ctx context.Context, userID, id int64) error
}
