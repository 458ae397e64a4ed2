package service

import (
	"context"

	"github.com/MKhiriev/fit-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_service.go -package=mock

// AuthService registers users, checks their credentials and issues and
// verifies the bearer tokens used by the authentication gate.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	CurrentUser(ctx context.Context, userID int64) (models.User, error)
}

// JournalService exposes CRUD on one kind of journal record for the
// authenticated user.
type JournalService[T any] interface {
	List(ctx context.Context, userID int64) ([]T, error)
	Get(ctx context.Context, userID, id int64) (T, error)
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, record T) (T, error)
	Delete(ctx context.Context, userID, id int64) error
}
