package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/fit-journal/models"
)

func TestUserValidator(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{
			name: "valid registration",
			obj:  models.User{Username: "alice", Password: "Secr3tPass"},
		},
		{
			name:    "short username",
			obj:     &models.User{Username: "al", Password: "Secr3tPass"},
			wantErr: ErrInvalidUsername,
		},
		{
			name:    "short password",
			obj:     &models.User{Username: "alice", Password: "S3cret"},
			wantErr: ErrInvalidPassword,
		},
		{
			name:    "password without digit",
			obj:     &models.User{Username: "alice", Password: "SecretPass"},
			wantErr: ErrInvalidPassword,
		},
		{
			name:    "password without upper case",
			obj:     &models.User{Username: "alice", Password: "secr3tpass"},
			wantErr: ErrInvalidPassword,
		},
		{
			name:    "password with leading space",
			obj:     &models.User{Username: "alice", Password: " Secr3tPass"},
			wantErr: ErrInvalidPassword,
		},
		{
			name:    "password too long",
			obj:     &models.User{Username: "alice", Password: "Aa1" + string(make([]byte, 70))},
			wantErr: ErrInvalidPassword,
		},
		{
			name:   "login credentials present",
			obj:    &models.User{Username: "al", Password: "x"},
			fields: []string{FieldCredentials},
		},
		{
			name:    "login credentials missing",
			obj:     &models.User{Username: "alice"},
			fields:  []string{FieldCredentials},
			wantErr: ErrEmptyCredentials,
		},
		{
			name:    "unsupported type",
			obj:     "alice",
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "unknown field",
			obj:     models.User{Username: "alice"},
			fields:  []string{"email"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
