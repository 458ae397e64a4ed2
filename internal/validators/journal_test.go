package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fit-journal/models"
)

func owner() models.Owned {
	return models.Owned{UserID: 1}
}

func TestJournalValidator_Valid(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name string
		obj  any
	}{
		{"body part", &models.BodyPart{Owned: owner(), Name: "legs"}},
		{"body part value", models.BodyPart{Owned: owner(), Name: "arms"}},
		{"muscle group", &models.MuscleGroup{Owned: owner(), Name: "quadriceps", BodyPartID: 2}},
		{"exercise", &models.Exercise{Owned: owner(), Name: "squat", MuscleGroupID: 3}},
		{"meal", &models.Meal{Owned: owner(), Name: "lunch", Date: now, Calories: 650, Protein: 40}},
		{"body composition", &models.BodyComposition{Owned: owner(), Date: now, Weight: 80.5, BodyFat: 18}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, v.Validate(ctx, tt.obj))
		})
	}
}

func TestJournalValidator_Invalid(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{
			name:    "missing owner",
			obj:     &models.BodyPart{Name: "legs"},
			wantErr: ErrInvalidUserID,
		},
		{
			name:    "empty name",
			obj:     &models.BodyPart{Owned: owner()},
			wantErr: ErrEmptyName,
		},
		{
			name:    "name too long",
			obj:     &models.Exercise{Owned: owner(), Name: string(make([]byte, maxNameLength+1)), MuscleGroupID: 1},
			wantErr: ErrNameTooLong,
		},
		{
			name:    "muscle group without body part",
			obj:     &models.MuscleGroup{Owned: owner(), Name: "biceps"},
			wantErr: ErrInvalidReference,
		},
		{
			name:    "exercise without muscle group",
			obj:     models.Exercise{Owned: owner(), Name: "curl"},
			wantErr: ErrInvalidReference,
		},
		{
			name:    "meal without date",
			obj:     &models.Meal{Owned: owner(), Name: "dinner"},
			wantErr: ErrEmptyDate,
		},
		{
			name:    "meal negative calories",
			obj:     &models.Meal{Owned: owner(), Name: "dinner", Date: now, Calories: -1},
			wantErr: ErrNegativeValue,
		},
		{
			name:    "meal negative fat",
			obj:     &models.Meal{Owned: owner(), Name: "dinner", Date: now, Fat: -0.5},
			wantErr: ErrNegativeValue,
		},
		{
			name:    "zero weight",
			obj:     &models.BodyComposition{Owned: owner(), Date: now},
			wantErr: ErrInvalidWeight,
		},
		{
			name:    "body fat over 100",
			obj:     &models.BodyComposition{Owned: owner(), Date: now, Weight: 70, BodyFat: 101},
			wantErr: ErrInvalidBodyFat,
		},
		{
			name:    "unsupported type",
			obj:     models.User{},
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "unknown field",
			obj:     &models.BodyPart{Owned: owner(), Name: "legs"},
			fields:  []string{"colour"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestJournalValidator_FieldScoping(t *testing.T) {
	v := NewJournalValidator()

	// only the owner is checked, the missing name is ignored
	err := v.Validate(context.Background(), &models.BodyPart{Owned: owner()}, FieldUserID)
	assert.NoError(t, err)
}
