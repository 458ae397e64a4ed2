package validators

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/fit-journal/models"
)

// Field names accepted by JournalValidator.Validate.
const (
	FieldUserID      = "user_id"
	FieldName        = "name"
	FieldReference   = "reference"
	FieldDate        = "date"
	FieldMeasurement = "measurement"
)

const maxNameLength = 100

// JournalValidator validates the journal entities: body parts, muscle
// groups, exercises, meals and body compositions.
type JournalValidator struct {
}

// NewJournalValidator constructs a JournalValidator.
func NewJournalValidator() Validator {
	return &JournalValidator{}
}

// Validate checks obj, which must be one of the journal entities (value or
// pointer). When fields is empty every rule applicable to the type is run.
func (v *JournalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldReference, FieldDate, FieldMeasurement}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUserID:
			err = v.validateOwner(obj)
		case FieldName:
			err = v.validateName(obj)
		case FieldReference:
			err = v.validateReference(obj)
		case FieldDate:
			err = v.validateDate(obj)
		case FieldMeasurement:
			err = v.validateMeasurement(obj)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *JournalValidator) validateOwner(obj any) error {
	record, ok := pointerTo(obj).(models.Record)
	if !ok {
		return ErrUnsupportedType
	}

	if record.Meta().UserID <= 0 {
		return ErrInvalidUserID
	}
	return nil
}

func (v *JournalValidator) validateName(obj any) error {
	switch value := obj.(type) {
	case *models.BodyPart:
		return checkName(value.Name)
	case *models.MuscleGroup:
		return checkName(value.Name)
	case *models.Exercise:
		return checkName(value.Name)
	case *models.Meal:
		return checkName(value.Name)
	case *models.BodyComposition:
		return nil
	case models.BodyPart, models.MuscleGroup, models.Exercise, models.Meal, models.BodyComposition:
		return v.validateName(pointerTo(value))
	default:
		return ErrUnsupportedType
	}
}

func (v *JournalValidator) validateReference(obj any) error {
	switch value := obj.(type) {
	case *models.MuscleGroup:
		if value.BodyPartID <= 0 {
			return fmt.Errorf("body_part_id: %w", ErrInvalidReference)
		}
	case *models.Exercise:
		if value.MuscleGroupID <= 0 {
			return fmt.Errorf("muscle_group_id: %w", ErrInvalidReference)
		}
	case *models.BodyPart, *models.Meal, *models.BodyComposition:
	case models.BodyPart, models.MuscleGroup, models.Exercise, models.Meal, models.BodyComposition:
		return v.validateReference(pointerTo(value))
	default:
		return ErrUnsupportedType
	}
	return nil
}

func (v *JournalValidator) validateDate(obj any) error {
	switch value := obj.(type) {
	case *models.Meal:
		return checkDate(value.Date)
	case *models.BodyComposition:
		return checkDate(value.Date)
	case *models.BodyPart, *models.MuscleGroup, *models.Exercise:
		return nil
	case models.BodyPart, models.MuscleGroup, models.Exercise, models.Meal, models.BodyComposition:
		return v.validateDate(pointerTo(value))
	default:
		return ErrUnsupportedType
	}
}

func (v *JournalValidator) validateMeasurement(obj any) error {
	switch value := obj.(type) {
	case *models.Meal:
		if value.Calories < 0 {
			return fmt.Errorf("calories: %w", ErrNegativeValue)
		}
		for name, n := range map[string]float64{"protein": value.Protein, "carbs": value.Carbs, "fat": value.Fat} {
			if n < 0 {
				return fmt.Errorf("%s: %w", name, ErrNegativeValue)
			}
		}
	case *models.BodyComposition:
		if value.Weight <= 0 {
			return ErrInvalidWeight
		}
		if value.BodyFat < 0 || value.BodyFat > 100 {
			return ErrInvalidBodyFat
		}
		if value.MuscleMass < 0 {
			return fmt.Errorf("muscle_mass: %w", ErrNegativeValue)
		}
	case *models.BodyPart, *models.MuscleGroup, *models.Exercise:
	case models.BodyPart, models.MuscleGroup, models.Exercise, models.Meal, models.BodyComposition:
		return v.validateMeasurement(pointerTo(value))
	default:
		return ErrUnsupportedType
	}
	return nil
}

func checkName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func checkDate(date time.Time) error {
	if date.IsZero() {
		return ErrEmptyDate
	}
	return nil
}

// pointerTo turns a journal entity value into a pointer so the rules above
// only have to handle pointer cases.
func pointerTo(obj any) any {
	switch value := obj.(type) {
	case models.BodyPart:
		return &value
	case models.MuscleGroup:
		return &value
	case models.Exercise:
		return &value
	case models.Meal:
		return &value
	case models.BodyComposition:
		return &value
	default:
		return obj
	}
}
