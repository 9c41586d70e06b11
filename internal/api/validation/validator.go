package validation

import (
	"github.com/fitflow/fitflow/internal/domain"
	"github.com/fitflow/fitflow/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("workout_type", func(fl validator.FieldLevel) bool {
		switch domain.WorkoutType(fl.Field().String()) {
		case domain.WorkoutStrength, domain.WorkoutHypertrophy, domain.WorkoutPower,
			domain.WorkoutEndurance, domain.WorkoutRecovery:
			return true
		}
		return false
	})

	validate.RegisterValidation("fitness_level", func(fl validator.FieldLevel) bool {
		switch domain.FitnessLevel(fl.Field().String()) {
		case domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced:
			return true
		}
		return false
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors []problem.FieldError
	for _, err := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   toSnakeCase(err.Field()),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "workout_type":
		return "must be one of: strength, hypertrophy, power, endurance, recovery"
	case "fitness_level":
		return "must be one of: beginner, intermediate, advanced"
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
