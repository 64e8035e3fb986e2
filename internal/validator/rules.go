package validator

import (
	"lciportal_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the domain enumerations into the validator.
func registerCustomRules(v *validator.Validate) error {
	// service_type: member of the closed service enumeration.
	if err := v.RegisterValidation("service_type", func(fl validator.FieldLevel) bool {
		return models.IsValidService(models.ServiceType(fl.Field().String()))
	}); err != nil {
		return err
	}

	// urgency: valid after legacy synonym normalization.
	if err := v.RegisterValidation("urgency", func(fl validator.FieldLevel) bool {
		_, ok := models.NormalizeUrgency(fl.Field().String())
		return ok
	}); err != nil {
		return err
	}

	return nil
}
