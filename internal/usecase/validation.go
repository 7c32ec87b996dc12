package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/xavierca1/ligue-gestao/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateProvisionInput(input ProvisionConsultantInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.TempPassword) == "" {
		errors = append(errors, ValidationError{"tempPassword", "is required"})
	} else if len(input.TempPassword) < 8 {
		errors = append(errors, ValidationError{"tempPassword", "must have at least 8 characters"})
	}

	if strings.TrimSpace(input.Role) == "" {
		errors = append(errors, ValidationError{"role", "is required"})
	} else if !entity.ValidRole(input.Role) {
		errors = append(errors, ValidationError{"role", "must be admin, manager, consultant or recruiter"})
	}

	return errors
}

func joinValidationErrors(errs []ValidationError) string {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return strings.TrimSuffix(msg, ", ")
}
