package services

import (
	"fmt"
	"strings"
	"unicode"

	errs "lunch-roll/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type AddParticipantRequest struct {
	Name  string `validate:"required,max=64"`
	Local bool
}

func ValidateAddParticipant(req AddParticipantRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidParticipant, err)
	}
	if strings.IndexFunc(req.Name, unicode.IsControl) >= 0 {
		return fmt.Errorf("%w: name contains control characters", errs.ErrInvalidParticipant)
	}
	return nil
}

type GroupSizeRequest struct {
	Size int `validate:"gte=2,lte=100"`
}

func ValidateGroupSize(req GroupSizeRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidGroupSize, req.Size)
	}
	return nil
}
