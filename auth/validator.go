package auth

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"roomhub/errors"
)

var validate = validator.New()

type LoginRequest struct {
	DisplayName string `validate:"required,min=1,max=64"`
}

type CreateRoomRequest struct {
	Name       string `validate:"required,min=1,max=128"`
	Visibility string `validate:"required,oneof=public invite-only"`
}

type SendMessageRequest struct {
	RoomID string `validate:"required,uuid4"`
	Text   string `validate:"required,max=4096"`
}

func ValidateLogin(req LoginRequest) error {
	return wrapValidation(validate.Struct(req))
}

func ValidateCreateRoom(req CreateRoomRequest) error {
	return wrapValidation(validate.Struct(req))
}

func ValidateSendMessage(req SendMessageRequest) error {
	return wrapValidation(validate.Struct(req))
}

// wrapValidation tags validator errors with the domain sentinel so the
// gateway maps them to InvalidArgument.
func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", errors.ErrValidation, err)
}
