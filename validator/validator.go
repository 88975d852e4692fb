package validator

import (
	"regexp"

	"portfolio/dto"
	"portfolio/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateContact validate thông tin form liên hệ
func ValidateContact(req *dto.ContactRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "name is required", nil)
	}

	if req.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email is required", nil)
	}

	if !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "email is not valid", nil)
	}

	if req.Message == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "message is required", nil)
	}

	return nil
}

// ValidateSubscriber validate email đăng ký bản tin
func ValidateSubscriber(req *dto.SubscribeRequest) error {
	if req.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email required", nil)
	}

	if !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "email is not valid", nil)
	}

	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
