package validator

import (
	"testing"

	"portfolio/dto"
	"portfolio/errors"
)

func TestValidateContact(t *testing.T) {
	valid := dto.ContactRequest{Name: "Sita Sharma", Email: "sita@example.com", Message: "Hello"}
	if err := ValidateContact(&valid); err != nil {
		t.Fatalf("valid contact rejected: %v", err)
	}

	tests := []struct {
		name string
		req  dto.ContactRequest
		code errors.ErrorCode
	}{
		{"missing name", dto.ContactRequest{Email: "sita@example.com", Message: "Hello"}, errors.ErrCodeRequiredField},
		{"missing email", dto.ContactRequest{Name: "Sita", Message: "Hello"}, errors.ErrCodeRequiredField},
		{"missing message", dto.ContactRequest{Name: "Sita", Email: "sita@example.com"}, errors.ErrCodeRequiredField},
		{"bad email", dto.ContactRequest{Name: "Sita", Email: "sita@", Message: "Hello"}, errors.ErrCodeInvalidEmail},
	}

	for _, tc := range tests {
		err := ValidateContact(&tc.req)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		appErr, ok := errors.IsAppError(err)
		if !ok || appErr.Code != tc.code {
			t.Fatalf("%s: got %v, want code %s", tc.name, err, tc.code)
		}
	}
}

func TestValidateSubscriber(t *testing.T) {
	if err := ValidateSubscriber(&dto.SubscribeRequest{Email: "reader@example.com"}); err != nil {
		t.Fatalf("valid subscriber rejected: %v", err)
	}

	if err := ValidateSubscriber(&dto.SubscribeRequest{}); err == nil {
		t.Fatal("missing email must be rejected")
	}

	if err := ValidateSubscriber(&dto.SubscribeRequest{Email: "not-an-email"}); err == nil {
		t.Fatal("malformed email must be rejected")
	}
}
