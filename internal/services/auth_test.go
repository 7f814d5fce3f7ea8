package services

import (
	"testing"

	"learnbuddy-backend/internal/models"
)

func TestValidateSignup(t *testing.T) {
	valid := models.SignupRequest{
		Name:      "Test User",
		Email:     "test@example.com",
		Password1: "secret123",
		Password2: "secret123",
	}

	tests := []struct {
		name    string
		mutate  func(r *models.SignupRequest)
		wantErr string
	}{
		{"valid request", func(r *models.SignupRequest) {}, ""},
		{"missing name", func(r *models.SignupRequest) { r.Name = "" }, "All fields are required"},
		{"missing email", func(r *models.SignupRequest) { r.Email = "" }, "All fields are required"},
		{"missing password1", func(r *models.SignupRequest) { r.Password1 = "" }, "All fields are required"},
		{"missing password2", func(r *models.SignupRequest) { r.Password2 = "" }, "All fields are required"},
		{"mismatched passwords", func(r *models.SignupRequest) { r.Password2 = "other456" }, "Passwords do not match"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)

			err := validateSignup(req)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("expected error %q, got nil", tc.wantErr)
			}
			if _, ok := err.(*ValidationError); !ok {
				t.Errorf("expected *ValidationError, got %T", err)
			}
			if err.Error() != tc.wantErr {
				t.Errorf("expected %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestGenerateOTP(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 20; i++ {
		otp, err := generateOTP(6)
		if err != nil {
			t.Fatalf("generateOTP failed: %v", err)
		}
		if len(otp) != 6 {
			t.Fatalf("expected 6 digits, got %q", otp)
		}
		for _, ch := range otp {
			if ch < '0' || ch > '9' {
				t.Fatalf("non-digit %q in OTP %q", ch, otp)
			}
		}
		seen[otp] = true
	}

	// 20 identical codes would mean the generator is broken
	if len(seen) == 1 {
		t.Error("all generated OTPs were identical")
	}
}

func TestGenerateToken(t *testing.T) {
	a, err := generateToken(32)
	if err != nil {
		t.Fatalf("generateToken failed: %v", err)
	}
	b, err := generateToken(32)
	if err != nil {
		t.Fatalf("generateToken failed: %v", err)
	}

	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
	if a == b {
		t.Error("two tokens were identical")
	}
}
