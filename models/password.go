package models

// ForgetPasswordRequest starts the OTP reset flow
type ForgetPasswordRequest struct {
	UserEmail string `json:"userEmail" validate:"required,email"`
}

// VerifyOTPRequest checks a user-supplied OTP against the reset token
type VerifyOTPRequest struct {
	Token string `json:"token" validate:"required"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

// ResetPasswordRequest sets a new password using a verified reset token
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	OTP         string `json:"otp" validate:"required,len=6"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}
