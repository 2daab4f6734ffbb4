package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "login successful"
	MessageSuccessGetProfile       = "profile retrieved successfully"
	MessageSuccessUpdateProfile    = "profile updated successfully"
	MessageSuccessUploadPhoto      = "progress photo uploaded successfully"
	MessageSuccessSendVerification = "verification email sent"
	MessageSuccessVerifyEmail      = "email verified successfully"
	MessageSuccessForgotPassword   = "password reset email sent"
	MessageSuccessResetPassword    = "password reset successfully"

	MessageFailedRegister         = "failed to register user"
	MessageFailedLogin            = "failed to login"
	MessageFailedGetProfile       = "failed to retrieve profile"
	MessageFailedUpdateProfile    = "failed to update profile"
	MessageFailedUploadPhoto      = "failed to upload progress photo"
	MessageFailedSendVerification = "failed to send verification email"
	MessageFailedVerifyEmail      = "failed to verify email"
	MessageFailedForgotPassword   = "failed to send password reset email"
	MessageFailedResetPassword    = "failed to reset password"

	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailNotVerified     = errors.New("email not verified")
	ErrEmailAlreadyVerified = errors.New("email already verified")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateProfileRequest struct {
		Name              string   `json:"name" validate:"omitempty"`
		Age               int      `json:"age" validate:"omitempty,min=1,max=130"`
		WeightKG          float64  `json:"weight_kg" validate:"omitempty,gt=0"`
		HeightCM          float64  `json:"height_cm" validate:"omitempty,gt=0"`
		Sex               string   `json:"sex" validate:"omitempty,oneof=male female"`
		ActivityLevel     string   `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
		Goal              string   `json:"goal" validate:"omitempty,oneof=lose_weight maintain gain_weight gain_muscle"`
		MedicalConditions []string `json:"medical_conditions" validate:"omitempty"`
		Medications       []string `json:"medications" validate:"omitempty"`
	}

	UploadProgressPhotoRequest struct {
		Photo *multipart.FileHeader `json:"photo" form:"photo" validate:"required"`
	}

	ProfileResponse struct {
		ID                string   `json:"id"`
		Name              string   `json:"name"`
		Email             string   `json:"email"`
		Age               int      `json:"age"`
		WeightKG          float64  `json:"weight_kg"`
		HeightCM          float64  `json:"height_cm"`
		Sex               string   `json:"sex"`
		ActivityLevel     string   `json:"activity_level"`
		Goal              string   `json:"goal"`
		MedicalConditions []string `json:"medical_conditions"`
		Medications       []string `json:"medications"`
		PhotoURL          string   `json:"photo_url,omitempty"`
		IsVerified        bool     `json:"is_verified"`
		IsPremium         bool     `json:"is_premium"`
	}

	SendVerificationRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}
)
