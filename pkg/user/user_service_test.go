package user

import (
	"context"
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"Technically-Fit-Backend/domain"
	"Technically-Fit-Backend/entities"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// fakeUserRepo holds a single user and records updates.
type fakeUserRepo struct {
	user *entities.User
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *entities.User) error {
	f.user = u
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	if f.user == nil || f.user.Email != email {
		return nil, gorm.ErrRecordNotFound
	}
	return f.user, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, _ string) (*entities.User, error) {
	if f.user == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.user, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, u *entities.User) error {
	f.user = u
	return nil
}

// fakeTokenService hands out opaque tokens backed by an in-memory claim map.
type fakeTokenService struct {
	claims map[string]jwt.MapClaims
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{claims: map[string]jwt.MapClaims{}}
}

func (f *fakeTokenService) GenerateTokenUser(userID string, _ string) string { return userID }

func (f *fakeTokenService) ValidateTokenUser(_ string) (*jwt.Token, error) { return nil, nil }

func (f *fakeTokenService) GetUserIDByToken(token string) (string, string, error) {
	return token, domain.RoleUser, nil
}

func (f *fakeTokenService) GenerateTokenForgetPassword(data map[string]any, _ time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range data {
		claims[k] = v
	}
	token := fmt.Sprintf("token-%d", len(f.claims))
	f.claims[token] = claims
	return token, nil
}

func (f *fakeTokenService) ValidateTokenForgetPassword(token string) (jwt.MapClaims, error) {
	claims, ok := f.claims[token]
	if !ok {
		return jwt.MapClaims{}, domain.ErrTokenInvalid
	}
	return claims, nil
}

// fakeStorage satisfies the S3 interface without touching the network.
type fakeStorage struct{}

func (fakeStorage) UploadFile(fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	return folder + "/" + fileName, nil
}

func (fakeStorage) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}

func (fakeStorage) DeleteFile(_ string) error { return nil }

func (fakeStorage) GetPublicLinkKey(objectKey string) string { return "https://cdn.test/" + objectKey }

func (fakeStorage) GetObjectKeyFromLink(link string) string { return "" }

func unverifiedUser(password string) *entities.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return &entities.User{
		ID:       uuid.New(),
		Name:     "Sari",
		Email:    "sari@techfit.test",
		Password: string(hashed),
		Role:     domain.RoleUser,
	}
}

// TestVerifyEmail_PurposeScope verifies a reset-purpose token cannot verify
// an email while a verify-purpose token can.
func TestVerifyEmail_PurposeScope(t *testing.T) {
	repo := &fakeUserRepo{user: unverifiedUser("supersecret")}
	tokens := newFakeTokenService()
	svc := NewUserService(repo, tokens, fakeStorage{})

	resetToken, _ := tokens.GenerateTokenForgetPassword(
		map[string]any{"email": repo.user.Email, "purpose": "reset"}, time.Minute)

	if err := svc.VerifyEmail(context.Background(), resetToken); err != domain.ErrTokenInvalid {
		t.Errorf("reset token accepted for verification: err = %v", err)
	}
	if repo.user.IsVerified {
		t.Fatal("user verified by a reset-purpose token")
	}

	verifyToken, _ := tokens.GenerateTokenForgetPassword(
		map[string]any{"email": repo.user.Email, "purpose": "verify"}, time.Minute)

	if err := svc.VerifyEmail(context.Background(), verifyToken); err != nil {
		t.Fatalf("VerifyEmail: %v", err)
	}
	if !repo.user.IsVerified {
		t.Error("user not verified by a verify-purpose token")
	}
}

// TestResetPassword_PurposeScope verifies a verify-purpose token cannot
// change the password while a reset-purpose token can.
func TestResetPassword_PurposeScope(t *testing.T) {
	repo := &fakeUserRepo{user: unverifiedUser("oldpassword")}
	tokens := newFakeTokenService()
	svc := NewUserService(repo, tokens, fakeStorage{})

	verifyToken, _ := tokens.GenerateTokenForgetPassword(
		map[string]any{"email": repo.user.Email, "purpose": "verify"}, time.Minute)

	err := svc.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		Token:    verifyToken,
		Password: "newpassword",
	})
	if err != domain.ErrTokenInvalid {
		t.Errorf("verify token accepted for password reset: err = %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(repo.user.Password), []byte("oldpassword")) != nil {
		t.Fatal("password changed by a verify-purpose token")
	}

	resetToken, _ := tokens.GenerateTokenForgetPassword(
		map[string]any{"email": repo.user.Email, "purpose": "reset"}, time.Minute)

	err = svc.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		Token:    resetToken,
		Password: "newpassword",
	})
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(repo.user.Password), []byte("newpassword")) != nil {
		t.Error("password not updated by a reset-purpose token")
	}
}

// TestResetPassword_MissingPurpose verifies legacy tokens without a purpose
// claim are rejected outright.
func TestResetPassword_MissingPurpose(t *testing.T) {
	repo := &fakeUserRepo{user: unverifiedUser("oldpassword")}
	tokens := newFakeTokenService()
	svc := NewUserService(repo, tokens, fakeStorage{})

	bare, _ := tokens.GenerateTokenForgetPassword(
		map[string]any{"email": repo.user.Email}, time.Minute)

	err := svc.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		Token:    bare,
		Password: "newpassword",
	})
	if err != domain.ErrTokenInvalid {
		t.Errorf("purposeless token accepted: err = %v", err)
	}
}
