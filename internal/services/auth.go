package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"learnbuddy-backend/internal/middleware"
	"learnbuddy-backend/internal/models"
	"learnbuddy-backend/internal/repository"
)

const (
	otpLength       = 6
	refreshTokenTTL = 7 * 24 * time.Hour
	resendCooldown  = 60 * time.Second
)

type AuthService struct {
	userRepo   *repository.UserRepo
	signupRepo *repository.SignupRepo
	redis      *redis.Client
	jwt        *middleware.JWTAuth
	email      *EmailService
}

func NewAuthService(userRepo *repository.UserRepo, signupRepo *repository.SignupRepo, redisClient *redis.Client, jwt *middleware.JWTAuth, email *EmailService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		signupRepo: signupRepo,
		redis:      redisClient,
		jwt:        jwt,
		email:      email,
	}
}

// Signup starts the OTP flow: it stores a pending signup with a hashed
// password and a fresh OTP, and dispatches the OTP by email. The OTP never
// appears in the HTTP response.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) error {
	if err := validateSignup(req); err != nil {
		return err
	}

	registered, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return err
	}
	if registered {
		return &ConflictError{Message: "This email is already registered. Please login."}
	}

	pendingExists, err := s.signupRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return err
	}
	if pendingExists {
		return &ConflictError{Message: "You have already started signup. Please check your email for OTP."}
	}

	otp, err := generateOTP(otpLength)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password1), 12)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	pending := &models.PendingSignup{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		OTP:          otp,
	}
	if err := s.signupRepo.Create(ctx, pending); err != nil {
		return err
	}

	go s.email.SendOTPEmail(pending.Email, otp, false)

	return nil
}

// ResendOTP regenerates and redispatches the OTP for an in-flight signup,
// with a redis-backed cooldown between requests.
func (s *AuthService) ResendOTP(ctx context.Context, email string) error {
	if email == "" {
		return &ValidationError{Message: "Email is required"}
	}

	pending, err := s.signupRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &NotFoundError{Message: "No signup attempt found for this email"}
		}
		return err
	}

	cooldownKey := "resend_otp:" + email
	exists, _ := s.redis.Exists(ctx, cooldownKey).Result()
	if exists > 0 {
		return &RateLimitError{Message: "Please wait 60 seconds before requesting another OTP"}
	}

	otp, err := generateOTP(otpLength)
	if err != nil {
		return err
	}
	if err := s.signupRepo.UpdateOTP(ctx, pending.ID, otp); err != nil {
		return err
	}
	s.redis.Set(ctx, cooldownKey, "1", resendCooldown)

	go s.email.SendOTPEmail(email, otp, true)

	return nil
}

// VerifyOTP checks the code and, on a match, promotes the pending signup to a
// verified user with zeroed chapter scores in one transaction. A mismatch
// keeps the pending signup so the client can retry.
func (s *AuthService) VerifyOTP(ctx context.Context, email, otp string) error {
	if email == "" || otp == "" {
		return &ValidationError{Message: "email and otp required"}
	}

	pending, err := s.signupRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &NotFoundError{Message: "No signup attempt found for this email"}
		}
		return err
	}

	if pending.OTP != otp {
		return &ValidationError{Message: "Invalid OTP"}
	}

	if _, err := s.userRepo.CreateFromPending(ctx, pending); err != nil {
		return err
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, &ValidationError{Message: "email and password required"}
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "User not found"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, &UnauthorizedError{Message: "Invalid password"}
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*models.LoginResponse, error) {
	access, err := s.jwt.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := generateToken(64)
	if err != nil {
		return nil, err
	}

	err = s.redis.Set(ctx, "refresh:"+refresh, user.ID.String(), refreshTokenTTL).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &models.LoginResponse{
		Access:  access,
		Refresh: refresh,
		User: models.UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

func validateSignup(req models.SignupRequest) error {
	if req.Name == "" || req.Email == "" || req.Password1 == "" || req.Password2 == "" {
		return &ValidationError{Message: "All fields are required"}
	}
	if req.Password1 != req.Password2 {
		return &ValidationError{Message: "Passwords do not match"}
	}
	return nil
}

func generateOTP(digits int) (string, error) {
	code := make([]byte, digits)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate OTP: %w", err)
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}

func generateToken(bytes int) (string, error) {
	b := make([]byte, bytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
