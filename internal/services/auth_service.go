package services

import (
	"context"
	"errors"
	"time"

	"github.com/popsorte/backend/internal/config"
	"github.com/popsorte/backend/internal/models"
	"github.com/popsorte/backend/internal/repositories"
	"github.com/popsorte/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any login failure so the response
// never reveals whether the email exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles admin authentication
type AuthService struct {
	adminRepo repositories.AdminUserRepository
	cfg       *config.Config
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo repositories.AdminUserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Login verifies admin credentials and issues a JWT
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateJWT(user.ID.Hex(), user.Role, s.cfg)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// CreateAdmin registers a new admin account with a hashed password
func (s *AuthService) CreateAdmin(ctx context.Context, email, password, name, role string) (*models.AdminUser, error) {
	if _, err := s.adminRepo.FindByEmail(ctx, email); err == nil {
		return nil, errors.New("admin with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = "admin"
	}

	user := &models.AdminUser{
		Email:     email,
		Password:  string(hash),
		Name:      name,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.adminRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
