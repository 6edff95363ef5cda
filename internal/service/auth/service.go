package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	users user.Repository
	jwt   jwt.Service
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service) user.AuthService {
	return &AuthServiceImpl{
		users: userRepo,
		jwt:   jwtService,
	}
}

// Register implements user.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req user.RegisterRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := a.users.GetByEmail(ctx, req.Email); err == nil {
		return user.UserResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.users.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         user.RoleStaff,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user.UserResponse{
		ID:       created.ID,
		Email:    created.Email,
		FullName: created.FullName,
		Role:     created.Role,
	}, nil
}

// Login implements user.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req user.LoginRequest) (user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return user.TokenResponse{}, err
	}

	u, err := a.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.TokenResponse{}, user.ErrInvalidCredentials
		}
		return user.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return user.TokenResponse{}, user.ErrInvalidCredentials
	}

	access, expiresAt, err := a.jwt.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return user.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, _, err := a.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return user.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return user.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		User: user.UserResponse{
			ID:       u.ID,
			Email:    u.Email,
			FullName: u.FullName,
			Role:     u.Role,
		},
	}, nil
}
