package user

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
}
