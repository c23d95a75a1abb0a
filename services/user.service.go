package services

import (
	"context"

	"github.com/IrfanulM/MyBNB/domain"
)

type UserService interface {
	Register(ctx context.Context, credentials *domain.Credentials) (*domain.User, error)
	Authenticate(ctx context.Context, credentials *domain.Credentials) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
