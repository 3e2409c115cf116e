package ports

import (
	"context"

	"github.com/acadreview/reviewhub/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, firstName, lastName, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
