package ports

import (
	"context"

	"github.com/autovest/investment-system/internal/core/domain"
)

// RegisterInput carries the registration payload. There is deliberately no
// role field: registration always produces a regular user.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	FullName string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed token and the authenticated user. Unknown
	// username and wrong password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
