package application

import (
	"context"

	"github.com/linskybing/design-review/internal/domain/user"
	"github.com/linskybing/design-review/internal/repository"
	"github.com/linskybing/design-review/pkg/identity"
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.ListUsers()
}

func (s *UserService) GetUser(id string) (user.User, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, lookupErr(err, ErrUserNotFound)
	}
	return u, nil
}

// CurrentUser resolves the identity injected into ctx.
func (s *UserService) CurrentUser(ctx context.Context) (user.User, error) {
	id, ok := identity.UserID(ctx)
	if !ok {
		return user.User{}, ErrNoCurrentUser
	}
	return s.GetUser(id)
}

// ResolveActor picks the explicit id when given, else the injected identity.
func (s *UserService) ResolveActor(ctx context.Context, explicit *string) (string, error) {
	if explicit != nil && *explicit != "" {
		return *explicit, nil
	}
	id, ok := identity.UserID(ctx)
	if !ok {
		return "", ErrNoCurrentUser
	}
	return id, nil
}
