package getauthenticateduser

import (
	"context"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/core/services"
	"spendlog/internal/core/services/auth"
)

type Input struct {
	User user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

func (i Input) AuthenticatedUser() user.User {
	return i.User
}

type Result struct {
	User user.User
}

type service struct{}

func New() services.Service[Input, Result] {
	return &service{}
}

func (s *service) Run(ctx context.Context, input Input) (Result, error) {
	return Result{User: input.User}, nil
}
