package services

import (
	"spendlog/internal/app/deps"
	drl "spendlog/internal/core/domain/rate_limiter"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/core/services"
	"spendlog/internal/core/services/auth"
	changepassword "spendlog/internal/core/services/change_password"
	createtransaction "spendlog/internal/core/services/create_transaction"
	deletetransaction "spendlog/internal/core/services/delete_transaction"
	getauthenticateduser "spendlog/internal/core/services/get_authenticated_user"
	listusertransactions "spendlog/internal/core/services/list_user_transactions"
	loginwithemail "spendlog/internal/core/services/log_in_with_email"
	ratelimiting "spendlog/internal/core/services/rate_limiting"
	resetpassword "spendlog/internal/core/services/reset_password"
	sendpasswordresettoken "spendlog/internal/core/services/send_password_reset_token"
	signup "spendlog/internal/core/services/sign_up"
)

type Services struct {
	SignUp                 services.Service[signup.Input, signup.Result]
	LogInWithEmail         services.Service[loginwithemail.Input, loginwithemail.Result]
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
	ChangePassword         services.Service[changepassword.Input, changepassword.Result]
	GetAuthenticatedUser   services.Service[getauthenticateduser.Input, getauthenticateduser.Result]

	CreateTransaction    services.Service[createtransaction.Input, createtransaction.Result]
	ListUserTransactions services.Service[listusertransactions.Input, listusertransactions.Result]
	DeleteTransaction    services.Service[deletetransaction.Input, deletetransaction.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUp = signup.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.SessionTokenCodec,
		deps.Now,
	)
	s.LogInWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithemail.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
			deps.SessionTokenCodec,
			deps.Now,
		),
	)
	s.SendPasswordResetToken = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendpasswordresettoken.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordResetTokenGenerator,
			deps.PasswordResetTokenSender,
			deps.Config.PasswordResetValidDuration,
			deps.Now,
		),
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.UnitOfWork,
		deps.PasswordResetTokenGenerator,
		deps.PasswordHasher,
		deps.SessionTokenCodec,
		deps.Now,
	)
	s.ChangePassword = auth.WithAuthentication(
		deps.Logger,
		deps.SessionTokenCodec,
		deps.UserRepository,
		changepassword.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
			deps.SessionTokenCodec,
			deps.Now,
		),
	)
	s.GetAuthenticatedUser = auth.WithAuthentication(
		deps.Logger,
		deps.SessionTokenCodec,
		deps.UserRepository,
		getauthenticateduser.New(),
	)

	s.CreateTransaction = auth.WithAuthentication(
		deps.Logger,
		deps.SessionTokenCodec,
		deps.UserRepository,
		createtransaction.New(
			deps.Logger,
			deps.TransactionRepository,
			deps.Now,
		),
	)
	s.ListUserTransactions = auth.WithAuthentication(
		deps.Logger,
		deps.SessionTokenCodec,
		deps.UserRepository,
		listusertransactions.New(
			deps.Logger,
			deps.TransactionRepository,
		),
	)
	s.DeleteTransaction = auth.WithAuthentication(
		deps.Logger,
		deps.SessionTokenCodec,
		deps.UserRepository,
		auth.WithRoleRestriction(
			[]user.Role{user.RoleAdmin},
			deletetransaction.New(
				deps.Logger,
				deps.TransactionRepository,
			),
		),
	)

	return s
}
