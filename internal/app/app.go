package app

import (
	"fmt"
	"net/http"
	"spendlog/internal/app/deps"
	"spendlog/internal/app/services"
	"spendlog/internal/http/handlers/auth"
	changepassword "spendlog/internal/http/handlers/auth/change_password"
	loginwithemail "spendlog/internal/http/handlers/auth/log_in_with_email"
	me "spendlog/internal/http/handlers/auth/me"
	resetpassword "spendlog/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "spendlog/internal/http/handlers/auth/send_password_reset_token"
	signup "spendlog/internal/http/handlers/auth/sign_up"
	createtransaction "spendlog/internal/http/handlers/transactions/create_transaction"
	deletetransaction "spendlog/internal/http/handlers/transactions/delete_transaction"
	listtransactions "spendlog/internal/http/handlers/transactions/list_transactions"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signup.New(s.SignUp))
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendpasswordresettoken.New(s.SendPasswordResetToken, isTestMode),
	)
	authRouter.Method(http.MethodPut, "/password_reset/{token}", resetpassword.New(s.ResetPassword))

	profileRouter := chi.NewRouter()
	profileRouter.Use(auth.SetAuthTokenToContext)
	profileRouter.Method(http.MethodGet, "/me", me.New(s.GetAuthenticatedUser))
	profileRouter.Method(http.MethodPut, "/password", changepassword.New(s.ChangePassword))

	transactionsRouter := chi.NewRouter()
	transactionsRouter.Use(auth.SetAuthTokenToContext)
	transactionsRouter.Method(http.MethodPost, "/", createtransaction.New(s.CreateTransaction))
	transactionsRouter.Method(http.MethodGet, "/", listtransactions.New(s.ListUserTransactions))
	transactionsRouter.Method(
		http.MethodDelete,
		"/{transactionID:[0-9]+}",
		deletetransaction.New(s.DeleteTransaction),
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/profile", profileRouter)
	router.Mount("/transactions", transactionsRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
