package handlers

import (
	"FamilyVault/internal/config"
	"FamilyVault/internal/middleware"
	"FamilyVault/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	vaultService *service.VaultService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	vaultHandler := NewVaultHandler(vaultService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/logout", userHandler.Logout)
	r.Get("/api/user/me", userHandler.Me)

	// Vault routes
	r.Get("/api/vault", vaultHandler.List)
	r.Post("/api/vault", vaultHandler.Add)
	r.Put("/api/vault/{id}", vaultHandler.Edit)
	r.Delete("/api/vault/{id}", vaultHandler.Delete)

	return &Handler{Router: r}
}
