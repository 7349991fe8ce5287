package main

import (
	"FamilyVault/internal/cipher"
	"FamilyVault/internal/config"
	"FamilyVault/internal/handlers"
	"FamilyVault/internal/middleware"
	"FamilyVault/internal/repo"
	"FamilyVault/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	// Без ключа шифрования сервер не имеет права стартовать.
	cipherService, err := cipher.NewFromBase64(cfg.CipherKey)
	if err != nil {
		sugar.Fatalw("failed to initialize cipher", "error", err)
	}

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	vaultRepo := repo.NewVaultRepository(gormDB)

	userService := service.NewUserService(userRepo)
	vaultService := service.NewVaultService(vaultRepo, cipherService, sugar)

	h := handlers.NewHandler(userService, vaultService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
