package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpctx "github.com/DanangAP-mitrais/ai-chat-app/internal/api/http/context"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/api/http/router"
	httpServer "github.com/DanangAP-mitrais/ai-chat-app/internal/api/http/server"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/config"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/hasher"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/logger"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/model"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/repository/postgres"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/server"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/service"
	"github.com/DanangAP-mitrais/ai-chat-app/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireMinutes)*time.Minute)
	passwordHasher := hasher.NewBcrypt(cfg.Password.BcryptCost)

	authService := service.NewAuth(userRepo, passwordHasher, logger)
	tokenService := service.NewTokenService(tokenManager, logger)
	ctxMgr := httpctx.NewManager()

	r := router.New(authService, tokenService, ctxMgr, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
