package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"wetube_backend/internal/app/di"
	"wetube_backend/internal/app/router"
	"wetube_backend/internal/config"
	authadapters "wetube_backend/internal/feature/auth/adapters"
	authhandler "wetube_backend/internal/feature/auth/transport/handler"
	authusecase "wetube_backend/internal/feature/auth/usecase"
	"wetube_backend/internal/platform/cache"
	infradb "wetube_backend/internal/platform/db"
	"wetube_backend/internal/platform/externalapi/oauth"
	"wetube_backend/internal/platform/http/handler"
	jwtmw "wetube_backend/internal/platform/jwt"
	infraredis "wetube_backend/internal/platform/redis"
	"wetube_backend/internal/platform/session"
	"wetube_backend/internal/platform/upload"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.SessionSecret == "" {
		slog.Warn("SESSION_SECRET is not set; using a random secret, sessions end on restart.")
		if cfg.SessionSecret, err = randomSecret(); err != nil {
			return err
		}
	}
	oauthCfg, err := oauth.LoadConfig()
	if err != nil {
		return err
	}
	dbCfg, err := infradb.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	redisCfg, err := infraredis.LoadConfig()
	if err != nil {
		return err
	}

	// db
	db, err := infradb.OpenDB(dbCfg)
	if err != nil {
		return err
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, redisCfg); err != nil {
		slog.Warn("Redis unavailable. Sessions fall back to the database and profile cache is disabled.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := cache.NewCachingUserRepository(rdb, cfg.ProfileCacheTTL, authadapters.NewUserGorm(db), "users")
	sessionRepo := di.NewSessionRepository(rdb, db)

	// Usecase
	identities := authusecase.NewIdentityUsecase(userRepo, authusecase.NewPasswordHasher(cfg.BcryptCost))
	oauthUC := authusecase.NewOAuthUsecase(identities, di.NewOAuthProviders(oauthCfg)...)
	sessions := authusecase.NewSessionManager(sessionRepo, cfg.SessionTTL)

	// Session cookie
	signer := jwtmw.NewSigner(cfg.SessionSecret, cfg.SessionTTL)
	cookies := session.NewCookies(signer, cfg.SessionCookieSecure)

	// Uploads
	if err := os.MkdirAll(cfg.UploadDir, 0o750); err != nil {
		return err
	}
	avatars := upload.NewDiskStore(cfg.UploadDir, "/uploads")

	// Handler
	authH := authhandler.NewAuthHandler(identities, oauthUC, sessions, cookies, session.FromContext)
	userH := authhandler.NewUserHandler(identities, sessions, cookies, avatars, session.FromContext)
	healthH := handler.NewHealthHandler(di.NewHealthChecks(db, rdb))

	r := router.NewRouter(router.Deps{
		Auth:      authH,
		Users:     userH,
		Health:    healthH,
		Signer:    signer,
		Sessions:  sessions,
		UploadDir: cfg.UploadDir,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	slog.Info("shutting down server")
	return srv.Shutdown(shutdownCtx)
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
