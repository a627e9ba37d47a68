package routes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/ezrapay/ezrapay/internal/auth"
	"github.com/ezrapay/ezrapay/internal/config"
	"github.com/ezrapay/ezrapay/internal/identity"
	"github.com/ezrapay/ezrapay/internal/middleware"
	"github.com/ezrapay/ezrapay/internal/photo"
	"github.com/ezrapay/ezrapay/internal/profile"
	"github.com/ezrapay/ezrapay/internal/token"
	"github.com/ezrapay/ezrapay/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// ErrorHandler converts handler errors into the JSON error envelope clients
// expect. Install it as the Fiber app's error handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"success": false, "error": err.Error()})
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	// Plain text access log: [HH:MM:SS] 200 -  145ms METHOD /path
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// Identity provider gateway
	var provider identity.Provider
	if d.Cfg.IdentityURL != "" {
		provider = identity.NewHTTPProvider(d.Cfg.IdentityURL, d.Cfg.IdentityAPIKey, nil)
	} else {
		provider = identity.NewMemoryProvider()
	}

	// Repositories
	var profileRepo profile.Repository
	var walletRepo wallet.Repository
	var photoRepo photo.Repository
	if d.DB != nil {
		profileRepo = profile.NewPostgresRepository(d.DB)
		walletRepo = wallet.NewPostgresRepository(d.DB)
		photoRepo = photo.NewPostgresRepository(d.DB)
	} else {
		profileRepo = profile.NewMemoryRepository()
		walletRepo = wallet.NewMemoryRepository()
		photoRepo = photo.NewMemoryRepository()
	}

	// Services
	sessions := auth.NewService(d.Cfg.JWTSecret, d.Cfg.SessionTTL, d.Cache)
	profileSvc := profile.NewService(provider, profileRepo, d.Cfg.DefaultSchool)
	walletSvc := wallet.NewService(walletRepo)
	photoSvc := photo.NewService(photoRepo)

	var minter token.Minter
	if d.Cfg.TokenRPCURL != "" {
		m, err := token.NewEthMinter(context.Background(), d.Cfg.TokenRPCURL, d.Cfg.TokenContract, d.Cfg.TokenSignerKey)
		if err != nil {
			return fmt.Errorf("build minter: %w", err)
		}
		minter = m
	} else {
		minter = token.NewLoggerMinter(d.Logger)
	}

	// Handlers
	profileHandler := profile.NewHandler(profileSvc, sessions)
	authHandler := auth.NewHandler(sessions)
	walletHandler := wallet.NewHandler(walletSvc)
	photoHandler := photo.NewHandler(photoSvc)
	tokenHandler := token.NewHandler(minter)

	// Public routes
	rateLimiter := middleware.LoginRateLimit(d.Cache, d.Cfg.LoginRatePerMin)
	RegisterAuthRoutes(app, profileHandler, authHandler, rateLimiter)

	// Protected routes
	sessionGuard := middleware.RequireSession(sessions)
	RegisterPhotoRoutes(app, photoHandler, sessionGuard)
	RegisterUserRoutes(app, profileHandler, sessionGuard)
	RegisterWalletRoutes(app, walletHandler, sessionGuard)
	RegisterTokenRoutes(app, tokenHandler, sessionGuard)

	return nil
}
