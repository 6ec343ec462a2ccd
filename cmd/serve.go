package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/zodiac/internal/auth"
	"github.com/ziadkadry99/zodiac/internal/cache"
	"github.com/ziadkadry99/zodiac/internal/config"
	"github.com/ziadkadry99/zodiac/internal/db"
	"github.com/ziadkadry99/zodiac/internal/scheduler"
	"github.com/ziadkadry99/zodiac/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Starts the zodiac JSON API with horoscope, compatibility, birth chart, biorhythm and profile endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Server.Port = servePort
		}
		logger, err := setupLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		database, err := db.Open(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store, err := openCache(ctx, cfg, logger)
		if err != nil {
			return err
		}
		if c, ok := store.(interface{ Close() error }); ok {
			defer c.Close()
		}

		svc, err := newService(cfg, store)
		if err != nil {
			return err
		}

		secret := cfg.Auth.Secret
		if secret == "" {
			secret, err = config.GenerateSecret()
			if err != nil {
				return err
			}
			logger.Warn("auth.secret is not set; using a random secret, issued tokens will not survive a restart")
		}
		jwt := auth.JWT{Secret: []byte(secret), TokenTTL: cfg.Auth.TokenTTL}

		if cfg.Scheduler.Enabled {
			runner := scheduler.New(logger, ctx)
			if _, err := runner.Add("warm", cfg.Scheduler.Warm, scheduler.WarmJob(svc, nil)); err != nil {
				return fmt.Errorf("scheduling cache warm: %w", err)
			}
			runner.Start()
			defer runner.Stop()

			go func() {
				if _, err := svc.Warm(ctx, time.Now().UTC()); err != nil && !errors.Is(err, context.Canceled) {
					logger.Warn("initial cache warm failed", zap.Error(err))
				}
			}()
		}

		srv := server.New(*cfg, server.Deps{Service: svc, DB: database, JWT: jwt}, logger)

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown failed", zap.Error(err))
			}
		}()

		logger.Info("zodiac server starting",
			zap.String("version", Version),
			zap.Int("port", cfg.Server.Port),
			zap.String("database", database.Path()),
			zap.String("cache", string(cfg.Cache.Driver)),
			zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// openCache opens the configured store and checks that redis answers.
func openCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (cache.Store, error) {
	store, err := cache.Open(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	if rs, ok := store.(*cache.RedisStore); ok {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := rs.Ping(pingCtx); err != nil {
			_ = rs.Close()
			return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Cache.RedisAddr, err)
		}
		logger.Info("redis cache connected", zap.String("addr", cfg.Cache.RedisAddr))
	}
	return store, nil
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
