package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"onboardly/internal/chat"
	"onboardly/internal/checklist"
	"onboardly/internal/db"
	"onboardly/internal/extract"
	"onboardly/internal/handlers"
	"onboardly/internal/hr"
	"onboardly/internal/models"
	"onboardly/internal/reconcile"
	"onboardly/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the onboarding validation HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger, err := setupLogger(viper.GetBool("debug"), viper.GetBool("json"))
		if err != nil {
			return eris.Wrap(err, "setup logger")
		}
		defer logger.Sync() //nolint:errcheck
		zap.ReplaceGlobals(logger)

		cfg, err := getConfig()
		if err != nil {
			return eris.Wrap(err, "load config")
		}

		if err := db.Init(); err != nil {
			return err
		}

		store, err := loadRegistry(cfg)
		if err != nil {
			return err
		}
		logger.Info("license registry loaded",
			zap.String("source", cfg.Registry.Source),
			zap.Int("records", store.Len()))

		state, err := checklistStore(cfg)
		if err != nil {
			return err
		}

		kb, err := chat.LoadKB(cfg.Chat.KBPath)
		if err != nil {
			return eris.Wrap(err, "load validation knowledge base")
		}
		assistant := chat.NewAssistant(kb, cfg.Chat.Model, logger)

		validator := extract.NewValidator(cfg.Extraction.Model)
		extractFn := validator.ValidateImage
		if cfg.Extraction.Mode == "vision-ocr" {
			extractFn = func(ctx context.Context, image []byte, _ string) (models.DocumentReport, error) {
				text, err := extract.OCRText(ctx, image)
				if err != nil {
					return models.DocumentReport{}, err
				}
				return validator.ValidateText(ctx, text)
			}
		}

		api := &handlers.API{
			Store:     store,
			State:     state,
			Assistant: assistant,
			HRLog:     hr.NewLog(db.DB, logger),
			Extract:   extractFn,
			UploadDir: cfg.Uploads.Dir,
			BaseURL:   cfg.Server.BaseURL,
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
			Handler: router.RegisterRouter(api),
		}

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		logger.Info("starting server", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().Int("port", 8080, "server port")
	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	rootCmd.AddCommand(serveCmd)
}

func loadRegistry(cfg *Config) (*reconcile.Store, error) {
	switch cfg.Registry.Source {
	case "db":
		records, err := db.LoadReferenceLicenses()
		if err != nil {
			return nil, err
		}
		return reconcile.NewStore(records), nil
	default:
		return reconcile.LoadFile(cfg.Registry.Path)
	}
}

func checklistStore(cfg *Config) (checklist.Store, error) {
	if cfg.Checklist.Store == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, eris.Wrap(err, "connect to redis")
		}
		return checklist.NewRedisStore(client), nil
	}
	return checklist.NewFileStore(cfg.Checklist.Dir), nil
}
