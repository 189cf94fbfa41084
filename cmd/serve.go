package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"go_4_vocab_cards/internal/config"
	"go_4_vocab_cards/internal/handlers"
	"go_4_vocab_cards/internal/metrics"
	"go_4_vocab_cards/internal/repository"
	"go_4_vocab_cards/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Data Store のHTTPサーバーを起動",
	Long: `単語データ (GET /api/words) と暗記度 (GET/POST /api/status) を提供します。

storage.driver が json の場合はファイル、sqlite / postgres の場合はDBに暗記度を保存します。`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log.Println("Log Config Loading...")
	if err := config.LoadConfig(configPath); err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	logger := newLogger(os.Stderr, config.Cfg.Log.Level, true)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("version", config.AppVersion))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. 暗記度の保存先
	statusRepo, closeStore, err := newStatusRepository(logger)
	if err != nil {
		return err
	}
	defer closeStore()

	// 2. Dependency Injection
	m := metrics.New()
	vocabularyRepo := repository.NewFileVocabularyRepository(config.Cfg.Storage.WordsFile)
	vocabularyService := service.NewVocabularyService(vocabularyRepo, config.Cfg.Storage.CacheTTL, m, logger)
	statusService := service.NewStatusService(statusRepo, m, logger)

	// 単語ファイルが書き換えられたらキャッシュを破棄する
	if config.Cfg.Storage.WatchWords {
		err := repository.WatchFile(ctx, config.Cfg.Storage.WordsFile, 300*time.Millisecond, logger, vocabularyService.Invalidate)
		if err != nil {
			slog.Warn("Words file watcher disabled", slog.Any("error", err))
		}
	}

	// 3. Router
	r := handlers.NewRouter(vocabularyService, statusService, m, config.Cfg.CORS, logger)

	// 4. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Graceful Shutdown
	select {
	case err := <-serverErr:
		if err != nil {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			return err
		}
	case <-ctx.Done():
	}
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
	return nil
}

// newStatusRepository は storage.driver に応じた保存先を返します
func newStatusRepository(logger *slog.Logger) (repository.StatusRepository, func(), error) {
	if config.Cfg.Storage.Driver == config.DriverJSON {
		return repository.NewJSONStatusRepository(config.Cfg.Storage.StatusFile), func() {}, nil
	}

	db, err := repository.NewDB(config.Cfg.Storage.Driver, config.Cfg.Storage.DatabaseURL, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("error getting underlying sql.DB from GORM: %w", err)
	}
	closeFn := func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}
	return repository.NewGormStatusRepository(db), closeFn, nil
}
