package main

import (
	"fmt"
	"os"

	"github.com/DanRulev/vocaquiz/internal/config"
	"github.com/DanRulev/vocaquiz/internal/models"
	"github.com/DanRulev/vocaquiz/internal/repository"
	"github.com/DanRulev/vocaquiz/internal/service"
	"github.com/DanRulev/vocaquiz/internal/storage/cache"
	"github.com/DanRulev/vocaquiz/internal/storage/db"
	"github.com/DanRulev/vocaquiz/internal/vocabulary"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "vocaquiz",
	Short: "English-Polish vocabulary quizzes over Telegram",
	Long: `vocaquiz runs a Telegram bot with category, random, difficult-word
and final quizzes, flashcards and bookmarks, and manages per-user history.`,
	SilenceUsage: true,
}

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

type app struct {
	cfg   *config.Config
	log   *zap.Logger
	db    *sqlx.DB
	repos repository.Repository
	vocab *vocabulary.Vocabulary
}

func newApp() (*app, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}

	logger := setupLogger(cfg.Env)

	vocab, err := vocabulary.Load(cfg.Vocabulary.Path)
	if err != nil {
		return nil, fmt.Errorf("failed load vocabulary: %w", err)
	}

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed init db: %w", err)
	}

	logger.Debug("app initialized",
		zap.String("driver", cfg.DB.Driver),
		zap.Int("categories", vocab.CategoryCount()),
	)

	return &app{
		cfg:   cfg,
		log:   logger,
		db:    conn,
		repos: repository.NewRepository(conn),
		vocab: vocab,
	}, nil
}

func (a *app) services(notifier service.Notifier) *service.Service {
	stores := service.Stores{
		Sessions: cache.NewStore[*service.Session](),
		Cursors:  cache.NewStore[models.FlashcardCursor](),
	}
	return service.InitServices(a.vocab, a.repos, stores, notifier, service.NewRand(a.cfg.Quiz.Seed), a.log)
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn("failed to close db", zap.Error(err))
	}
	_ = a.log.Sync()
}

func main() {
	rootCmd.AddCommand(serveCmd, exportCmd, importCmd, statsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
