package main

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/DanRulev/vocaquiz/internal/bot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if a.cfg.BotToken == "" {
			return errors.New("BOT_TOKEN is not set")
		}

		api, err := bot.NewBot(a.cfg.BotToken, a.cfg.Env)
		if err != nil {
			return fmt.Errorf("failed init bot: %w", err)
		}

		services := a.services(bot.NewNotifier(api, a.log))
		handler := bot.NewTelegramAPI(api, services, a.cfg.App.Timeout, a.log)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a.log.Info("serving", zap.String("env", a.cfg.Env))
		handler.Start(ctx)

		return nil
	},
}
