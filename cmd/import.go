package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/DanRulev/vocaquiz/internal/models"
	"github.com/DanRulev/vocaquiz/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importOpts struct {
	user  int64
	input string
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Merge a JSON backup into a user's history",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		reader := cmd.InOrStdin()
		if importOpts.input != "-" {
			f, err := os.Open(importOpts.input)
			if err != nil {
				return fmt.Errorf("failed open %s: %w", importOpts.input, err)
			}
			defer f.Close()
			reader = f
		}

		backup, err := readBackup(reader)
		if err != nil {
			return err
		}

		services := a.services(service.LogNotifier{Log: a.log})
		if err := services.Import(cmd.Context(), importOpts.user, backup); err != nil {
			return fmt.Errorf("failed import backup: %w", err)
		}

		a.log.Info("history imported",
			zap.Int64("user_id", importOpts.user),
			zap.Int("keys", len(backup.QuizResults)),
		)
		return nil
	},
}

func readBackup(r io.Reader) (models.Backup, error) {
	var backup models.Backup
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return models.Backup{}, fmt.Errorf("failed decode backup: %w", err)
	}
	return backup, nil
}

func init() {
	importCmd.Flags().Int64Var(&importOpts.user, "user", 0, "Telegram user id")
	importCmd.Flags().StringVarP(&importOpts.input, "input", "i", "-", "backup file, - for stdin")
	cobra.CheckErr(importCmd.MarkFlagRequired("user"))
}
