package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/DanRulev/vocaquiz/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportOpts struct {
	user   int64
	output string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a user's quiz history and settings as JSON",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		services := a.services(service.LogNotifier{Log: a.log})
		backup := services.Export(cmd.Context(), exportOpts.user)

		if exportOpts.output == "-" {
			err = writeBackup(cmd.OutOrStdout(), backup)
		} else {
			f, cerr := os.Create(exportOpts.output)
			if cerr != nil {
				return fmt.Errorf("failed create %s: %w", exportOpts.output, cerr)
			}
			err = writeAndClose(f, backup)
		}
		if err != nil {
			return err
		}

		a.log.Info("history exported",
			zap.Int64("user_id", exportOpts.user),
			zap.Int("keys", len(backup.QuizResults)),
			zap.String("output", exportOpts.output),
		)
		return nil
	},
}

func writeBackup(w io.Writer, backup any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup); err != nil {
		return fmt.Errorf("failed encode backup: %w", err)
	}
	return nil
}

// writeAndClose writes the backup and closes w, reporting a failed close.
func writeAndClose(w io.WriteCloser, backup any) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed close backup: %w", cerr)
		}
	}()

	return writeBackup(w, backup)
}

func init() {
	exportCmd.Flags().Int64Var(&exportOpts.user, "user", 0, "Telegram user id")
	exportCmd.Flags().StringVarP(&exportOpts.output, "output", "o", "-", "output file, - for stdout")
	cobra.CheckErr(exportCmd.MarkFlagRequired("user"))
}
