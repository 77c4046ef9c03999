package main

import (
	"fmt"

	"github.com/DanRulev/vocaquiz/internal/service"
	"github.com/spf13/cobra"
)

var statsUser int64

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print quiz statistics for one user or every stored user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		services := a.services(service.LogNotifier{Log: a.log})

		users := []int64{statsUser}
		if statsUser == 0 {
			users, err = a.repos.Users(ctx)
			if err != nil {
				return fmt.Errorf("failed list users: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		for _, userID := range users {
			stats := services.Results.AggregateStats(ctx, userID)
			fmt.Fprintf(out, "user %d: quizzes=%d average=%d%% categories=%d/%d\n",
				userID, stats.TotalQuizzes, stats.AverageScorePercent, stats.CompletedCategories, stats.TotalCategories)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int64Var(&statsUser, "user", 0, "Telegram user id, all users when omitted")
}
