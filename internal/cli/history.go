package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanshshar/QuizMaster/internal/domain"
)

// NewHistoryCmd lists past attempts, newest first.
func NewHistoryCmd(configPath *string) *cobra.Command {
	var quizID string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past quiz attempts",
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway, closeStore, err := openGateway(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer closeStore()

			var attempts []domain.Attempt
			if quizID != "" {
				attempts, err = gateway.AttemptsByQuiz(cmd.Context(), quizID)
			} else {
				attempts, err = gateway.Attempts(cmd.Context())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(attempts) == 0 {
				fmt.Fprintln(out, "No attempts yet.")
				return nil
			}
			for _, attempt := range attempts {
				fmt.Fprintf(out, "%s  %-28s %d/%d (%d%%)  %s\n",
					attempt.Date.Local().Format("2006-01-02 15:04"),
					attempt.QuizTitle, attempt.Score, attempt.TotalQuestions,
					attempt.Percentage, attempt.UserName)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&quizID, "quiz", "", "only show attempts for this quiz id")
	return cmd
}
