package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vanshshar/QuizMaster/internal/app"
	"github.com/vanshshar/QuizMaster/internal/catalog"
	"github.com/vanshshar/QuizMaster/internal/domain"
)

// NewPlayCmd builds the interactive quiz session command.
func NewPlayCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start an interactive quiz session",
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway, closeStore, err := openGateway(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer closeStore()

			session, err := app.NewSession(cmd.Context(), catalog.Default(), gateway)
			if err != nil {
				return err
			}
			return runPlay(cmd.Context(), session, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runPlay renders exactly one screen per iteration and feeds user intents
// back into the session until the user quits or input ends.
func runPlay(ctx context.Context, session *app.Session, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	for {
		var (
			quit bool
			err  error
		)
		switch session.Screen() {
		case app.ScreenNameEntry:
			quit, err = promptName(ctx, session, reader, out)
		case app.ScreenDashboard:
			quit, err = showDashboard(ctx, session, reader, out)
		case app.ScreenQuizTaking:
			quit, err = runQuiz(ctx, session, reader, out)
		case app.ScreenResults:
			quit, err = showResults(session, reader, out)
		}
		if err != nil {
			return err
		}
		if quit {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
	}
}

func promptName(ctx context.Context, session *app.Session, reader *bufio.Reader, out io.Writer) (bool, error) {
	fmt.Fprintln(out, "\nWelcome to QuizMaster!")
	fmt.Fprint(out, "Enter your name: ")

	name, ok := readLine(reader)
	if !ok {
		return true, nil
	}
	if err := session.SubmitName(ctx, name); err != nil {
		if errors.Is(err, domain.ErrNameTooShort) {
			fmt.Fprintf(out, "%s.\n", err)
			return false, nil
		}
		return false, err
	}
	return false, nil
}

func showDashboard(ctx context.Context, session *app.Session, reader *bufio.Reader, out io.Writer) (bool, error) {
	fmt.Fprintf(out, "\nWelcome back, %s!\n", session.UserName())

	stats, err := session.Stats(ctx)
	if err != nil {
		return false, err
	}
	fmt.Fprintf(out, "Attempts: %d | Best: %d%% | Last: %d%%\n\n", stats.TotalAttempts, stats.HighestScore, stats.LastAttemptScore)

	quizzes := session.Catalog().Quizzes()
	for i, quiz := range quizzes {
		taken, err := session.AttemptsByQuiz(ctx, quiz.ID)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(out, "%d. %s %s - %s (%d taken)\n", i+1, quiz.Icon, quiz.Title, quiz.Description, len(taken))
	}
	fmt.Fprintf(out, "\nPick a quiz (1-%d), or [l]ogout / [q]uit: ", len(quizzes))

	line, ok := readLine(reader)
	if !ok {
		return true, nil
	}
	switch strings.ToLower(line) {
	case "q":
		return true, nil
	case "l":
		if confirm(reader, out, "Log out? This clears your saved name.") {
			return false, session.Logout(ctx)
		}
		return false, nil
	}

	number, err := strconv.Atoi(line)
	if err != nil || number < 1 || number > len(quizzes) {
		fmt.Fprintln(out, "Unknown choice.")
		return false, nil
	}
	if err := session.SelectQuiz(quizzes[number-1].ID); err != nil {
		if errors.Is(err, domain.ErrQuizNotFound) {
			// Cannot happen for a pick off the rendered list; report and stay put.
			log.Printf("selected quiz does not exist: %v", err)
			fmt.Fprintln(out, "That quiz is not available.")
			return false, nil
		}
		return false, err
	}
	return false, nil
}

func runQuiz(ctx context.Context, session *app.Session, reader *bufio.Reader, out io.Writer) (bool, error) {
	runner := session.Runner()
	fmt.Fprintf(out, "\n%s %s - good luck, %s!\n", runner.Quiz().Icon, runner.Quiz().Title, session.UserName())

	for session.Screen() == app.ScreenQuizTaking {
		question := runner.Current()
		lastLetter := letterFor(len(question.Options) - 1)

		fmt.Fprintf(out, "\nQuestion %d of %d\n%s\n\n", runner.Index()+1, runner.Len(), question.Prompt)
		for i, option := range question.Options {
			fmt.Fprintf(out, "  %c. %s\n", letterFor(i), option)
		}
		fmt.Fprintf(out, "\nYour answer (A-%c), or [b]ack: ", lastLetter)

		line, ok := readLine(reader)
		if !ok {
			return true, nil
		}
		if strings.EqualFold(line, "b") {
			if confirm(reader, out, "Exit the quiz? Your progress will be lost.") {
				return false, session.Abandon()
			}
			continue
		}

		option, ok := parseLetter(line, len(question.Options))
		if !ok {
			fmt.Fprintf(out, "Please enter a letter A-%c.\n", lastLetter)
			continue
		}
		answer, err := session.SubmitAnswer(option)
		if err != nil {
			return false, err
		}

		if answer.IsCorrect {
			fmt.Fprintln(out, "\nCorrect!")
		} else {
			fmt.Fprintf(out, "\nIncorrect. The correct answer was %c. %s\n", letterFor(question.CorrectIndex), question.Options[question.CorrectIndex])
		}
		fmt.Fprintln(out, question.Explanation)

		if _, err := session.Advance(ctx); err != nil {
			return false, err
		}
	}
	return false, nil
}

func showResults(session *app.Session, reader *bufio.Reader, out io.Writer) (bool, error) {
	attempt, ok := session.LastAttempt()
	if !ok {
		return false, fmt.Errorf("results screen with no attempt")
	}

	fmt.Fprintf(out, "\nQuiz completed! Well done, %s!\n", attempt.UserName)
	fmt.Fprintf(out, "%s\n\n", attempt.QuizTitle)
	fmt.Fprintf(out, "Score: %d%% | Correct: %d | Wrong: %d | Total: %d\n",
		attempt.Percentage, attempt.Score, attempt.TotalQuestions-attempt.Score, attempt.TotalQuestions)
	fmt.Fprintf(out, "%s\n\n", performanceMessage(attempt.Percentage))

	for i, answer := range attempt.Answers {
		mark := "x"
		if answer.IsCorrect {
			mark = "+"
		}
		fmt.Fprintf(out, "  %2d. [%s] %s (you: %c, correct: %c)\n",
			i+1, mark, answer.Question, letterFor(answer.UserAnswer), letterFor(answer.CorrectAnswer))
	}
	fmt.Fprint(out, "\n[d]ashboard, [r]etake, or [q]uit: ")

	line, ok := readLine(reader)
	if !ok {
		return true, nil
	}
	switch strings.ToLower(line) {
	case "r":
		return false, session.Retake()
	case "q":
		return true, nil
	default:
		return false, session.BackToDashboard()
	}
}

func performanceMessage(percentage int) string {
	switch {
	case percentage >= 90:
		return "Outstanding!"
	case percentage >= 70:
		return "Great job!"
	case percentage >= 50:
		return "Good effort!"
	default:
		return "Keep practicing!"
	}
}

func letterFor(index int) byte {
	return byte('A' + index)
}

func parseLetter(line string, optionCount int) (int, bool) {
	line = strings.ToUpper(strings.TrimSpace(line))
	if len(line) != 1 {
		return -1, false
	}
	index := int(line[0] - 'A')
	if index < 0 || index >= optionCount {
		return -1, false
	}
	return index, true
}

func confirm(reader *bufio.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", message)
	line, ok := readLine(reader)
	if !ok {
		return false
	}
	line = strings.ToLower(line)
	return line == "y" || line == "yes"
}

func readLine(reader *bufio.Reader) (string, bool) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}
