package cli

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/yijing/internal/corpus"
	"github.com/rcliao/yijing/internal/quiz"
)

func init() {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Generate a trigram quiz",
		Args:  cobra.NoArgs,
		Run:   runQuiz,
	}

	cmd.Flags().IntP("count", "n", 8, "Number of questions (max 8)")
	cmd.Flags().Int64("seed", 0, "Random seed (0 uses the clock)")

	cmd.AddCommand(&cobra.Command{
		Use:   "grade <score> <total>",
		Short: "Grade a quiz result",
		Args:  cobra.ExactArgs(2),
		Run:   runQuizGrade,
	})

	RootCmd.AddCommand(cmd)
}

func runQuiz(cmd *cobra.Command, args []string) {
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	qs, err := quiz.Generate(rand.New(rand.NewSource(seed)), corpus.Default().Trigrams, count)
	if err != nil {
		exitErr("quiz", err)
	}

	out := cmd.OutOrStdout()
	if !textMode() {
		printJSON(out, qs)
		return
	}
	for i, q := range qs {
		fmt.Fprintf(out, "%d. %s  (%s)\n", i+1, q.Symbol, q.Meaning)
		for j, o := range q.Options {
			fmt.Fprintf(out, "   %c. %s\n", 'A'+j, o)
		}
	}
	fmt.Fprint(out, "\n答案:")
	for i, q := range qs {
		fmt.Fprintf(out, " %d.%s", i+1, q.Answer)
	}
	fmt.Fprintln(out)
}

func runQuizGrade(cmd *cobra.Command, args []string) {
	score, err := strconv.Atoi(args[0])
	if err != nil {
		exitErr("parse score", err)
	}
	total, err := strconv.Atoi(args[1])
	if err != nil {
		exitErr("parse total", err)
	}
	if score < 0 || total <= 0 || score > total {
		exitErr("quiz grade", fmt.Errorf("score must be between 0 and total, got %d/%d", score, total))
	}

	g := quiz.Score(score, total)
	out := cmd.OutOrStdout()
	if !textMode() {
		printJSON(out, g)
		return
	}
	fmt.Fprintf(out, "%s %s (%d%%)\n", g.Letter, g.Title, g.Percent)
}
