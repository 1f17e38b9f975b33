package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rcliao/yijing/internal/corpus"
	"github.com/rcliao/yijing/internal/progress"
)

func init() {
	cmd := &cobra.Command{
		Use:   "lesson",
		Short: "Learning materials and study progress",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List learning materials with completion marks",
			Args:  cobra.NoArgs,
			Run:   runLessonList,
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show a lesson's content",
			Args:  cobra.ExactArgs(1),
			Run:   runLessonShow,
		},
		&cobra.Command{
			Use:   "complete <id>",
			Short: "Mark a lesson complete",
			Args:  cobra.ExactArgs(1),
			Run:   runLessonComplete,
		},
		&cobra.Command{
			Use:   "learn <hexagram-id>",
			Short: "Mark a hexagram as learned",
			Args:  cobra.ExactArgs(1),
			Run:   runLessonLearn,
		},
	)

	RootCmd.AddCommand(cmd)
}

type lessonView struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Difficulty  string `json:"difficulty"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

func runLessonList(cmd *cobra.Command, args []string) {
	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p, err := s.Progress.Load(cmd.Context())
	if err != nil {
		exitErr("load progress", err)
	}

	var lessons []lessonView
	for _, m := range corpus.Default().Materials {
		lessons = append(lessons, lessonView{
			ID:          m.ID,
			Title:       m.Title,
			Difficulty:  m.Difficulty,
			Description: m.Description,
			Completed:   slices.Contains(p.CompletedLessons, m.ID),
		})
	}

	out := cmd.OutOrStdout()
	if !textMode() {
		printJSON(out, lessons)
		return
	}
	for _, l := range lessons {
		mark := " "
		if l.Completed {
			mark = color.New(color.FgGreen).Sprint("✓")
		}
		fmt.Fprintf(out, "[%s] %2d %s  %s\n", mark, l.ID, l.Title, l.Difficulty)
	}
}

func runLessonShow(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitErr("parse id", err)
	}
	m, ok := corpus.Default().Material(id)
	if !ok {
		exitErr("lesson show", fmt.Errorf("no lesson %d", id))
	}

	out := cmd.OutOrStdout()
	if !textMode() {
		printJSON(out, m)
		return
	}
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%d. %s", m.ID, m.Title)))
	fmt.Fprintf(out, "%s %s\n%s\n\n", labelStyle.Render("难度"), m.Difficulty, m.Description)
	for _, line := range m.Content {
		fmt.Fprintf(out, "  %s\n", line)
	}
}

func runLessonComplete(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitErr("parse id", err)
	}
	m, ok := corpus.Default().Material(id)
	if !ok {
		exitErr("lesson complete", fmt.Errorf("no lesson %d", id))
	}

	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p, unlocked, err := progress.NewTracker(s.Progress, nil, logger).Complete(cmd.Context(), id)
	if err != nil {
		exitErr("lesson complete", err)
	}

	out := cmd.OutOrStdout()
	if !textMode() {
		printJSON(out, map[string]any{"progress": p, "unlocked": unlocked})
		return
	}
	printOK(out, "%s (学习 %d 分钟, 连续 %d 天)", m.Title, p.StudyTime, p.Streak)
	for _, a := range unlocked {
		fmt.Fprintf(out, "%s %s  %s\n", a.Icon, color.New(color.FgYellow, color.Bold).Sprint(a.Title), a.Description)
	}
}

func runLessonLearn(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitErr("parse id", err)
	}
	h, ok := corpus.Default().Hexagram(id)
	if !ok {
		exitErr("lesson learn", fmt.Errorf("no hexagram %d", id))
	}

	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p, err := progress.NewTracker(s.Progress, nil, logger).Learn(cmd.Context(), id)
	if err != nil {
		exitErr("lesson learn", err)
	}

	out := cmd.OutOrStdout()
	if !textMode() {
		printJSON(out, p)
		return
	}
	printOK(out, "%s %s卦 (已学 %d/%d)", h.Symbol, h.Name, len(p.HexagramsLearned), corpus.HexagramCount)
}
