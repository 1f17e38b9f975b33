package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/yijing/internal/corpus"
	"github.com/rcliao/yijing/internal/model"
	"github.com/rcliao/yijing/internal/progress"
)

func init() {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show study progress and achievements",
		Args:  cobra.NoArgs,
		Run:   runProgress,
	}

	cmd.Flags().Bool("reset", false, "Clear all study progress")

	RootCmd.AddCommand(cmd)
}

type progressView struct {
	model.Progress
	Overall            int                    `json:"overall"`
	TotalLessons       int                    `json:"totalLessons"`
	UnlockedDetails    []progress.Achievement `json:"unlockedDetails"`
	HexagramsRemaining int                    `json:"hexagramsRemaining"`
}

func runProgress(cmd *cobra.Command, args []string) {
	reset, _ := cmd.Flags().GetBool("reset")

	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	t := progress.NewTracker(s.Progress, nil, logger)
	if reset {
		if err := t.Reset(cmd.Context()); err != nil {
			exitErr("reset progress", err)
		}
	}
	p, err := t.Load(cmd.Context())
	if err != nil {
		exitErr("load progress", err)
	}

	total := len(corpus.Default().Materials)
	v := progressView{
		Progress:           p,
		Overall:            progress.Overall(p, total),
		TotalLessons:       total,
		UnlockedDetails:    []progress.Achievement{},
		HexagramsRemaining: corpus.HexagramCount - len(p.HexagramsLearned),
	}
	for _, id := range p.Achievements {
		v.UnlockedDetails = append(v.UnlockedDetails, progress.Lookup(id))
	}

	out := cmd.OutOrStdout()
	if !textMode() {
		printJSON(out, v)
		return
	}
	last := "-"
	if p.LastStudyDate != nil {
		last = *p.LastStudyDate
	}
	fmt.Fprintf(out, "课程 %d/%d (%d%%)\n", len(p.CompletedLessons), total, v.Overall)
	fmt.Fprintf(out, "学习时长 %d 分钟  连续 %d 天  最近 %s\n", p.StudyTime, p.Streak, last)
	fmt.Fprintf(out, "已学卦象 %d/%d\n", len(p.HexagramsLearned), corpus.HexagramCount)
	for _, a := range v.UnlockedDetails {
		fmt.Fprintf(out, "%s %s  %s\n", a.Icon, a.Title, a.Description)
	}
}
