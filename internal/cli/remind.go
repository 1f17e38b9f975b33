package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/yijing/internal/reminder"
)

func init() {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Show the next study reminders",
		Long:  "Show when the study reminder and the weekly report fire next, from the studyReminder, weeklyReport and reminderTime settings.",
		Args:  cobra.NoArgs,
		Run:   runRemind,
	}

	RootCmd.AddCommand(cmd)
}

func runRemind(cmd *cobra.Command, args []string) {
	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	st, err := s.Settings.Load(cmd.Context())
	if err != nil {
		exitErr("load settings", err)
	}
	rs, err := reminder.Next(st, time.Now())
	if err != nil {
		exitErr("remind", err)
	}
	if rs == nil {
		rs = []reminder.Reminder{}
	}

	out := cmd.OutOrStdout()
	if !textMode() {
		printJSON(out, rs)
		return
	}
	if len(rs) == 0 {
		fmt.Fprintln(out, "reminders are off")
		return
	}
	for _, r := range rs {
		fmt.Fprintf(out, "%-14s %s  (%s)\n", r.Kind, r.Next.Format("Mon 2006-01-02 15:04"), r.Spec)
	}
}
