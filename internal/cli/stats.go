package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context())
	if err != nil {
		exitErr("stats", err)
	}

	out := cmd.OutOrStdout()
	if !textMode() {
		printJSON(out, stats)
		return
	}
	fmt.Fprintf(out, "%s (%d bytes)\n", stats.DBPath, stats.DBSizeBytes)
	for _, ns := range stats.Namespaces {
		state := "absent"
		switch {
		case ns.Corrupt:
			state = "corrupt"
		case ns.Present:
			state = fmt.Sprintf("%d entries, %d bytes", ns.Entries, ns.Bytes)
		}
		fmt.Fprintf(out, "  %-20s %s\n", ns.NS, state)
	}
	for _, k := range stats.Foreign {
		fmt.Fprintf(out, "  %-20s unknown key\n", k)
	}
}
