package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show every preference",
			Args:  cobra.NoArgs,
			Run:   runSettingsShow,
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Change one preference by its JSON name",
			Args:  cobra.ExactArgs(2),
			Run:   runSettingsSet,
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Restore default preferences",
			Args:  cobra.NoArgs,
			Run:   runSettingsReset,
		},
	)

	RootCmd.AddCommand(cmd)
}

func printSettings(cmd *cobra.Command, v any) {
	out := cmd.OutOrStdout()
	if !textMode() {
		printJSON(out, v)
		return
	}
	b, _ := json.Marshal(v)
	var fields map[string]any
	_ = json.Unmarshal(b, &fields)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%-24s %v\n", k, fields[k])
	}
}

func runSettingsShow(cmd *cobra.Command, args []string) {
	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	st, err := s.Settings.Load(cmd.Context())
	if err != nil {
		exitErr("load settings", err)
	}
	printSettings(cmd, st)
}

func runSettingsSet(cmd *cobra.Command, args []string) {
	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	st, err := s.Settings.Set(cmd.Context(), args[0], args[1])
	if err != nil {
		exitErr("set "+args[0], err)
	}
	printSettings(cmd, st)
}

func runSettingsReset(cmd *cobra.Command, args []string) {
	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	st, err := s.Settings.Reset(cmd.Context())
	if err != nil {
		exitErr("reset settings", err)
	}
	printSettings(cmd, st)
}
