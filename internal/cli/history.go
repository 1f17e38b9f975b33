package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rcliao/yijing/internal/corpus"
	"github.com/rcliao/yijing/internal/divination"
	"github.com/rcliao/yijing/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage divination history",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List readings, newest first",
		Args:  cobra.NoArgs,
		Run:   runHistoryList,
	}
	list.Flags().StringP("type", "t", "", "Filter by type: quick, coin or ai")
	list.Flags().IntP("limit", "l", 0, "Max results (0 for all)")

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show one reading",
			Args:  cobra.ExactArgs(1),
			Run:   runHistoryShow,
		},
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Delete one reading",
			Args:  cobra.ExactArgs(1),
			Run:   runHistoryRm,
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete every reading",
			Args:  cobra.NoArgs,
			Run:   runHistoryClear,
		},
	)

	RootCmd.AddCommand(cmd)
}

func runHistoryList(cmd *cobra.Command, args []string) {
	typ, _ := cmd.Flags().GetString("type")
	limit, _ := cmd.Flags().GetInt("limit")
	if typ != "" && !model.ValidRecordTypes[model.RecordType(typ)] {
		exitErr("history list", fmt.Errorf("unknown type %q", typ))
	}

	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	records, err := s.History.List(cmd.Context())
	if err != nil {
		exitErr("history list", err)
	}

	filtered := records[:0]
	for _, r := range records {
		if typ == "" || string(r.Type) == typ {
			filtered = append(filtered, r)
		}
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	entries := divination.Resolve(corpus.Default(), filtered)

	out := cmd.OutOrStdout()
	if !textMode() {
		printJSON(out, entries)
		return
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%d  %s  %s %s卦  %s  %s\n",
			e.ID, e.Timestamp.Local().Format("2006-01-02 15:04"), e.Hexagram.Symbol, e.Hexagram.Name, e.Method, e.Question)
	}
}

func parseID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		exitErr("parse id", err)
	}
	return id
}

func runHistoryShow(cmd *cobra.Command, args []string) {
	id := parseID(args[0])

	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	rec, ok, err := s.History.Get(cmd.Context(), id)
	if err != nil {
		exitErr("history show", err)
	}
	if !ok {
		exitErr("history show", fmt.Errorf("no reading with id %d", id))
	}
	e := divination.Resolve(corpus.Default(), []model.DivinationRecord{rec})[0]

	out := cmd.OutOrStdout()
	if !textMode() {
		printJSON(out, e)
		return
	}
	fmt.Fprintf(out, "%s  %s\n", e.Method, e.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(out, hexagramCard(e.Hexagram, false))
	if e.Details != "" {
		fmt.Fprintf(out, "爻: %s\n", e.Details)
	}
	if e.Question != "" {
		fmt.Fprintf(out, "问: %s\n\n%s\n", e.Question, e.AIResponse)
	}
}

func runHistoryRm(cmd *cobra.Command, args []string) {
	id := parseID(args[0])

	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.History.Remove(cmd.Context(), id); err != nil {
		exitErr("history rm", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%d}`+"\n", id)
}

func runHistoryClear(cmd *cobra.Command, args []string) {
	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.History.Clear(cmd.Context()); err != nil {
		exitErr("history clear", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), `{"ok":true}`)
}
