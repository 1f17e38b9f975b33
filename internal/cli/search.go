package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/yijing/internal/corpus"
	"github.com/rcliao/yijing/internal/search"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search hexagrams, learning materials and trigrams",
		Long: `Search the corpus by substring. Filters are OR within a flag and AND across
flags: --fortune and --trigram narrow hexagrams, --difficulty narrows materials.
Non-blank queries are remembered; see "search history".`,
		Run: runSearch,
	}

	cmd.Flags().StringP("scope", "s", "all", "all, hexagrams, materials or trigrams")
	cmd.Flags().StringSlice("fortune", nil, "Fortune filter (大吉, 吉, 中吉, 中平, 凶)")
	cmd.Flags().StringSlice("difficulty", nil, "Difficulty filter (入门, 进阶, 高级)")
	cmd.Flags().StringSlice("trigram", nil, "Upper or lower trigram filter")

	hist := &cobra.Command{
		Use:   "history",
		Short: "Show recent searches",
		Args:  cobra.NoArgs,
		Run:   runSearchHistory,
	}
	hist.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget recent searches",
		Args:  cobra.NoArgs,
		Run:   runSearchHistoryClear,
	})
	cmd.AddCommand(hist)

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	scopeStr, _ := cmd.Flags().GetString("scope")
	fortune, _ := cmd.Flags().GetStringSlice("fortune")
	difficulty, _ := cmd.Flags().GetStringSlice("difficulty")
	trigram, _ := cmd.Flags().GetStringSlice("trigram")
	query := strings.Join(args, " ")

	scope, err := search.ParseScope(scopeStr)
	if err != nil {
		exitErr("search", err)
	}

	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results := search.Search(corpus.Default(), search.Query{
		Text:  query,
		Scope: scope,
		Filters: search.Filters{
			Fortune:    fortune,
			Difficulty: difficulty,
			Trigram:    trigram,
		},
	})
	if _, err := s.Searches.Record(cmd.Context(), query); err != nil {
		exitErr("record search", err)
	}

	out := cmd.OutOrStdout()
	if !textMode() {
		printJSON(out, results)
		return
	}
	if len(results) == 0 {
		fmt.Fprintln(out, "no results")
		return
	}
	for _, r := range results {
		switch {
		case r.Hexagram != nil:
			fmt.Fprintf(out, "[卦] %s %s  %s  %s\n", r.Hexagram.Symbol, r.Title(), r.Hexagram.Description, fortuneLabel(r.Hexagram.Fortune))
		case r.Material != nil:
			fmt.Fprintf(out, "[学] %d %s  %s\n", r.Material.ID, r.Title(), r.Material.Difficulty)
		case r.Trigram != nil:
			fmt.Fprintf(out, "[八卦] %s %s  %s\n", r.Trigram.Symbol, r.Title(), r.Trigram.Meaning)
		}
	}
}

func runSearchHistory(cmd *cobra.Command, args []string) {
	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	queries, err := s.Searches.List(cmd.Context())
	if err != nil {
		exitErr("search history", err)
	}

	out := cmd.OutOrStdout()
	if !textMode() {
		printJSON(out, queries)
		return
	}
	for _, q := range queries {
		fmt.Fprintln(out, q)
	}
}

func runSearchHistoryClear(cmd *cobra.Command, args []string) {
	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.Searches.Clear(cmd.Context()); err != nil {
		exitErr("clear search history", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), `{"ok":true}`)
}
