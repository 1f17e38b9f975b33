package cli

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/yijing/internal/corpus"
	"github.com/rcliao/yijing/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:     "hexagram",
		Aliases: []string{"hex"},
		Short:   "Look up hexagrams",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show a hexagram by its King Wen number (1-64)",
			Args:  cobra.ExactArgs(1),
			Run:   runHexagramShow,
		},
		&cobra.Command{
			Use:   "random",
			Short: "Show a random hexagram without recording it",
			Args:  cobra.NoArgs,
			Run:   runHexagramRandom,
		},
	)

	RootCmd.AddCommand(cmd)
}

func runHexagramShow(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitErr("parse id", err)
	}
	h, ok := corpus.Default().Hexagram(id)
	if !ok {
		exitErr("hexagram show", fmt.Errorf("no hexagram %d (want 1-%d)", id, corpus.HexagramCount))
	}
	printHexagram(cmd, h)
}

func runHexagramRandom(cmd *cobra.Command, args []string) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	printHexagram(cmd, corpus.Default().SelectRandom(rng))
}

func printHexagram(cmd *cobra.Command, h model.Hexagram) {
	out := cmd.OutOrStdout()
	if !textMode() {
		printJSON(out, h)
		return
	}
	fmt.Fprintln(out, hexagramCard(h, true))
}
