package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rcliao/yijing/internal/divination"
)

func init() {
	cmd := &cobra.Command{
		Use:   "divine [question]",
		Short: "Cast a reading with the default method",
		Long:  "Cast a reading using the defaultDivinationMethod setting. The question is required when that method is ai.",
		Run:   runDivine(""),
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "quick",
			Short: "Draw one hexagram at random",
			Args:  cobra.NoArgs,
			Run:   runDivine("quick"),
		},
		&cobra.Command{
			Use:   "coin",
			Short: "Six throws of three coins",
			Args:  cobra.NoArgs,
			Run:   runDivine("coin"),
		},
		&cobra.Command{
			Use:   "ask <question>",
			Short: "Consult with a question",
			Args:  cobra.MinimumNArgs(1),
			Run:   runDivine("ai"),
		},
	)

	RootCmd.AddCommand(cmd)
}

func runDivine(method string) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		s, err := openStores()
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		res, err := newDiviner(s).Divine(cmd.Context(), method, strings.Join(args, " "))
		if errors.Is(err, divination.ErrEmptyQuestion) {
			exitErr("divine", fmt.Errorf("%w (pass it as an argument)", err))
		}
		if err != nil {
			exitErr("divine", err)
		}

		out := cmd.OutOrStdout()
		if !textMode() {
			printJSON(out, res)
			return
		}
		fmt.Fprintln(out, hexagramCard(res.Hexagram, false))
		if len(res.Throws) > 0 {
			lines := make([]string, len(res.Throws))
			for i, t := range res.Throws {
				l := string(t.Line)
				if t.Line.Changing() {
					l = color.New(color.FgRed).Sprint(l)
				}
				lines[i] = l
			}
			fmt.Fprintf(out, "爻: %s\n", strings.Join(lines, ", "))
		}
		if res.Response != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, res.Response)
		}
		if res.Record != nil {
			printOK(out, "saved as %d", res.Record.ID)
		}
	}
}
