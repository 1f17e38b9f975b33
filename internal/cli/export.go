package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every namespace as JSON",
		Long:  "Export the raw value of every namespace as one JSON document. Restore it with import.",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStores()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	snap, err := s.Export(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}

	printJSON(cmd.OutOrStdout(), snap)
}
