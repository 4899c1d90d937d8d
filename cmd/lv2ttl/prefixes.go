package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func prefixesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "prefixes",
		Short: "List the namespace prefixes available to manifests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			registry, err := cfg.Registry()
			if err != nil {
				return err
			}

			prefixes := registry.Prefixes()
			width := 0
			for _, prefix := range prefixes {
				width = max(width, len(prefix)+1)
			}
			for _, prefix := range prefixes {
				ns, _ := registry.Namespace(prefix)
				fmt.Fprintf(cmd.OutOrStdout(), "%-*s  <%s>\n", width, prefix+":", ns)
			}
			return nil
		},
	}
}
