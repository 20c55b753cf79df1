package cmd

import (
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze/generator"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "algorithms",
		Short: "List the supported generation algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range generator.Algorithms() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), a); err != nil {
					return err
				}
			}
			return nil
		},
	})
}
