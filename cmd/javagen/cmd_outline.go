package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/javagen/format"
	"github.com/dhamidi/javagen/schema"
)

func newOutlineCmd() *cobra.Command {
	var outlineFormat string

	cmd := &cobra.Command{
		Use:   "outline <decl.yaml>",
		Short: "Print the members of every declaration without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := schema.Load(args[0])
			if err != nil {
				return err
			}
			decls, err := f.Declarations()
			if err != nil {
				return err
			}
			enc, err := format.New(outlineFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			for _, d := range decls {
				if err := enc.Encode(d); err != nil {
					return fmt.Errorf("encode %s: %w", d.SimpleName(), err)
				}
				if outlineFormat == "json" {
					fmt.Fprintln(cmd.OutOrStdout())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outlineFormat, "format", "f", "line", "output format (line, json)")

	return cmd
}
