package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/javagen/java/syntax"
	"github.com/dhamidi/javagen/project"
)

func newCheckCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "check [file.java...]",
		Short: "Check Java files against the Java grammar",
		Long:  "Check the given Java files, or every Java file below --root when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				var err error
				files, err = project.NewLayout(root).JavaFiles()
				if err != nil {
					return err
				}
			}

			failed := 0
			for _, file := range files {
				src, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read java file: %w", err)
				}
				if err := syntax.CheckFile(cmd.Context(), file, src); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					failed++
					continue
				}
				log.Info("ok", "file", file)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files have syntax errors", failed, len(files))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "project root to scan when no files are given")

	return cmd
}
