package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/swiftpen/objc2swift/pkg/codegen"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <file.m> <expected.swift>",
		Short: "Convert a file and diff the result against an expected rendering",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := convertFile(args[0], codegen.DefaultOptions())
			if err != nil {
				return err
			}
			expected, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read expected: %w", err)
			}

			if result.Code == string(expected) {
				color.Green("✓ %s matches %s", args[0], args[1])
				return nil
			}

			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(string(expected), result.Code, false)
			fmt.Println(dmp.DiffPrettyText(diffs))
			return fmt.Errorf("output differs from %s", args[1])
		},
	}
}
