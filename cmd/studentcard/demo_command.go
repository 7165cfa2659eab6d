package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studentcard/internal/codec"
	"studentcard/internal/logging"
	"studentcard/internal/student"
)

func newDemoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the record walkthrough (default when no subcommand is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, ctx)
		},
	}
}

// runDemo prints, in order: the name via field access, the age via key lookup,
// the greeting, the canonical encoding, and the decoded record.
func runDemo(cmd *cobra.Command, ctx *commandContext) error {
	logger := ctx.logger(cmd, "demo")
	out := cmd.OutOrStdout()

	s := student.Example()
	fmt.Fprintln(out, s.Name)

	age, _ := s.Get(student.KeyAge)
	fmt.Fprintln(out, age)

	s.Greet(out)

	encoded, err := codec.Encode(s.Data)
	if err != nil {
		return err
	}
	logger.Debug("encoded record", logging.Int(logging.FieldBytes, len(encoded)))
	fmt.Fprintln(out, encoded)

	decoded, err := codec.Decode(encoded)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, decoded)
	return nil
}
