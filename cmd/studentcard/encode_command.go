package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"studentcard/internal/codec"
	"studentcard/internal/config"
	"studentcard/internal/fileutil"
	"studentcard/internal/logging"
	"studentcard/internal/student"
)

func newEncodeCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode the example record's data fields",
		Long: "Encode the example record's data fields. The greet behavior has no\n" +
			"text representation and is always left out.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ctx.logger(cmd, "encode")

			format, err := ctx.format(formatFlag)
			if err != nil {
				return err
			}
			payload, err := codec.Marshal(student.Example().Data, format)
			if err != nil {
				return err
			}
			if !bytes.HasSuffix(payload, []byte("\n")) {
				payload = append(payload, '\n')
			}

			target := strings.TrimSpace(outputPath)
			if target == "" || target == "-" {
				_, err := cmd.OutOrStdout().Write(payload)
				return err
			}

			expanded, err := config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			if err := fileutil.WriteFileAtomic(expanded, payload, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", expanded, err)
			}
			logger.Info("wrote encoded record",
				logging.String(logging.FieldPath, expanded),
				logging.String(logging.FieldFormat, string(format)),
				logging.Int(logging.FieldBytes, len(payload)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s record to %s\n", format, expanded)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", formatFlagUsage())
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}
