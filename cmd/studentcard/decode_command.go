package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studentcard/internal/codec"
	"studentcard/internal/fileutil"
	"studentcard/internal/logging"
)

func newDecodeCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var canonical bool

	cmd := &cobra.Command{
		Use:   "decode [file|-]",
		Short: "Decode a record and print it",
		Long: "Decode a record from a file (or stdin) and print its inspect form.\n" +
			"The result is plain data: no greet behavior is attached.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ctx.logger(cmd, "decode")

			format, err := ctx.format(formatFlag)
			if err != nil {
				return err
			}

			var source string
			if len(args) == 1 {
				source = args[0]
			}
			raw, err := fileutil.ReadInput(source, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			data, err := codec.Unmarshal(raw, format)
			if err != nil {
				logger.Warn("decode failed",
					logging.String(logging.FieldFormat, string(format)),
					logging.Error(err),
				)
				return err
			}
			logger.Debug("decoded record",
				logging.String(logging.FieldFormat, string(format)),
				logging.Int(logging.FieldBytes, len(raw)),
				logging.Bool(logging.FieldCanonical, canonical),
			)

			out := cmd.OutOrStdout()
			if canonical {
				encoded, err := codec.Encode(data)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, encoded)
				return nil
			}
			fmt.Fprintln(out, data)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", formatFlagUsage())
	cmd.Flags().BoolVar(&canonical, "canonical", false, "Print the canonical JSON encoding instead of the inspect form")
	return cmd
}
