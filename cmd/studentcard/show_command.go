package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"studentcard/internal/student"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display every field of the example record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := student.Example()
			if jsonOutput {
				return writeJSON(cmd, s.Data)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Field", "Type", "Value"},
				fieldRows(s),
				ctx.colorize(cmd),
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the data fields as JSON")
	return cmd
}

// fieldRows lists the data fields followed by the bound behavior, which has
// no value representation.
func fieldRows(s *student.Student) [][]string {
	title := cases.Title(language.Und)
	rows := make([][]string, 0, len(student.Keys())+1)
	for _, field := range s.Fields() {
		rows = append(rows, []string{field.Key, title.String(kindLabel(field.Value)), student.FormatValue(field.Value)})
	}
	if _, ok := s.Get(student.KeyGreet); ok {
		rows = append(rows, []string{student.KeyGreet, title.String("behavior"), "[Function: greet] (not serialized)"})
	}
	return rows
}

func kindLabel(value any) string {
	switch value.(type) {
	case string:
		return "text"
	case int:
		return "integer"
	case bool:
		return "boolean"
	case []string:
		return "text list"
	default:
		return fmt.Sprintf("%T", value)
	}
}
