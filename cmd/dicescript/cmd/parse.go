package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dicescript/dicescript/internal/errors"
	"github.com/dicescript/dicescript/pkg/dicescript"
	"github.com/spf13/cobra"
)

var parseExpr bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse dicescript source and print its expression tree",
	Long: `Parse dicescript source and print the parsed expression tree,
without evaluating it.

If no file is given, reads from stdin. Use -e to parse a single
expression given on the command line instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&parseExpr, "expression", "e", false, "parse an expression given on the command line")
}

func runParse(_ *cobra.Command, args []string) error {
	var source, filename string

	switch {
	case parseExpr:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		source = args[0]
		filename = "<arg>"
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		source = string(data)
		filename = args[0]
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		source = string(data)
		filename = "<stdin>"
	}

	program, err := dicescript.ParseExpression(source)
	if err != nil {
		if dsErr, ok := err.(*errors.Error); ok {
			dsErr.Source = source
			fmt.Fprintln(os.Stderr, dsErr.Format(true))
			return fmt.Errorf("%s: %s", filename, dsErr.Kind)
		}
		return err
	}

	fmt.Println(program.String())
	return nil
}
