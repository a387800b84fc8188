// Package cmd wires the sbml CLI with spf13/cobra, in the teacher's style
// (cmd/dwscript/cmd/root.go).
package cmd

import (
	"fmt"
	"os"

	"github.com/pchan37/glowing-engine/pkg/sbml"
	"github.com/spf13/cobra"
)

var (
	dumpTokens bool
	dumpAST    bool
)

// rootCmd implements spec.md §6's external interface: one positional
// source-file argument. `*errors.SyntaxError`/`*errors.SemanticError` are
// not process failures — they are reported on stdout and the process still
// exits 0. Any other invocation (wrong argument count) gets cobra's own
// usage message and a nonzero exit.
var rootCmd = &cobra.Command{
	Use:   "sbml <file>",
	Short: "Run an SBML program",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "print the token stream to stderr before evaluation")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST to stderr before evaluation")
}

func runFile(_ *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	source := string(content)

	if dumpTokens {
		tokens, _ := sbml.Tokens(source)
		for _, tok := range tokens {
			fmt.Fprintf(os.Stderr, "%s %q\n", tok.Type, tok.Literal)
		}
	}

	if dumpAST {
		program, parseErr := sbml.Parse(source)
		if parseErr == nil {
			fmt.Fprintln(os.Stderr, program.String())
		}
	}

	output, runErr := sbml.Run(source)
	fmt.Print(output)
	if runErr != nil {
		fmt.Println(runErr.Error())
	}
	return nil
}
