package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hollowcrate/armjit/compiler"
)

var (
	flagSymbols []string
	flagOut     string
	flagInspect bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "armjit [expression]",
		Short: "Compile an arithmetic expression to an ARM A32 subroutine",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompile,
	}
	rootCmd.Flags().StringArrayVarP(&flagSymbols, "symbol", "s", nil, "name=address binding for a free variable or function, repeatable")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "write raw machine code to this file instead of printing hex words")
	rootCmd.Flags().BoolVar(&flagInspect, "inspect", false, "emit with placeholder addresses instead of resolving --symbol, for previewing shape before a symbol table exists")

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCompile(cmd *cobra.Command, args []string) error {
	var code []byte

	if flagInspect {
		var err error
		code, err = compiler.New().CompileForInspection(args[0])
		if err != nil {
			return err
		}
	} else {
		symbols, err := parseSymbols(flagSymbols)
		if err != nil {
			return err
		}
		code, err = compiler.New().Compile(args[0], symbols)
		if err != nil {
			return err
		}
	}

	if flagOut != "" {
		if err := os.WriteFile(flagOut, code, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", flagOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(code), flagOut)
		return nil
	}

	for i := 0; i < len(code); i += 4 {
		if i > 0 {
			fmt.Fprint(cmd.OutOrStdout(), " ")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%02x%02x%02x%02x", code[i+3], code[i+2], code[i+1], code[i])
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

// parseSymbols turns a set of "name=0xADDR" (or decimal) flags into a
// compiler.SymbolTable.
func parseSymbols(raw []string) (compiler.SymbolTable, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	table := make(compiler.SymbolTable, len(raw))
	for _, entry := range raw {
		name, addrText, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --symbol %q, want name=address", entry)
		}
		addr, err := strconv.ParseUint(strings.TrimSpace(addrText), 0, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid address in --symbol %q: %w", entry, err)
		}
		table[strings.TrimSpace(name)] = uint32(addr)
	}
	return table, nil
}
