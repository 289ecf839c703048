package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hollowcrate/armjit/disasm"
)

var flagOut string

func main() {
	rootCmd := &cobra.Command{
		Use:   "armdis [inputfile]",
		Short: "Disassemble a compiled ARM A32 word stream",
		Args:  cobra.ExactArgs(1),
		RunE:  runDisassemble,
	}
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "write disassembly to this file instead of stdout")

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDisassemble(cmd *cobra.Command, args []string) error {
	code, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	text, err := disasm.Disassemble(code)
	if err != nil {
		return err
	}

	if flagOut == "" {
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}
	if err := os.WriteFile(flagOut, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", flagOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "disassembly written to %s\n", flagOut)
	return nil
}
