package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hollowcrate/armjit/arm"
)

var (
	flagBase       uint32
	flagStack      uint32
	flagMemSize    uint32
	flagPokes      []string
	flagVerifyExec bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "armrun [inputfile]",
		Short: "Interpret a compiled ARM A32 subroutine and print its result",
		Args:  cobra.ExactArgs(1),
		RunE:  runInterpret,
	}
	rootCmd.Flags().Uint32Var(&flagBase, "base", 0x1000, "address the code is loaded at")
	rootCmd.Flags().Uint32Var(&flagStack, "stack", 0x9000, "initial stack pointer")
	rootCmd.Flags().Uint32Var(&flagMemSize, "mem", 0x10000, "total addressable memory in bytes")
	rootCmd.Flags().StringArrayVar(&flagPokes, "poke", nil, "address=value word to write into memory before running, repeatable")
	rootCmd.Flags().BoolVar(&flagVerifyExec, "verify-exec", false, "confirm the code can be mapped read+execute before running it")

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runInterpret(cmd *cobra.Command, args []string) error {
	code, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	if flagVerifyExec {
		if err := arm.VerifyExecutableMapping(code); err != nil {
			return fmt.Errorf("executable-mapping check failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "code is mappable as read+execute memory")
	}

	cpu := arm.New(int(flagMemSize))
	cpu.LoadCode(flagBase, code)

	for _, poke := range flagPokes {
		addr, value, err := parsePoke(poke)
		if err != nil {
			return err
		}
		cpu.WriteU32(addr, value)
	}

	result, err := cpu.Call(flagBase, flagStack)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d\n", result)
	return nil
}

func parsePoke(entry string) (addr, value uint32, err error) {
	addrText, valueText, ok := strings.Cut(entry, "=")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --poke %q, want address=value", entry)
	}
	a, err := strconv.ParseUint(strings.TrimSpace(addrText), 0, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid address in --poke %q: %w", entry, err)
	}
	v, err := strconv.ParseUint(strings.TrimSpace(valueText), 0, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value in --poke %q: %w", entry, err)
	}
	return uint32(a), uint32(v), nil
}
