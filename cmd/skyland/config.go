package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyland/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate tuning files",
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the effective tuning as YAML",
	Long: `Prints the tuning that 'play' would use: the --config file when given,
otherwise the first file found on the search path, otherwise the
built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfigPrint,
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Load and validate a tuning file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigCheck,
}

func init() {
	configCmd.AddCommand(configPrintCmd)
	configCmd.AddCommand(configCheckCmd)
}

func runConfigPrint(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigCheck(cmd *cobra.Command, args []string) error {
	if _, err := config.LoadFile(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
	return nil
}
