package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/moveday/internal/cli"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "moveday",
		Short:   "MoveDay - move planning checklist server",
		Version: Version,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(resetPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resetPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset-password [email]",
		Short: "Reset a user's password to a temporary one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := cmd.Flags().GetString("db")
			if err != nil {
				return err
			}
			return cli.RunResetPasswordCommand(dbPath, args[0])
		},
	}

	cmd.Flags().String("db", "data/moveday.db", "path to the SQLite database")

	return cmd
}
