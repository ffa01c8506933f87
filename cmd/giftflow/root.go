package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultEnvFile = ".env"

// newRootCmd assembles the command tree. It is rebuilt per invocation so tests
// never share flag state.
func newRootCmd() *cobra.Command {
	var configFile, envFile string

	root := &cobra.Command{
		Use:          "giftflow",
		Short:        "Allocate items to recipients through a flow network",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile(envFile, cmd.Flags().Changed("env-file"))
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&envFile, "env-file", defaultEnvFile, "dotenv file with GIFTFLOW_* variables")

	root.AddCommand(newSolveCmd(&configFile))

	return root
}

// loadEnvFile exports the variables of path without overriding the real
// environment. A missing default file is not an error; a missing explicit one is.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("env file %s: %w", path, err)
	}

	return nil
}
