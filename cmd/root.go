package cmd

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/josephlewis42/myshell/core/config"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	commandLine string
)

// loadConfig reads the configuration directory, falling back to the built in
// defaults when it hasn't been initialized.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}

	return configuration, err
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".myshell"
	}
	return filepath.Join(home, ".myshell")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "myshell",
	Short: "A basic interactive command interpreter",
	Long: `A basic interactive command interpreter.

Type program names and arguments, and hit enter. The builtins cd, help, exit,
cat and history run inside the shell; everything else is started from PATH.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		return runShell(cmd.Context(), configuration, commandLine)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath(), "config path")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single command line and exit")
}
