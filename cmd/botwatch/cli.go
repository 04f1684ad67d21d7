package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/botwatch-dev/botwatch/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "botwatch",
	Short: "Botwatch - bot monitoring dashboard backend",
	Long: `Botwatch is the REST backend for a bot monitoring dashboard.
It stores bots (MCP, Webhook or Custom OpenAI integrations) and their
test-run history in SQLite and serves the dashboard API.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			logrus.SetLevel(logrus.TraceLevel)
		}
		cli.SetConfigDir(configDir)
	},
}

// Build information variables
var (
	// Set by compiler via -ldflags
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"

	// Global configuration directory flag
	configDir string
)

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default: ~/.botwatch)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Botwatch\n")
			fmt.Printf("Version:    %s\n", version)
			fmt.Printf("Git Commit: %s\n", gitCommit)
			fmt.Printf("Build Time: %s\n", buildTime)
		},
	}
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cli.NewStartCmd(version))
	rootCmd.AddCommand(cli.NewStatusCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
