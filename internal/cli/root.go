package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/acme-air/flightinfo/internal/config"
)

var (
	// Version information
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"

	// Configuration
	cfgFile  string
	verbose  bool
	noColor  bool
	settings *viper.Viper

	// Colors
	errorColor = color.New(color.FgRed, color.Bold)
	infoColor  = color.New(color.FgCyan)
	warnColor  = color.New(color.FgYellow)

	// For testing - allows redirecting output
	colorOutput io.Writer = os.Stdout
	debugOutput io.Writer = os.Stderr
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "flightinfo",
	Short: "Flight Info Bot - departure lookups over MCP",
	Long: `flightinfo answers "when does my flight leave?" for a fixed set of cities.
It runs as an MCP (Model Context Protocol) server over stdio so AI agents can
call the FlightInfoBot tool, and it can query the board directly from the shell.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}
		return initConfig(cmd.Root())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version information
func SetVersion(v, c, b string) {
	version = v
	commit = c
	buildDate = b
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./flightinfo.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newServeCmd(),
		newLookupCmd(),
		newCitiesCmd(),
		newToolsCmd(),
		newAskCmd(),
	)
}

// initConfig reads in config file and ENV variables if set
func initConfig(root *cobra.Command) error {
	settings = config.New(cfgFile)
	_ = settings.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	if err := config.Read(settings, cfgFile != ""); err != nil {
		return err
	}
	if used := settings.ConfigFileUsed(); used != "" {
		Debug("Using config file: %s", used)
	}
	return nil
}

// loadConfig returns the resolved configuration, falling back to
// defaults and environment when the root command did not run
func loadConfig() (*config.Config, error) {
	if settings == nil {
		settings = config.New("")
	}
	return config.FromViper(settings)
}

// Helper functions for consistent output

// Error prints an error message
func Error(format string, args ...interface{}) {
	_, _ = fmt.Fprintln(debugOutput, errorColor.Sprintf("✗ "+format, args...))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	_, _ = fmt.Fprintln(colorOutput, infoColor.Sprintf("ℹ "+format, args...))
}

// Warn prints a warning message
func Warn(format string, args ...interface{}) {
	_, _ = fmt.Fprintln(debugOutput, warnColor.Sprintf("⚠ "+format, args...))
}

// Debug prints a debug message if verbose mode is enabled
func Debug(format string, args ...interface{}) {
	if IsVerbose() {
		_, _ = fmt.Fprintln(debugOutput, color.New(color.FgMagenta).Sprintf("» "+format, args...))
	}
}

// IsVerbose returns true if verbose mode is enabled
func IsVerbose() bool {
	if verbose {
		return true
	}
	return settings != nil && settings.GetBool("verbose")
}
