// Package cmd defines the CLI commands for the amzads tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aviadshiber/amzads/internal/client"
	"github.com/aviadshiber/amzads/internal/iostreams"
	"github.com/aviadshiber/amzads/internal/logging"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// versionInfo is set by main via SetVersionInfo.
	versionInfo struct {
		version string
		commit  string
		date    string
	}

	// Global flag values bound to viper.
	cfgProfileID string
	cfgRegion    string
	cfgSandbox   bool
	cfgQuiet     bool
	cfgDebug     bool
	cfgLogLevel  string
	cfgJSON      string
	cfgJQ        string
	cfgTemplate  string

	io     *iostreams.IOStreams
	logger *logrus.Logger
)

// SetVersionInfo stores build metadata for the version command.
func SetVersionInfo(version, commit, date string) {
	versionInfo.version = version
	versionInfo.commit = commit
	versionInfo.date = date
}

func init() {
	// .env values never override variables already set in the environment.
	_ = godotenv.Load()

	// Load config file into global viper.
	home, _ := os.UserHomeDir()
	if home != "" {
		viper.SetConfigFile(filepath.Join(home, ".config", "amzads", "config.yaml"))
		viper.SetConfigType("yaml")
		_ = viper.ReadInConfig() // Ignore error if file doesn't exist yet.
	}

	viper.SetEnvPrefix("AMZADS")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "amzads",
		Short: "Amazon Advertising CLI - manage campaigns and download reports",
		Long: `amzads is a command-line tool for the Amazon Advertising API.

It manages advertising profiles, campaigns, ad groups, keywords, targets and
product ads, requests keyword and bid recommendations, and requests, polls and
downloads reports and snapshots. Output can be formatted as JSON, tables, CSV,
JSONL, or filtered with jq expressions and Go templates.

Configuration is stored in ~/.config/amzads/config.yaml and can be overridden
with flags, environment variables (AMZADS_CLIENT_ID, AMZADS_PROFILE_ID,
AMZADS_ACCESS_TOKEN, ...) or a .env file in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s := getIO()
			s.SetQuiet(viper.GetBool("quiet"))

			level := viper.GetString("log_level")
			if viper.GetBool("debug") {
				level = logrus.DebugLevel.String()
			}
			l, err := logging.New(level, s.ErrOut)
			if err != nil {
				return err
			}
			logger = l

			if region := viper.GetString("region"); region != "" && !client.ValidRegion(region) {
				return errors.Errorf("invalid region %q; must be one of: %s", region, strings.Join(client.RegionCodes(), ", "))
			}
			return nil
		},
	}

	// Persistent flags available to all subcommands.
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgProfileID, "profile-id", "p", "", "Advertising profile ID (env: AMZADS_PROFILE_ID)")
	pf.StringVarP(&cfgRegion, "region", "r", "", "API region or marketplace code: NA, EU, FE, US, UK, JP ... (env: AMZADS_REGION)")
	pf.BoolVar(&cfgSandbox, "sandbox", false, "Send requests to the sandbox API (env: AMZADS_SANDBOX)")
	pf.BoolVarP(&cfgQuiet, "quiet", "q", false, "Suppress non-essential output (env: AMZADS_QUIET)")
	pf.BoolVar(&cfgDebug, "debug", false, "Log HTTP requests to stderr (env: AMZADS_DEBUG)")
	pf.StringVar(&cfgLogLevel, "log-level", "", "Log level: debug, info, warn, error (env: AMZADS_LOG_LEVEL)")
	pf.StringVar(&cfgJSON, "json", "", "Output JSON; optionally comma-separated field list")
	pf.StringVar(&cfgJQ, "jq", "", "Filter JSON output with a jq expression (requires --json)")
	pf.StringVar(&cfgTemplate, "template", "", "Format output with a Go template (requires --json)")

	// Allow --json to be used without a value (e.g., "amzads campaigns list --json").
	pf.Lookup("json").NoOptDefVal = " "

	// Bind flags to viper keys so env vars and config file values also work.
	_ = viper.BindPFlag("profile_id", pf.Lookup("profile-id"))
	_ = viper.BindPFlag("region", pf.Lookup("region"))
	_ = viper.BindPFlag("sandbox", pf.Lookup("sandbox"))
	_ = viper.BindPFlag("quiet", pf.Lookup("quiet"))
	_ = viper.BindPFlag("debug", pf.Lookup("debug"))
	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(),
		newAuthCmd(),
		newProfilesCmd(),
		newReportsCmd(),
		newSnapshotsCmd(),
		newRecommendationsCmd(),
		newAPICmd(),
	)
	for _, r := range resources {
		rootCmd.AddCommand(newResourceCmd(r))
	}

	return rootCmd
}

// Execute runs the root command. Called from main.
func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		// Print error in red to stderr.
		s := getIO()
		fmt.Fprintln(s.ErrOut, s.Failure("Error: "+err.Error()))
		return err
	}
	return nil
}

// getIO returns the current IOStreams instance, initializing if needed.
func getIO() *iostreams.IOStreams {
	if io == nil {
		io = iostreams.New()
	}
	return io
}

// getLogger returns the logger configured by the root command.
func getLogger() *logrus.Logger {
	if logger == nil {
		logger, _ = logging.New("", getIO().ErrOut)
	}
	return logger
}

// jsonOutputRequested reports whether the --json flag was explicitly set.
func jsonOutputRequested(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("json")
}
