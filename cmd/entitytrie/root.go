package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "ENTITYTRIE"
	defaultConfigName = ".entitytrie"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "entitytrie",
	Short: "Compile HTML character references into a compact lookup trie",
	Long: `entitytrie compiles the WHATWG named character reference table
(entities.json) into a little-endian binary trie that a decoder can scan in
place, and generates an exhaustive Go test for the result.

Run without a subcommand it behaves like "entitytrie build": it reads
./entities.json and writes ./trie_little_endian.bin and ./all_entities_test.go.

Every flag can also be set in $HOME/.entitytrie.yaml (or ./.entitytrie.yaml)
or through ENTITYTRIE_<FLAG> environment variables, e.g.
ENTITYTRIE_DENSE_THRESHOLD=0.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runBuild()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is $HOME/%s.yaml)", defaultConfigName))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "Log level: debug, info, warning, error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	addBuildFlags(rootCmd.Flags())
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// initConfig applies the config file and ENTITYTRIE_* environment variables
// to every flag of cmd the user did not set explicitly.
func initConfig(cmd *cobra.Command) error {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(defaultConfigName)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfgErr := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if cfgErr != nil && (cfgFile != "" || !errors.As(cfgErr, &notFound)) {
		return fmt.Errorf("read config: %w", cfgErr)
	}

	if err := bindFlags(cmd, v); err != nil {
		return err
	}
	initLogger()

	if used := v.ConfigFileUsed(); used != "" {
		logrus.WithField("path", used).Debug("using config file")
	}
	return nil
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Changed || f.Name == "config" || !v.IsSet(f.Name) {
			return
		}
		val := v.Get(f.Name)
		switch val.(type) {
		case bool, int, int64, float64, string:
			bindErr = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
		default:
			b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(&val)
			if err != nil {
				bindErr = fmt.Errorf("flag %s: %w", f.Name, err)
				return
			}
			bindErr = cmd.Flags().Set(f.Name, string(b))
		}
		if bindErr != nil {
			bindErr = fmt.Errorf("flag %s: %w", f.Name, bindErr)
		}
	})
	return bindErr
}

func initLogger() {
	ll, err := logrus.ParseLevel(logLevel)
	if err != nil {
		ll = logrus.WarnLevel
	}
	logrus.SetLevel(ll)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, PadLevelText: true, DisableQuote: true})
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
