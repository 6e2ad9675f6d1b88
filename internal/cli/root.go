package cli

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openpaws/synthfeedback/internal/model"
	"github.com/openpaws/synthfeedback/internal/telemetry"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "synthfeedback",
	Short: "Synthetic persona feedback for content about animals",
	Long: `synthfeedback watches a storage bucket for task files, asks a generative
model to judge each task through the eyes of a synthetic persona, and writes
the judgment back as a Label Studio annotation record.

Personas are drawn at start-up from human and non-human pools and used in
round-robin order. Each task is rated for harm to animals, with a short
explanation and nine 1-5 ratings.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. ctx is cancelled on shutdown signals.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "synthfeedback %s\n", telemetry.Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.synthfeedback/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().String("log-format", "json", "log format (json, console)")

	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	setDefaults(viper.GetViper(), "", reflect.ValueOf(*model.DefaultConfig()))

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(home + "/.synthfeedback")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// SYNTHFEEDBACK_LLM_MODEL overrides llm.model
	viper.SetEnvPrefix("SYNTHFEEDBACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.BindEnv("project_id", "SYNTHFEEDBACK_PROJECT_ID", "GOOGLE_CLOUD_PROJECT")

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setDefaults registers every field of the default configuration so that
// environment variables reach keys the config file does not mention.
func setDefaults(v *viper.Viper, prefix string, val reflect.Value) {
	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		key := t.Field(i).Tag.Get("mapstructure")
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		field := val.Field(i)
		if field.Kind() == reflect.Struct {
			setDefaults(v, key, field)
			continue
		}
		v.SetDefault(key, field.Interface())
	}
}

// loadConfig merges defaults, config file, environment and flags.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	applyProviderEnv(cfg)
	return cfg, nil
}

// applyProviderEnv fills provider credentials from their conventional
// environment variables when the configuration leaves them empty.
func applyProviderEnv(cfg *model.Config) {
	if cfg.LLM.APIKey == "" {
		var names []string
		switch strings.ToLower(cfg.LLM.Provider) {
		case "", "gemini":
			names = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}
		case "openai":
			names = []string{"OPENAI_API_KEY"}
		case "anthropic", "claude":
			names = []string{"ANTHROPIC_API_KEY"}
		}
		for _, name := range names {
			if key := os.Getenv(name); key != "" {
				cfg.LLM.APIKey = key
				break
			}
		}
	}
	if cfg.LLM.BaseURL == "" && strings.EqualFold(cfg.LLM.Provider, "ollama") {
		cfg.LLM.BaseURL = os.Getenv("OLLAMA_BASE_URL")
	}
}
