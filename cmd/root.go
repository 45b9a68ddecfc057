package cmd

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkravets/talentscout/internal/secrets"
)

const (
	app = "talentscout"

	// The one recognized credential for the remote completion service.
	// Absence routes every remote call to the deterministic fallbacks.
	apiKeyEnv = "GEMINI_API_KEY"
)

type Config struct {
	DataFile string        `mapstructure:"data-file"`
	Listen   string        `mapstructure:"listen"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "talentscout is a conversational assistant that interviews candidates and scores their answers",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// The deployment keeps the Gemini key in a local .env file.
	_ = godotenv.Load()

	if err := viper.BindEnv("data-file", "TALENTSCOUT_DATA_FILE"); err != nil {
		log.Fatalf("binding TALENTSCOUT_DATA_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is talentscout.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The assistant runs fine without a config file; a file that exists but
	// does not parse is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}

// resolveAPIKey finds the Gemini credential: config value, key file, or the
// GEMINI_API_KEY environment variable. An empty result is not an error.
func resolveAPIKey(config *Config) (string, error) {
	src := secrets.Source{Name: "gemini api key", Env: apiKeyEnv}
	if config != nil && config.Gemini != nil {
		src.Value = config.Gemini.APIKey
		src.File = config.Gemini.APIKeyFile
	}
	return secrets.Load(src)
}

func geminiModel(config *Config) string {
	if config != nil && config.Gemini != nil {
		return config.Gemini.Model
	}
	return ""
}

func dataFile(config *Config) string {
	if path := viper.GetString("data-file"); path != "" {
		return path
	}
	if config != nil && config.DataFile != "" {
		return config.DataFile
	}
	return ""
}
