package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const app = "onboardly"

// Config holds the serve command configuration, read from onboardly.yaml,
// flags and environment. Secrets (GEMINI_API_KEY, JWT_SECRET, DB_URL) stay in
// the environment and are read where they are used.
type Config struct {
	Server struct {
		Port    int    `mapstructure:"port"`
		BaseURL string `mapstructure:"base-url"`
	} `mapstructure:"server"`
	Registry struct {
		Source string `mapstructure:"source"` // "file" or "db"
		Path   string `mapstructure:"path"`
	} `mapstructure:"registry"`
	Checklist struct {
		Store string `mapstructure:"store"` // "file" or "redis"
		Dir   string `mapstructure:"dir"`
	} `mapstructure:"checklist"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Uploads struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"uploads"`
	Extraction struct {
		Mode  string `mapstructure:"mode"` // "vision" or "vision-ocr"
		Model string `mapstructure:"model"`
	} `mapstructure:"extraction"`
	Chat struct {
		Model  string `mapstructure:"model"`
		KBPath string `mapstructure:"kb-path"`
	} `mapstructure:"chat"`
}

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "onboardly is the backend for the smart onboarding and compliance copilot",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is onboardly.yaml in current directory)")
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
		viper.SetConfigName(app + ".yaml")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	// The config file is optional; defaults and env cover a dev setup.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.base-url", "http://localhost:8080")
	viper.SetDefault("registry.source", "file")
	viper.SetDefault("registry.path", "data/nursing_license_registry.json")
	viper.SetDefault("checklist.store", "file")
	viper.SetDefault("checklist.dir", "data/checklists")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("uploads.dir", "data/uploads")
	viper.SetDefault("extraction.mode", "vision")
	viper.SetDefault("chat.kb-path", "data/validation_kb.json")
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}
	return config, nil
}
