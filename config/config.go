package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode     string `mapstructure:"mode"`
	Dotenv   string `mapstructure:"dotenv"`
	Handlers struct {
		Prometheus struct {
			Port string `mapstructure:"port"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Server struct {
		HTTPPort       string        `mapstructure:"HTTPPort"`
		Timeout        time.Duration `mapstructure:"HTTPTimeout"`
		AllowedOrigins []string      `mapstructure:"allowedOrigins"`
	} `mapstructure:"server"`
	Planner struct {
		MinDays      int    `mapstructure:"minDays"`
		MaxDays      int    `mapstructure:"maxDays"`
		MaxTravelers int    `mapstructure:"maxTravelers"`
		DefaultStyle string `mapstructure:"defaultStyle"`
		Currency     string `mapstructure:"currency"`
		Locale       string `mapstructure:"locale"`
	} `mapstructure:"planner"`
	Selection struct {
		NotificationTTL time.Duration `mapstructure:"notificationTTL"`
		SessionTTL      time.Duration `mapstructure:"sessionTTL"`
	} `mapstructure:"selection"`
	Chat struct {
		Model          string        `mapstructure:"model"`
		Timeout        time.Duration `mapstructure:"timeout"`
		ThinkingBudget int32         `mapstructure:"thinkingBudget"`
		APIKey         string        `mapstructure:"-"`
	} `mapstructure:"chat"`
	Session struct {
		Issuer   string        `mapstructure:"issuer"`
		Audience string        `mapstructure:"audience"`
		TokenTTL time.Duration `mapstructure:"tokenTTL"`
		Secret   string        `mapstructure:"-"`
	} `mapstructure:"session"`
}

// IsDevelopment reports whether colored, verbose logging should be used.
func (c Config) IsDevelopment() bool {
	return c.Mode == "" || c.Mode == "development"
}

func InitConfig() (Config, error) {
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	return load(v)
}

// load unmarshals v and pulls the secrets that only come from the environment.
func load(v *viper.Viper) (Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if mode := v.GetString("APP_ENV"); mode != "" {
		config.Mode = mode
	}
	config.Chat.APIKey = v.GetString("GOOGLE_GEMINI_API_KEY")
	config.Session.Secret = v.GetString("SESSION_SECRET")

	if err := config.validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.Planner.MinDays < 1 {
		return fmt.Errorf("planner.minDays must be >= 1, got %d", c.Planner.MinDays)
	}
	if c.Planner.MaxDays < c.Planner.MinDays {
		return fmt.Errorf("planner.maxDays (%d) must be >= planner.minDays (%d)", c.Planner.MaxDays, c.Planner.MinDays)
	}
	if c.Planner.MaxTravelers < 1 {
		return fmt.Errorf("planner.maxTravelers must be >= 1, got %d", c.Planner.MaxTravelers)
	}
	if c.Server.Timeout <= 0 {
		c.Server.Timeout = 60 * time.Second
	}
	if c.Selection.NotificationTTL <= 0 {
		c.Selection.NotificationTTL = 3 * time.Second
	}
	if c.Selection.SessionTTL <= 0 {
		c.Selection.SessionTTL = 24 * time.Hour
	}
	if c.Session.TokenTTL <= 0 {
		c.Session.TokenTTL = c.Selection.SessionTTL
	}
	return nil
}
