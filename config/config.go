package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Soft per-caller rate limit
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers []ProviderConfig
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name    string
	Enabled bool
	APIKey  string
	BaseURL string
	Model   string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// LLM providers: yaml list if present, otherwise the three known vendors
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:    getStringFromMap(providerMap, "name"),
						Enabled: getBoolFromMap(providerMap, "enabled"),
						APIKey:  SanitizeAPIKey(getStringFromMap(providerMap, "api_key")),
						BaseURL: getStringFromMap(providerMap, "base_url"),
						Model:   getStringFromMap(providerMap, "model"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{
			{Name: "groq", Enabled: true},
			{Name: "gemini", Enabled: true},
			{Name: "openai", Enabled: true},
		}
	}

	// Flat env overrides: GROQ_API_KEY, GEMINI_MODEL, etc.
	for i := range cfg.LLM.Providers {
		p := &cfg.LLM.Providers[i]
		if key := viper.GetString(p.Name + "_api_key"); key != "" {
			p.APIKey = SanitizeAPIKey(key)
		}
		if model := viper.GetString(p.Name + "_model"); model != "" {
			p.Model = model
		}
	}

	// Rate limit
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 30)
}

// SanitizeAPIKey trims whitespace and defensively strips a leading
// case-insensitive "Bearer " prefix pasted in from HTTP examples.
func SanitizeAPIKey(key string) string {
	key = strings.TrimSpace(key)
	if len(key) >= 7 && strings.EqualFold(key[:7], "bearer ") {
		key = strings.TrimSpace(key[7:])
	}
	return key
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}
