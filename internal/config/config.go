package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mmcdole/liri/internal/domain"
)

// Config holds all application configuration
type Config struct {
	Social   SocialConfig   `mapstructure:"social"`
	Music    MusicConfig    `mapstructure:"music"`
	Movie    MovieConfig    `mapstructure:"movie"`
	Fallback FallbackConfig `mapstructure:"fallback"`
	Journal  JournalConfig  `mapstructure:"journal"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	HTTP     HTTPConfig     `mapstructure:"http"`
}

// SocialConfig holds the favorites API settings
type SocialConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	BearerToken string `mapstructure:"bearer_token"`
	ScreenName  string `mapstructure:"screen_name"` // Whose favorites; empty = token owner
}

// MusicConfig holds Spotify client-credential settings
type MusicConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	TokenURL     string `mapstructure:"token_url"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
}

// MovieConfig holds OMDb settings
type MovieConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

// FallbackConfig locates the stored query file
type FallbackConfig struct {
	File string `mapstructure:"file"`
}

// JournalConfig locates the append-only results log
type JournalConfig struct {
	File string `mapstructure:"file"`
}

// LoggingConfig holds diagnostic logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// HTTPConfig holds outbound request settings
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Social: SocialConfig{
			BaseURL: "https://api.twitter.com/1.1/",
		},
		Music: MusicConfig{
			BaseURL:  "https://api.spotify.com/v1/",
			TokenURL: "https://accounts.spotify.com/api/token",
		},
		Movie: MovieConfig{
			BaseURL: "http://www.omdbapi.com/",
			APIKey:  "trilogy",
		},
		Fallback: FallbackConfig{
			File: "random.txt",
		},
		Journal: JournalConfig{
			File: "app.log",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
		HTTP: HTTPConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "liri", "liri.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "liri", "liri.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "liri")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "liri")
	}
}

// Credential environment variables kept from the keys file the tool grew out of.
var legacyEnv = map[string]string{
	"social.bearer_token": "TWITTER_BEARER_TOKEN",
	"music.client_id":     "SPOTIFY_ID",
	"music.client_secret": "SPOTIFY_SECRET",
	"movie.api_key":       "OMDB_API_KEY",
}

// LoadConfig loads configuration from .env, config.yaml and the environment.
// Extra search paths are consulted before the defaults.
func LoadConfig(paths ...string) (*Config, error) {
	// A missing .env is normal
	_ = godotenv.Load()

	cfg := DefaultConfig()
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(defaultConfigPath())
	v.AddConfigPath(".")

	// Environment variable overrides, e.g. LIRI_MOVIE_API_KEY
	v.SetEnvPrefix("LIRI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		envKey := "LIRI_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envKey, legacy); err != nil {
			return nil, fmt.Errorf("failed to bind env var %s: %w", legacy, err)
		}
	}

	// Register defaults so AutomaticEnv sees every key during Unmarshal
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("social.base_url", cfg.Social.BaseURL)
	v.SetDefault("social.bearer_token", cfg.Social.BearerToken)
	v.SetDefault("social.screen_name", cfg.Social.ScreenName)
	v.SetDefault("music.base_url", cfg.Music.BaseURL)
	v.SetDefault("music.token_url", cfg.Music.TokenURL)
	v.SetDefault("music.client_id", cfg.Music.ClientID)
	v.SetDefault("music.client_secret", cfg.Music.ClientSecret)
	v.SetDefault("movie.base_url", cfg.Movie.BaseURL)
	v.SetDefault("movie.api_key", cfg.Movie.APIKey)
	v.SetDefault("fallback.file", cfg.Fallback.File)
	v.SetDefault("journal.file", cfg.Journal.File)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("http.timeout", cfg.HTTP.Timeout)
}

// Validate checks that the credentials needed for the selected action are present
func (c *Config) Validate(sel domain.Selection) error {
	switch sel {
	case domain.ShowFavorites:
		if c.Social.BearerToken == "" {
			return fmt.Errorf("social bearer token is required. Set 'social.bearer_token' in config.yaml or TWITTER_BEARER_TOKEN")
		}
	case domain.SearchSong, domain.RunStoredQuery:
		if c.Music.ClientID == "" || c.Music.ClientSecret == "" {
			return fmt.Errorf("spotify client credentials are required. Set 'music.client_id' and 'music.client_secret' in config.yaml or SPOTIFY_ID and SPOTIFY_SECRET")
		}
	case domain.SearchMovie:
		if c.Movie.APIKey == "" {
			return fmt.Errorf("omdb api key is required. Set 'movie.api_key' in config.yaml or OMDB_API_KEY")
		}
	}
	return nil
}
