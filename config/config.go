/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mikeb26/turnierplan-signage/signage"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "appsettings.yaml"

// environment variables that take precedence over the config file; secrets
// are usually kept out of the file
const (
	EnvInstanceURL       = "TURNIERPLAN_INSTANCE_URL"
	EnvAPIKey            = "TURNIERPLAN_API_KEY"
	EnvAPIKeySecret      = "TURNIERPLAN_API_KEY_SECRET"
	EnvS3AccessKeyID     = "TPSIGNS_S3_ACCESS_KEY_ID"
	EnvS3SecretAccessKey = "TPSIGNS_S3_SECRET_ACCESS_KEY"
	EnvDiscordBotToken   = "TPSIGNS_DISCORD_BOT_TOKEN"
	EnvCacheBucket       = "TPSIGNS_CACHE_BUCKET"
)

type Config struct {
	Adapter    AdapterConfig    `yaml:"adapter"`
	Generators GeneratorsConfig `yaml:"generators"`
	Cache      CacheConfig      `yaml:"cache"`
	Output     OutputConfig     `yaml:"output"`
	// Timezone is an IANA name used to print kickoff dates; empty means
	// the local zone of the machine.
	Timezone string `yaml:"timezone"`
}

// AdapterConfig holds the connection settings of the turnierplan.NET
// instance.
type AdapterConfig struct {
	InstanceURL  string `yaml:"instance_url"`
	APIKey       string `yaml:"api_key"`
	APIKeySecret string `yaml:"api_key_secret"`
}

type GeneratorsConfig struct {
	ChangingRoomSigns ChangingRoomSignsConfig `yaml:"changing_room_signs"`
	QrCodes           QrCodesConfig           `yaml:"qr_codes"`
}

type ChangingRoomSignsConfig struct {
	Enabled bool                     `yaml:"enabled"`
	Options ChangingRoomSignsOptions `yaml:"options"`
}

type ChangingRoomSignsOptions struct {
	FolderID              string   `yaml:"folder_id"`
	SkipTournamentIDs     []string `yaml:"skip_tournament_ids"`
	HomeTeamNamePattern   string   `yaml:"home_team_name_pattern"`
	NumberOfChangingRooms int      `yaml:"number_of_changing_rooms"`
	TitleFormat           string   `yaml:"title_format"`
	TeamCountFormat       string   `yaml:"team_count_format"`
	RowCapacity           int      `yaml:"row_capacity"`
}

type QrCodesConfig struct {
	Enabled bool           `yaml:"enabled"`
	Options QrCodesOptions `yaml:"options"`
}

type QrCodesOptions struct {
	FolderID      string `yaml:"folder_id"`
	Text          string `yaml:"text"`
	LogoImageFile string `yaml:"logo_image_file"`
	RowCapacity   int    `yaml:"row_capacity"`
	Size          int    `yaml:"size"`
}

// CacheConfig controls caching of API responses. MaxAge is a duration string
// (e.g. 10m); zero disables the cache. An empty Bucket keeps it in memory for
// the duration of the run.
type CacheConfig struct {
	Bucket string        `yaml:"bucket"`
	MaxAge time.Duration `yaml:"max_age"`
}

type OutputConfig struct {
	Directory string              `yaml:"directory"`
	S3        S3OutputConfig      `yaml:"s3"`
	Discord   DiscordOutputConfig `yaml:"discord"`
}

// S3OutputConfig is enabled when Bucket is set.
type S3OutputConfig struct {
	Bucket          string `yaml:"bucket"`
	Prefix          string `yaml:"prefix"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	PublicBaseURL   string `yaml:"public_base_url"`
}

// DiscordOutputConfig is enabled when ChannelID is set.
type DiscordOutputConfig struct {
	BotToken  string `yaml:"bot_token"`
	ChannelID string `yaml:"channel_id"`
}

// Load reads the yaml file at path. A .env file in the working directory is
// loaded first when present, and environment variables override values from
// the file.
func Load(path string) (*Config, error) {
	// missing .env is fine
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %v: %w", path, err)
	}
	cfg.applyEnv()

	// a bare number decodes as nanoseconds and would disable caching
	if cfg.Cache.MaxAge > 0 && cfg.Cache.MaxAge < time.Second {
		return nil, &signage.ConfigError{
			Field:  "cache.max_age",
			Reason: fmt.Sprintf("must be a duration such as 10m, got %v", cfg.Cache.MaxAge),
		}
	}

	return &cfg, nil
}

func (cfg *Config) applyEnv() {
	overrides := []struct {
		env string
		dst *string
	}{
		{EnvInstanceURL, &cfg.Adapter.InstanceURL},
		{EnvAPIKey, &cfg.Adapter.APIKey},
		{EnvAPIKeySecret, &cfg.Adapter.APIKeySecret},
		{EnvS3AccessKeyID, &cfg.Output.S3.AccessKeyID},
		{EnvS3SecretAccessKey, &cfg.Output.S3.SecretAccessKey},
		{EnvDiscordBotToken, &cfg.Output.Discord.BotToken},
		{EnvCacheBucket, &cfg.Cache.Bucket},
	}
	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.env); ok && v != "" {
			*o.dst = v
		}
	}
}

// ValidateAdapter checks that the instance connection settings are present.
func (cfg *Config) ValidateAdapter() error {
	required := []struct {
		field string
		value string
	}{
		{"adapter.instance_url", cfg.Adapter.InstanceURL},
		{"adapter.api_key", cfg.Adapter.APIKey},
		{"adapter.api_key_secret", cfg.Adapter.APIKeySecret},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &signage.ConfigError{Field: r.field, Reason: "is not specified"}
		}
	}
	return nil
}

// Location resolves Timezone.
func (cfg *Config) Location() (*time.Location, error) {
	if cfg.Timezone == "" || cfg.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, &signage.ConfigError{
			Field:  "timezone",
			Reason: "is not a known time zone",
			Err:    err,
		}
	}
	return loc, nil
}
