package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// RiotConfiguration holds the credential and host format for the rate limited API.
type RiotConfiguration struct {
	ApiKey    string `mapstructure:"api_key"`
	URLFormat string `mapstructure:"url_format"`
}

// DDragonConfiguration holds the static data CDN settings.
type DDragonConfiguration struct {
	BaseURL string `mapstructure:"base_url"`
	Locale  string `mapstructure:"locale"`
}

// CacheConfiguration holds the TTL for each logical cache.
type CacheConfiguration struct {
	CatalogTTL    time.Duration `mapstructure:"catalog_ttl"`
	FeaturedTTL   time.Duration `mapstructure:"featured_ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// ThrottleConfiguration holds the fixed delay between aggregated entries.
type ThrottleConfiguration struct {
	Delay time.Duration `mapstructure:"delay"`
}

// UpstreamConfiguration holds the per call settings.
type UpstreamConfiguration struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// Limit is a single rate limit window.
type Limit struct {
	Count         int           `mapstructure:"count"`
	ResetInterval time.Duration `mapstructure:"reset_interval"`
}

// LimitsConfiguration holds the windows applied to authenticated calls.
type LimitsConfiguration struct {
	Enabled bool  `mapstructure:"enabled"`
	Lower   Limit `mapstructure:"lower"`
	Higher  Limit `mapstructure:"higher"`
}

// ServerConfiguration holds the listening addresses.
type ServerConfiguration struct {
	Addr     string `mapstructure:"addr"`
	GRPCAddr string `mapstructure:"grpc_addr"`
}

// RedisConfiguration is the optional second level cache.
type RedisConfiguration struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
}

// Enabled reports if a redis host was configured.
func (r RedisConfiguration) Enabled() bool {
	return r.Host != ""
}

// LogsConfiguration holds the logger settings and the optional S3 bucket for log shipping.
type LogsConfiguration struct {
	Level        string `mapstructure:"level"`
	Format       string `mapstructure:"format"`
	Bucket       string `mapstructure:"bucket"`
	Region       string `mapstructure:"region"`
	Endpoint     string `mapstructure:"endpoint"`
	AccessKey    string `mapstructure:"access_key"`
	AccessSecret string `mapstructure:"access_secret"`
}

// SchedulerConfiguration holds the background job intervals.
// A zero interval disables the job.
type SchedulerConfiguration struct {
	WarmInterval time.Duration `mapstructure:"warm_interval"`
	ShipInterval time.Duration `mapstructure:"ship_interval"`
}

// Config is the full application configuration.
type Config struct {
	Riot      RiotConfiguration      `mapstructure:"riot"`
	DDragon   DDragonConfiguration   `mapstructure:"ddragon"`
	Cache     CacheConfiguration     `mapstructure:"cache"`
	Throttle  ThrottleConfiguration  `mapstructure:"throttle"`
	Upstream  UpstreamConfiguration  `mapstructure:"upstream"`
	Limits    LimitsConfiguration    `mapstructure:"limits"`
	Server    ServerConfiguration    `mapstructure:"server"`
	Redis     RedisConfiguration     `mapstructure:"redis"`
	Logs      LogsConfiguration      `mapstructure:"logs"`
	Scheduler SchedulerConfiguration `mapstructure:"scheduler"`
}

// Explicit env names for the keys that don't follow the prefix convention.
var envBindings = map[string]string{
	"riot.api_key":   "RIOT_API_KEY",
	"server.addr":    "PORT",
	"redis.host":     "REDIS_HOST",
	"redis.port":     "REDIS_PORT",
	"redis.password": "REDIS_PASSWORD",
}

// Load reads the .env file (outside docker), the environment and the optional config file.
// The API key is not validated here, a missing key surfaces on the first authenticated call.
func Load() (*Config, error) {
	if os.Getenv("ENVIRONMENT") != "docker" {
		// The .env file is optional.
		_ = godotenv.Load()
	}

	return load(viper.New())
}

// load resolves the configuration from a given viper instance.
func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("leaguehub")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Every key can be set as LEAGUEHUB_SECTION_KEY.
	v.SetEnvPrefix("LEAGUEHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range envBindings {
		if err := v.BindEnv(key, "LEAGUEHUB_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("couldn't bind env %s: %w", env, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// PORT comes as a bare number on most hosts.
	if cfg.Server.Addr != "" && !strings.Contains(cfg.Server.Addr, ":") {
		cfg.Server.Addr = ":" + cfg.Server.Addr
	}

	return &cfg, nil
}

// setDefaults sets every default value.
func setDefaults(v *viper.Viper) {
	v.SetDefault("riot.api_key", "")
	v.SetDefault("riot.url_format", "https://%s.api.riotgames.com")

	v.SetDefault("ddragon.base_url", "https://ddragon.leagueoflegends.com")
	v.SetDefault("ddragon.locale", "es_ES")

	v.SetDefault("cache.catalog_ttl", time.Hour)
	v.SetDefault("cache.featured_ttl", 2*time.Minute)
	v.SetDefault("cache.sweep_interval", 5*time.Minute)

	v.SetDefault("throttle.delay", 80*time.Millisecond)
	v.SetDefault("upstream.timeout", 10*time.Second)

	// Development key limits.
	v.SetDefault("limits.enabled", true)
	v.SetDefault("limits.lower.count", 20)
	v.SetDefault("limits.lower.reset_interval", time.Second)
	v.SetDefault("limits.higher.count", 100)
	v.SetDefault("limits.higher.reset_interval", 2*time.Minute)

	v.SetDefault("server.addr", ":3001")
	v.SetDefault("server.grpc_addr", "")

	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")

	v.SetDefault("logs.level", "info")
	v.SetDefault("logs.format", "json")
	v.SetDefault("logs.bucket", "")
	v.SetDefault("logs.region", "us-east-1")
	v.SetDefault("logs.endpoint", "")
	v.SetDefault("logs.access_key", "")
	v.SetDefault("logs.access_secret", "")

	v.SetDefault("scheduler.warm_interval", 30*time.Minute)
	v.SetDefault("scheduler.ship_interval", time.Hour)
}
