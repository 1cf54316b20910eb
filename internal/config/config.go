// internal/config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL          string `mapstructure:"url"`
		Driver       string `mapstructure:"driver"` // postgres | sqlite
		MaxIdleConns int    `mapstructure:"max_idle_conns"`
		MaxOpenConns int    `mapstructure:"max_open_conns"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level      string `mapstructure:"level"`
		HTTPDetail bool   `mapstructure:"http_detail"`
	} `mapstructure:"log"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT struct {
		SecretKey      string        `mapstructure:"secret_key"`
		Issuer         string        `mapstructure:"issuer"`
		AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
	} `mapstructure:"jwt"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Redis struct {
		Addr           string        `mapstructure:"addr"`
		Password       string        `mapstructure:"password"`
		DB             int           `mapstructure:"db"`
		LeaderboardTTL time.Duration `mapstructure:"leaderboard_ttl"`
	} `mapstructure:"redis"`
	Scheduler struct {
		LeaderboardRefresh time.Duration `mapstructure:"leaderboard_refresh"`
	} `mapstructure:"scheduler"`

	Game GameConfig `mapstructure:"game"`
}

// GameConfig holds the economy rules. Every component reads them from here.
type GameConfig struct {
	LessonChallengeQuota int `mapstructure:"lesson_challenge_quota"`
	BaseReward           int `mapstructure:"base_reward"`
	LessonBonus          int `mapstructure:"lesson_bonus"`
	RefillCost           int `mapstructure:"refill_cost"`
	MaxHearts            int `mapstructure:"max_hearts"`
	LeaderboardSize      int `mapstructure:"leaderboard_size"`
}

// DefaultGameConfig returns the standard economy rules.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		LessonChallengeQuota: DefaultLessonChallengeQuota,
		BaseReward:           DefaultBaseReward,
		LessonBonus:          DefaultLessonBonus,
		RefillCost:           DefaultRefillCost,
		MaxHearts:            DefaultMaxHearts,
		LeaderboardSize:      DefaultLeaderboardSize,
	}
}

// LessonQuota is the number of completed challenges that completes a lesson
// holding total challenges.
func (g GameConfig) LessonQuota(total int) int {
	if total < g.LessonChallengeQuota {
		return total
	}
	return g.LessonChallengeQuota
}

var Cfg Config

func LoadConfig(path string) error {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err == nil {
		log.Println(".env file loaded")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("redis.addr", "REDIS_ADDR")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	if !viper.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		Cfg.Auth.Enabled = true
	}
	applyDefaults(&Cfg)

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Database Driver: %s", Cfg.Database.Driver)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)
	log.Printf("Lesson Challenge Quota: %d", Cfg.Game.LessonChallengeQuota)

	return nil
}

// applyDefaults fills every unset value. Split out so tests can build a Config without viper.
func applyDefaults(c *Config) {
	if c.Server.Port == "" {
		c.Server.Port = DefaultServerPort
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DefaultDatabaseDriver
	}
	if c.Database.MaxIdleConns <= 0 {
		c.Database.MaxIdleConns = DefaultMaxIdleConns
	}
	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = DefaultMaxOpenConns
	}
	if c.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if c.JWT.Issuer == "" {
		c.JWT.Issuer = AppName
	}
	if c.JWT.AccessTokenTTL <= 0 {
		c.JWT.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = []string{"Accept", "Authorization", "Content-Type", "X-User-ID"}
	}

	g := &c.Game
	if g.LessonChallengeQuota <= 0 {
		g.LessonChallengeQuota = DefaultLessonChallengeQuota
	}
	if g.BaseReward <= 0 {
		g.BaseReward = DefaultBaseReward
	}
	if g.LessonBonus < 0 || (g.LessonBonus == 0 && !viper.IsSet("game.lesson_bonus")) {
		g.LessonBonus = DefaultLessonBonus
	}
	if g.RefillCost <= 0 {
		g.RefillCost = DefaultRefillCost
	}
	if g.MaxHearts <= 0 {
		g.MaxHearts = DefaultMaxHearts
	}
	if g.LeaderboardSize <= 0 {
		g.LeaderboardSize = DefaultLeaderboardSize
	}

	if c.Redis.LeaderboardTTL <= 0 {
		c.Redis.LeaderboardTTL = DefaultLeaderboardTTL
	}
	if c.Scheduler.LeaderboardRefresh <= 0 {
		c.Scheduler.LeaderboardRefresh = DefaultLeaderboardRefresh
	}
}
