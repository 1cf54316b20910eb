// internal/config/constants.go
package config

import "time"

const (
	AppName    = "lingo-progress"
	AppVersion = "1.0.0"
)

const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultDatabaseDriver = "postgres"
	DefaultMaxIdleConns   = 10
	DefaultMaxOpenConns   = 100
	DefaultAccessTokenTTL = 24 * time.Hour
)

// Economy defaults.
const (
	DefaultLessonChallengeQuota = 10
	DefaultBaseReward           = 10
	DefaultLessonBonus          = 20
	DefaultRefillCost           = 100
	DefaultMaxHearts            = 5
	DefaultLeaderboardSize      = 10
)

const (
	DefaultLeaderboardTTL     = 30 * time.Second
	DefaultLeaderboardRefresh = time.Minute
)
