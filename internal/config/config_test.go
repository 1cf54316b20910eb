package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameConfig_LessonQuota(t *testing.T) {
	g := DefaultGameConfig()

	tests := []struct {
		name  string
		total int
		want  int
	}{
		{name: "more challenges than quota", total: 15, want: 10},
		{name: "exactly quota", total: 10, want: 10},
		{name: "fewer challenges than quota", total: 3, want: 3},
		{name: "empty lesson", total: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.LessonQuota(tt.total))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	var c Config
	applyDefaults(&c)

	assert.Equal(t, DefaultServerPort, c.Server.Port)
	assert.Equal(t, DefaultDatabaseDriver, c.Database.Driver)
	assert.Equal(t, DefaultGameConfig(), c.Game)
	assert.Equal(t, DefaultLeaderboardTTL, c.Redis.LeaderboardTTL)
	assert.NotEmpty(t, c.CORS.AllowedHeaders)
}
