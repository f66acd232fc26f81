package configs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gormLogger "gorm.io/gorm/logger"

	"schoolku_backend/internals/configs"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CFG_INT", "42")
	t.Setenv("CFG_BAD_INT", "empat")
	t.Setenv("CFG_BOOL", "false")
	t.Setenv("CFG_EMPTY", "")

	assert.Equal(t, 42, configs.GetEnvInt("CFG_INT", 7))
	assert.Equal(t, 7, configs.GetEnvInt("CFG_BAD_INT", 7))
	assert.Equal(t, 7, configs.GetEnvInt("CFG_MISSING", 7))
	assert.False(t, configs.GetEnvBool("CFG_BOOL", true))
	assert.True(t, configs.GetEnvBool("CFG_MISSING", true))

	// variabel yang ada tapi kosong tidak memakai default
	assert.Equal(t, "", configs.GetEnv("CFG_EMPTY", "x"))
	assert.Equal(t, "x", configs.GetEnv("CFG_MISSING", "x"))
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("PORT", "8081")
	t.Setenv("DB_DRIVER", "MEMORY")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL_MINUTES", "30")
	t.Setenv("AUTH_REQUIRED", "false")
	t.Setenv("REAPER_RETENTION_DAYS", "")

	configs.LoadEnv()

	assert.Equal(t, "8081", configs.Port)
	assert.Equal(t, configs.DriverMemory, configs.DBDriver)
	assert.Equal(t, "s3cret", configs.JWTSecret)
	assert.Equal(t, 30*time.Minute, configs.JWTTTL)
	assert.False(t, configs.AuthRequired)
	assert.Equal(t, 30, configs.ReaperRetentionDays)
}

func TestLoadEnv_UnknownDriverFallsBack(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("DB_DRIVER", "sqlite")

	configs.LoadEnv()

	assert.Equal(t, configs.DriverPostgres, configs.DBDriver)
}

func TestGormLogger_LogModeReturnsCopy(t *testing.T) {
	t.Setenv("DB_LOG_QUERIES", "true")
	base := configs.NewGormLogger()

	silent := base.LogMode(gormLogger.Silent)

	assert.Equal(t, gormLogger.Info, base.(*configs.GormLogger).LogLevel)
	assert.Equal(t, gormLogger.Silent, silent.(*configs.GormLogger).LogLevel)
}
