package config

import (
	"fmt"
	"strings"
	"sync"

	"enoki-admin/core/constants"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Bridge   BridgeConfig
	Schedule ScheduleConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret          string
	AccessTokenTTLMins int
}

// BridgeConfig points at the external RFID bridge server
type BridgeConfig struct {
	ServerAddress   string
	Enabled         bool
	PlaySound       bool
	SoundResource   string
	PulseDurationMs int
}

type ScheduleConfig struct {
	// DisplayUTCOffset is the fixed offset used when rendering slot times.
	// Deployments share one offset so displayed times match across devices.
	DisplayUTCOffset int
}

type LogConfig struct {
	Level  string
	Format string
}

var (
	instance    Config
	initialized bool
	mu          sync.RWMutex
)

// Load reads .env (when present) and environment variables into the global
// config. Must be called once before Get.
func Load() error {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "enoki")
	v.SetDefault("DB_SSLMODE", constants.DatabaseSSLMode)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ACCESS_TOKEN_TTL_MINUTES", 60)

	v.SetDefault("RFID_BRIDGE_ADDRESS", "ws://localhost:8000/sig")
	v.SetDefault("RFID_BRIDGE_ENABLED", true)
	v.SetDefault("RFID_PLAY_SOUND", true)
	v.SetDefault("RFID_SOUND_RESOURCE", "notification.mp3")
	v.SetDefault("RFID_PULSE_DURATION_MS", constants.DefaultPulseDurationMs)

	v.SetDefault("SCHEDULE_DISPLAY_UTC_OFFSET", constants.DefaultDisplayUTCOffset)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	cfg := Config{
		Server: ServerConfig{
			Host:        v.GetString("SERVER_HOST"),
			Port:        v.GetInt("SERVER_PORT"),
			CORSOrigins: strings.Split(v.GetString("CORS_ORIGINS"), ","),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Auth: AuthConfig{
			JWTSecret:          v.GetString("JWT_SECRET"),
			AccessTokenTTLMins: v.GetInt("ACCESS_TOKEN_TTL_MINUTES"),
		},
		Bridge: BridgeConfig{
			ServerAddress:   v.GetString("RFID_BRIDGE_ADDRESS"),
			Enabled:         v.GetBool("RFID_BRIDGE_ENABLED"),
			PlaySound:       v.GetBool("RFID_PLAY_SOUND"),
			SoundResource:   v.GetString("RFID_SOUND_RESOURCE"),
			PulseDurationMs: v.GetInt("RFID_PULSE_DURATION_MS"),
		},
		Schedule: ScheduleConfig{
			DisplayUTCOffset: v.GetInt("SCHEDULE_DISPLAY_UTC_OFFSET"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	mu.Lock()
	instance = cfg
	initialized = true
	mu.Unlock()
	return nil
}

func Get() Config {
	mu.RLock()
	defer mu.RUnlock()
	return instance
}

// GetSafe reports whether the config was loaded alongside the value
func GetSafe() (Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, initialized
}
