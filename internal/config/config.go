package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // computed after load
	} `yaml:"server"`
	Storage struct {
		DBPath       string `yaml:"db_path"`
		ProfilesPath string `yaml:"profiles_path"`
		RoomsPath    string `yaml:"rooms_path"`
		WeightsPath  string `yaml:"weights_path"`
	} `yaml:"storage"`
}

// Load reads config.yaml when present and lets environment variables
// override individual values. A missing file is not an error: everything
// has a default.
func Load(path string) *Config {
	// .env is optional; fall through to real environment variables.
	_ = godotenv.Load()

	var cfg Config
	cfg.Server.Port = 8080
	cfg.Storage.DBPath = "data/roommate.db"
	cfg.Storage.ProfilesPath = "data/profiles.json"
	cfg.Storage.RoomsPath = "data/rooms.json"
	cfg.Storage.WeightsPath = "configs/weights.json"

	if data, err := os.ReadFile(path); err == nil {
		_ = yaml.Unmarshal(data, &cfg)
	}

	cfg.Server.Host = getEnv("API_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvInt("API_PORT", cfg.Server.Port)
	cfg.Storage.DBPath = getEnv("DB_PATH", cfg.Storage.DBPath)
	cfg.Storage.ProfilesPath = getEnv("PROFILES_PATH", cfg.Storage.ProfilesPath)
	cfg.Storage.RoomsPath = getEnv("ROOMS_PATH", cfg.Storage.RoomsPath)
	cfg.Storage.WeightsPath = getEnv("WEIGHTS_PATH", cfg.Storage.WeightsPath)

	cfg.Server.Addr = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	return &cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
