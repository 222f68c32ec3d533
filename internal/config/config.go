package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"error"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE"`
	Game     Game   `yaml:"game"`
	Todo     Todo   `yaml:"todo"`
	Redis    Redis  `yaml:"redis"`
}

type Game struct {
	FirstPlayer string `yaml:"first-player" env:"GAME_FIRST_PLAYER" env-default:"X"`
	NoClear     bool   `yaml:"no-clear" env:"GAME_NO_CLEAR"`
}

type Todo struct {
	Storage    string `yaml:"storage" env:"TODO_STORAGE" env-default:"file"`
	FilePath   string `yaml:"file-path" env:"TODO_FILE_PATH" env-default:"tasks.json"`
	SQLitePath string `yaml:"sqlite-path" env:"TODO_SQLITE_PATH" env-default:"tasks.db"`
	RedisKey   string `yaml:"redis-key" env:"TODO_REDIS_KEY" env-default:"tasks"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

// MustLoad - load all configurations in config.yml file, falling back to the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	// .env is optional, variables already set in the environment win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
