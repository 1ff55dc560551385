// Package config предоставляет структуры и функции для загрузки конфига менеджера подписок.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/magabrotheeeer/subscription-manager/internal/models"
)

// Окружения, от которых зависит формат логов.
const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config общая структура для хранения настроек
type Config struct {
	Env     string              `yaml:"env" env:"SUBSCRIPTIONS_ENV" env-default:"local"`
	Console Console             `yaml:"console"`
	Seed    []models.DummyEntry `yaml:"seed"`
}

// Console структура для настройки консоли
type Console struct {
	Prompt string `yaml:"prompt" env:"SUBSCRIPTIONS_PROMPT" env-default:"> "`
}

// Load читает конфиг из файла по указанному пути.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad загружает конфиг из файла, путь к которому задан в CONFIG_PATH.
// Если CONFIG_PATH не задан, используются значения по умолчанию и переменные окружения.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		var cfg Config
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from env: %s", err)
		}
		return &cfg
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Console:\n"+
			"  Prompt: %q\n"+
			"Seed: %d entries\n",
		c.Env,
		c.Console.Prompt,
		len(c.Seed),
	)
}
