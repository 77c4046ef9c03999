package config

import (
	"fmt"
	"os"
	"time"

	"github.com/DanRulev/vocaquiz/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	BotToken   string           `mapstructure:"bot_token"`
	DB         DBConfig         `mapstructure:"db" validate:"required"`
	Vocabulary VocabularyConfig `mapstructure:"vocabulary"`
	Quiz       QuizConfig       `mapstructure:"quiz"`
	Env        string           `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite3 postgres"`
	DSN    string `mapstructure:"dsn" validate:"required"`
	Cfg    DBCfg  `mapstructure:"cfg"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type VocabularyConfig struct {
	// Path to a categories JSON file; the embedded set is used when empty.
	Path string `mapstructure:"path"`
}

type QuizConfig struct {
	// Seed fixes the question RNG; zero means time-seeded.
	Seed uint64 `mapstructure:"seed"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	setDefaults(v)

	bindings := map[string]string{
		"bot_token":       "BOT_TOKEN",
		"env":             "ENV",
		"db.driver":       "DB_DRIVER",
		"db.dsn":          "DB_DSN",
		"vocabulary.path": "VOCABULARY_PATH",
		"quiz.seed":       "QUIZ_SEED",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("app.timeout", 5*time.Second)

	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "vocaquiz.db")
	v.SetDefault("db.cfg.max_open_conns", 1)
	v.SetDefault("db.cfg.max_idle_conns", 1)
	v.SetDefault("db.cfg.conn_max_life_time", time.Hour)
	v.SetDefault("db.cfg.conn_max_idle_time", 10*time.Minute)
}
