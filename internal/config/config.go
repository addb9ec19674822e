package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
	StoreDriverMemory   = "memory"
)

type Config struct {
	App struct {
		Port     string `mapstructure:"port"`
		Env      string `mapstructure:"env"`
		LogLevel string `mapstructure:"log_level"`
	} `mapstructure:"app"`
	Store struct {
		Driver string `mapstructure:"driver"`
	} `mapstructure:"store"`
	DB struct {
		DSN         string `mapstructure:"dsn"`
		AutoMigrate bool   `mapstructure:"auto_migrate"`
	} `mapstructure:"db"`
	Redis struct {
		Addr      string `mapstructure:"addr"`
		Password  string `mapstructure:"password"`
		DB        int    `mapstructure:"db"`
		KeyPrefix string `mapstructure:"key_prefix"`
	} `mapstructure:"redis"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
	Client struct {
		APIURL  string        `mapstructure:"api_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"client"`
}

// LoadConfig reads .env, an optional config.yaml from the given paths and the
// process environment, in increasing order of precedence.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read env only. Error: %v", err)
	}

	v.SetDefault("app.port", "5000")
	v.SetDefault("app.env", "development")
	v.SetDefault("store.driver", StoreDriverPostgres)
	v.SetDefault("db.dsn", "postgres://localhost:5432/resumebuilder?sslmode=disable")
	v.SetDefault("db.auto_migrate", true)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "resumebuilder")
	v.SetDefault("client.api_url", "http://localhost:5000/api")
	v.SetDefault("client.timeout", 10*time.Second)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT", "PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.log_level", "LOG_LEVEL")
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("db.dsn", "DB_DSN", "DATABASE_URL")
	v.BindEnv("db.auto_migrate", "DB_AUTO_MIGRATE")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("redis.key_prefix", "REDIS_KEY_PREFIX")
	v.BindEnv("jaeger.otlp_endpoint", "JAEGER_OTLP_ENDPOINT")
	v.BindEnv("client.api_url", "CLIENT_API_URL")
	v.BindEnv("client.timeout", "CLIENT_TIMEOUT")

	err = v.Unmarshal(&cfg)
	return
}
