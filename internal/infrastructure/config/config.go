package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	GRPCServer GRPCServer
	Database   Database
	Prometheus Prometheus
	Redis      Redis
	Auth       Auth
	Scheduler  Scheduler
	Publisher  Publisher
	Platforms  map[string]Platform
}

type HTTPServer struct {
	Address      string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type GRPCServer struct {
	Address string
	Port    int
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
	AutoMigrate    bool
}

type Prometheus struct {
	Address string
	Port    int
}

type Redis struct {
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int

	DialTimeout time.Duration
	OpTimeout   time.Duration
}

func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Address, r.Port)
}

type Auth struct {
	JWTSecret string
	Issuer    string
}

type Scheduler struct {
	Enabled   bool
	Spec      string
	BatchSize int
	LeaseTTL  time.Duration
}

type Publisher struct {
	Workers        int
	AdapterTimeout time.Duration
	StaleAfter     time.Duration
	RatePerSecond  float64
	Burst          int
	EventsChannel  string
	AccountTTL     time.Duration
}

type Platform struct {
	Endpoint string
	Token    string
}

func MustLoad() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %s", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("publish")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8085)
	viper.SetDefault("http_server.read_timeout", 10*time.Second)
	viper.SetDefault("http_server.write_timeout", 30*time.Second)

	viper.SetDefault("grpc_server.address", "0.0.0.0")
	viper.SetDefault("grpc_server.port", 50055)

	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "admin")
	viper.SetDefault("database.host", "publish-db")
	viper.SetDefault("database.port", "5436")
	viper.SetDefault("database.db_name", "publishservice")
	viper.SetDefault("database.migrations_path", "migrations")
	viper.SetDefault("database.auto_migrate", false)

	viper.SetDefault("prometheus.address", "0.0.0.0")
	viper.SetDefault("prometheus.port", 9105)

	viper.SetDefault("redis.address", "redis")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)
	viper.SetDefault("redis.dial_timeout", 5*time.Second)
	viper.SetDefault("redis.op_timeout", time.Second)

	viper.SetDefault("auth.jwt_secret", "")
	viper.SetDefault("auth.issuer", "pinstack-auth-service")

	viper.SetDefault("scheduler.enabled", true)
	viper.SetDefault("scheduler.spec", "@every 1m")
	viper.SetDefault("scheduler.batch_size", 100)
	viper.SetDefault("scheduler.lease_ttl", 55*time.Second)

	viper.SetDefault("publisher.workers", 8)
	viper.SetDefault("publisher.adapter_timeout", 30*time.Second)
	viper.SetDefault("publisher.stale_after", 0)
	viper.SetDefault("publisher.rate_per_second", 5.0)
	viper.SetDefault("publisher.burst", 5)
	viper.SetDefault("publisher.events_channel", "publish-events")
	viper.SetDefault("publisher.account_ttl", 5*time.Minute)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}

	platforms := make(map[string]Platform)
	for code := range viper.GetStringMap("platforms") {
		platforms[code] = Platform{
			Endpoint: viper.GetString("platforms." + code + ".endpoint"),
			Token:    viper.GetString("platforms." + code + ".token"),
		}
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address:      viper.GetString("http_server.address"),
			Port:         viper.GetInt("http_server.port"),
			ReadTimeout:  viper.GetDuration("http_server.read_timeout"),
			WriteTimeout: viper.GetDuration("http_server.write_timeout"),
		},
		GRPCServer: GRPCServer{
			Address: viper.GetString("grpc_server.address"),
			Port:    viper.GetInt("grpc_server.port"),
		},
		Database: Database{
			Username:       viper.GetString("database.username"),
			Password:       viper.GetString("database.password"),
			Host:           viper.GetString("database.host"),
			Port:           viper.GetString("database.port"),
			DbName:         viper.GetString("database.db_name"),
			MigrationsPath: viper.GetString("database.migrations_path"),
			AutoMigrate:    viper.GetBool("database.auto_migrate"),
		},
		Prometheus: Prometheus{
			Address: viper.GetString("prometheus.address"),
			Port:    viper.GetInt("prometheus.port"),
		},
		Redis: Redis{
			Address:  viper.GetString("redis.address"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			PoolSize: viper.GetInt("redis.pool_size"),

			DialTimeout: viper.GetDuration("redis.dial_timeout"),
			OpTimeout:   viper.GetDuration("redis.op_timeout"),
		},
		Auth: Auth{
			JWTSecret: viper.GetString("auth.jwt_secret"),
			Issuer:    viper.GetString("auth.issuer"),
		},
		Scheduler: Scheduler{
			Enabled:   viper.GetBool("scheduler.enabled"),
			Spec:      viper.GetString("scheduler.spec"),
			BatchSize: viper.GetInt("scheduler.batch_size"),
			LeaseTTL:  viper.GetDuration("scheduler.lease_ttl"),
		},
		Publisher: Publisher{
			Workers:        viper.GetInt("publisher.workers"),
			AdapterTimeout: viper.GetDuration("publisher.adapter_timeout"),
			StaleAfter:     viper.GetDuration("publisher.stale_after"),
			RatePerSecond:  viper.GetFloat64("publisher.rate_per_second"),
			Burst:          viper.GetInt("publisher.burst"),
			EventsChannel:  viper.GetString("publisher.events_channel"),
			AccountTTL:     viper.GetDuration("publisher.account_ttl"),
		},
		Platforms: platforms,
	}

	return config
}

func (d Database) DSN() string {
	return "postgresql://" + d.Username + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.DbName + "?sslmode=disable"
}
