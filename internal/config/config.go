package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

// Upstream holds the commerce API credentials and endpoint. AccessToken and
// StoreID are deliberately not env-required: their absence must fail each
// request with a configuration error instead of killing the process.
type Upstream struct {
	AccessToken string        `yaml:"ACCESS_TOKEN" env:"TIENDANUBE_ACCESS_TOKEN"`
	StoreID     string        `yaml:"STORE_ID" env:"TIENDANUBE_STORE_ID"`
	BaseURL     string        `yaml:"BASE_URL" env:"TIENDANUBE_BASE_URL" env-default:"https://api.tiendanube.com/v1"`
	CheckoutURL string        `yaml:"CHECKOUT_URL" env:"TIENDANUBE_CHECKOUT_URL" env-default:"https://%s.mitiendanube.com/checkout/v3/start/%d/%s"`
	UserAgent   string        `yaml:"USER_AGENT" env:"TIENDANUBE_USER_AGENT" env-default:"Storefront Gateway (storefront@example.com)"`
	Timeout     time.Duration `yaml:"TIMEOUT" env:"TIENDANUBE_TIMEOUT" env-default:"10s"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// CartConfig controls cart persistence. TTL zero means the cart never
// expires, which is the default contract.
type CartConfig struct {
	TTL           time.Duration `yaml:"CART_TTL" env:"CART_TTL" env-default:"0"`
	SessionCookie string        `yaml:"SESSION_COOKIE" env:"CART_SESSION_COOKIE" env-default:"storefront_session"`
}

type OtelConfig struct {
	ExporterEndpoint string `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT"`
	ServiceName      string `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"storefront-gateway"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	Upstream     Upstream     `yaml:"upstream"`
	RedisConnect RedisConnect `yaml:"redis"`
	Cart         CartConfig   `yaml:"cart"`
	Otel         OtelConfig   `yaml:"otel"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

	}

	var cfg Config

	if configPath == "" {
		// env-only deployment, no config file
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("can not read environment config: %s", err.Error())
		}

		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}

func (r *RedisConnect) GetDSN() string {
	if r.Username != "" || r.Password != "" {
		return fmt.Sprintf("redis://%s:%s@%s:%s/%d", r.Username, r.Password, r.Host, r.Port, r.DB)
	}

	return fmt.Sprintf("redis://%s:%s/%d", r.Host, r.Port, r.DB)
}
