package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultRunAddress     = ":8090"
	DefaultSellerAPIURL   = "https://api.paying-zee.com"
	DefaultTokenPath      = ".payingzee/token"
	DefaultPollInterval   = 30 * time.Second
	DefaultRequestTimeout = 15 * time.Second
)

type Config struct {
	RunAddress     string        `env:"RUN_ADDRESS"`
	SellerAPIURL   string        `env:"SELLER_API_URL"`
	TokenPath      string        `env:"TOKEN_PATH"`
	PollInterval   time.Duration `env:"POLL_INTERVAL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

func Read() (Config, error) {
	// A missing .env is fine, the environment still applies.
	_ = godotenv.Load()

	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Panel run address")
	flag.StringVar(&config.SellerAPIURL, "r", DefaultSellerAPIURL, "Seller API address protocol://hostname:port")
	flag.StringVar(&config.TokenPath, "t", DefaultTokenPath, "Path to the stored bearer token")
	flag.DurationVar(&config.PollInterval, "i", DefaultPollInterval, "Order list poll interval (e.g. 30s, 1m)")
	flag.DurationVar(&config.RequestTimeout, "q", DefaultRequestTimeout, "Seller API request timeout")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
