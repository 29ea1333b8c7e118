package configs

import "github.com/spf13/viper"

type Conf struct {
	Env            string `mapstructure:"APP_ENV"`
	DBDriver       string `mapstructure:"DB_DRIVER"`
	DBHost         string `mapstructure:"DB_HOST"`
	DBPort         string `mapstructure:"DB_PORT"`
	DBUser         string `mapstructure:"DB_USER"`
	DBPassword     string `mapstructure:"DB_PASSWORD"`
	DBName         string `mapstructure:"DB_NAME"`
	RedisHost      string `mapstructure:"REDIS_HOST"`
	RedisPort      string `mapstructure:"REDIS_PORT"`
	WebServerPort  string `mapstructure:"WEB_SERVER_PORT"`
	AMQPURL        string `mapstructure:"AMQP_URL"`
	OtelCollector  string `mapstructure:"OTEL_COLLECTOR_ADDR"`
	RateLimitRPS   int    `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int    `mapstructure:"RATE_LIMIT_BURST"`
}

func (c *Conf) IsProd() bool {
	return c.Env == "production"
}

func LoadConfig(path string) (*Conf, error) {
	var cfg *Conf

	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RateLimitRPS <= 0 {
		cfg.RateLimitRPS = 50
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = 100
	}

	return cfg, nil
}
