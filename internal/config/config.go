package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Gemini     Gemini   `yaml:"gemini"`
	Rembg      Rembg    `yaml:"rembg"`
	ImgBB      ImgBB    `yaml:"imgbb"`
	Async      Async    `yaml:"async"`
	Database   Database `yaml:"database"`
	Kafka      Kafka    `yaml:"kafka"`
	Cache      Cache    `yaml:"cache"`
}

type HTTPServer struct {
	Address       string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"0.0.0.0:8082"`
	Timeout       time.Duration `yaml:"timeout" env-default:"180s"`
	IdleTimeout   time.Duration `yaml:"idle_timeout" env-default:"60s"`
	MaxUploadSize int64         `yaml:"max_upload_size" env-default:"20971520"`
}

type Gemini struct {
	APIKey  string        `yaml:"api_key" env:"GEMINI_KEY" env-required:"true" validate:"required"`
	Model   string        `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-2.5-flash-image"`
	BaseURL string        `yaml:"base_url" env:"GEMINI_BASE_URL"`
	Timeout time.Duration `yaml:"timeout" env-default:"120s"`
}

type Rembg struct {
	BaseURL string        `yaml:"base_url" env:"REMBG_URL" env-default:"http://localhost:7000"`
	Timeout time.Duration `yaml:"timeout" env-default:"60s"`
}

type ImgBB struct {
	APIKey     string        `yaml:"api_key" env:"IMGBB_KEY" env-required:"true" validate:"required"`
	Endpoint   string        `yaml:"endpoint" env:"IMGBB_ENDPOINT" env-default:"https://api.imgbb.com/1/upload"`
	Expiration int           `yaml:"expiration" env:"IMGBB_EXPIRATION"`
	Timeout    time.Duration `yaml:"timeout" env-default:"60s"`
}

// Async enables the queued generation flow. Database and Kafka are only
// used when it is on.
type Async struct {
	Enabled         bool          `yaml:"enabled" env:"ASYNC_ENABLED"`
	UploadDir       string        `yaml:"upload_dir" env-default:"./uploads"`
	Retention       time.Duration `yaml:"retention" env-default:"72h"`
	CleanupSchedule string        `yaml:"cleanup_schedule" env-default:"@hourly"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"pet_stylizer"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:"," env-default:"localhost:9092"`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"generations"`
	GroupID string   `yaml:"group_id" env:"KAFKA_GROUP_ID" env-default:"pet-stylizer"`
}

type Cache struct {
	Enabled  bool          `yaml:"enabled" env:"CACHE_ENABLED"`
	Addr     string        `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"REDIS_DB"`
	TTL      time.Duration `yaml:"ttl" env-default:"24h"`
}

// writeMargin covers decoding, resizing and encoding around the external calls.
const writeMargin = 10 * time.Second

// WriteTimeout is the longest a stylization response may take to be written:
// the configured server timeout, raised to fit one variation's chain of
// generation, background removal and upload.
func (c *Config) WriteTimeout() time.Duration {
	chain := c.Gemini.Timeout + c.Rembg.Timeout + c.ImgBB.Timeout + writeMargin
	if chain > c.HTTPServer.Timeout {
		return chain
	}
	return c.HTTPServer.Timeout
}

func MustLoad() *Config {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

// Load reads the YAML file at path and applies environment overrides.
// An empty path reads the environment only. Secrets must be non-empty.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
	} else {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}

		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
	}

	// env-required accepts a variable that is set to ""
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
