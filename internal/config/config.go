package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config определяет общую структуру конфигурации всего приложения.
type Config struct {
	HTTPServer `yaml:"http"`       // Конфигурация HTTP сервера
	Metrics    `yaml:"metrics"`    // Конфигурация сервера метрик Prometheus
	Logger     `yaml:"logger"`     // Конфигурация логгера
	Data       `yaml:"data"`       // Пути к авторским JSON-файлам
	Derive     `yaml:"derive"`     // Настройки деривации
	Vocabulary `yaml:"vocabulary"` // Словарь классификатора статусов
}

// HTTPServer содержит настройки для HTTP сервера.
type HTTPServer struct {
	// Port - порт, на котором будет слушать HTTP сервер.
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Metrics содержит настройки для сервера метрик Prometheus.
type Metrics struct {
	// Port - порт, на котором будет слушать сервер метрик (/metrics).
	Port string `yaml:"port" env:"METRICS_PORT" env-default:"9000"`
}

// Logger содержит настройки для логгера приложения.
type Logger struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// Data содержит пути к статическим данным. Данные авторские и
// версионируются вместе с приложением, а не живут в базе.
type Data struct {
	ProductsPath  string `yaml:"products_path" env:"DATA_PRODUCTS_PATH" env-default:"data/products.json"`
	ShipmentsPath string `yaml:"shipments_path" env:"DATA_SHIPMENTS_PATH" env-default:"data/shipments.json"`
	DepositsPath  string `yaml:"deposits_path" env:"DATA_DEPOSITS_PATH" env-default:"data/deposits.json"`
}

// Derive содержит настройки деривации позиций.
type Derive struct {
	// FallbackSize - размер-корзина для меток вне перечисления.
	FallbackSize string `yaml:"fallback_size" env:"DERIVE_FALLBACK_SIZE" env-default:"S"`
	// StrictSizes - отклонять неизвестные метки размеров при загрузке.
	StrictSizes bool `yaml:"strict_sizes" env:"DERIVE_STRICT_SIZES" env-default:"false"`
}

// Vocabulary содержит словарь классификатора «оплачен / не оплачен».
// Значения по умолчанию повторяют русскоязычные статусы из Excel.
type Vocabulary struct {
	Paid        string   `yaml:"paid" env:"VOCAB_PAID" env-default:"оплачен"`
	NotPaid     string   `yaml:"not_paid" env:"VOCAB_NOT_PAID" env-default:"не оплачен"`
	Partial     string   `yaml:"partial" env:"VOCAB_PARTIAL" env-default:"част"`
	PaidCodes   []string `yaml:"paid_codes" env:"VOCAB_PAID_CODES" env-default:"receivedpaid,received"`
	UnpaidCodes []string `yaml:"unpaid_codes" env:"VOCAB_UNPAID_CODES" env-default:"receivedunpaid,inprogress,intransit,ready,done"`
}

// Load загружает конфигурацию приложения.
// Порядок приоритета:
// 1. Переменные окружения (самый высокий приоритет).
// 2. Значения из YAML файла (если найден).
// 3. Значения по умолчанию (env-default).
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: .env file not found or error loading it: %v. Relying on existing environment variables.", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yml"
	}

	var cfg Config

	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Printf("WARN: Error reading config file '%s': %v. Relying solely on environment variables.", configPath, err)
		} else {
			log.Printf("INFO: Loaded base configuration structure from file: %s", configPath)
		}
	} else if !os.IsNotExist(err) {
		log.Printf("WARN: Error accessing config file '%s': %v. Relying solely on environment variables.", configPath, err)
	} else {
		log.Printf("INFO: Configuration file not found at '%s'. Relying solely on environment variables.", configPath)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("FATAL: Error reading environment variables: %v", err)
	}

	log.Printf("INFO: Configuration loaded. Log Level: %s, HTTP Port: %s, Metrics Port: %s",
		cfg.Logger.Level, cfg.HTTPServer.Port, cfg.Metrics.Port)

	return &cfg
}
