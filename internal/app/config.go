package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"freshcart/internal/pricing"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	ServerPort      string        `yaml:"srv_port"`
	Storage         string        `yaml:"storage"`
	CfgDB           ConfigDB      `yaml:"db"`
	CfgRedis        ConfigRedis   `yaml:"redis"`
	CfgKafka        ConfigKafka   `yaml:"kafka"`
	Cart            ConfigCart    `yaml:"cart"`
	Pricing         ConfigPricing `yaml:"pricing"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type ConfigDB struct {
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
	Port     uint   `yaml:"port"`
	Database string `yaml:"database"`
	Host     string `yaml:"host"`
}

type ConfigRedis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// ConfigKafka - пустой список brokers выключает отправку уведомлений в Kafka
type ConfigKafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	GroupID string   `yaml:"group_id"`
}

type ConfigCart struct {
	Key      string `yaml:"key"`
	Currency string `yaml:"currency"`
}

// ConfigPricing - суммы строками, чтобы не терять точность на float
type ConfigPricing struct {
	CartShipping     string            `yaml:"cart_shipping"`
	StandardDelivery string            `yaml:"standard_delivery"`
	ExpressDelivery  string            `yaml:"express_delivery"`
	TaxRate          string            `yaml:"tax_rate"`
	Coupons          map[string]string `yaml:"coupons"`
}

func NewConfig(configPath string) (*Config, error) {
	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(cfg, &c)
	if err != nil {
		return nil, err
	}

	c.setDefaults()

	switch c.Storage {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		return nil, fmt.Errorf("unknown storage %q", c.Storage)
	}

	return &c, nil
}

func (c *Config) setDefaults() {
	if c.ServerPort == "" {
		c.ServerPort = ":8080"
	}
	if c.Storage == "" {
		c.Storage = StorageMemory
	}
	if c.Cart.Key == "" {
		c.Cart.Key = "cart"
	}
	if c.Cart.Currency == "" {
		c.Cart.Currency = "USD"
	}
	if c.CfgRedis.Prefix == "" {
		c.CfgRedis.Prefix = "freshcart:"
	}
	if c.CfgKafka.Topic == "" {
		c.CfgKafka.Topic = "cart-notifications"
	}
	if c.CfgKafka.GroupID == "" {
		c.CfgKafka.GroupID = "cart-notifier"
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// PricingConfig накладывает заданные в файле тарифы на значения по умолчанию
func (c *Config) PricingConfig() (pricing.Config, error) {
	pc := pricing.DefaultConfig()

	fields := []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"cart_shipping", c.Pricing.CartShipping, &pc.CartShipping},
		{"standard_delivery", c.Pricing.StandardDelivery, &pc.StandardDelivery},
		{"express_delivery", c.Pricing.ExpressDelivery, &pc.ExpressDelivery},
		{"tax_rate", c.Pricing.TaxRate, &pc.TaxRate},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		d, err := decimal.NewFromString(f.value)
		if err != nil {
			return pricing.Config{}, fmt.Errorf("pricing.%s: %w", f.name, err)
		}
		*f.dst = d
	}

	if len(c.Pricing.Coupons) > 0 {
		pc.Coupons = make(map[string]decimal.Decimal, len(c.Pricing.Coupons))
		for code, percent := range c.Pricing.Coupons {
			d, err := decimal.NewFromString(percent)
			if err != nil {
				return pricing.Config{}, fmt.Errorf("pricing.coupons.%s: %w", code, err)
			}
			pc.Coupons[strings.ToLower(code)] = d
		}
	}

	return pc, nil
}

// DSN - строка подключения к Postgres
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s "+"password=%s dbname=%s sslmode=disable",
		c.CfgDB.Host, c.CfgDB.Port, c.CfgDB.Login, c.CfgDB.Password, c.CfgDB.Database,
	)
}
