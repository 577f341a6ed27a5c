package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// InvoicingConfig holds the defaults applied when an invoice is generated
// automatically for a completed service request.
type InvoicingConfig struct {
	NumberPrefix string `mapstructure:"numberPrefix"`
	AutoDueDays  int    `mapstructure:"autoDueDays"`
	AutoNote     string `mapstructure:"autoNote"`
}

func DefaultInvoicingConfig() InvoicingConfig {
	return InvoicingConfig{
		NumberPrefix: "INV",
		AutoDueDays:  30,
		AutoNote:     "Auto-generated invoice for completed service request",
	}
}

// InvoicingConfigHolder serves the current invoicing defaults and hot-reloads
// them when the config file changes on disk.
type InvoicingConfigHolder struct {
	current atomic.Value // holds InvoicingConfig
}

func NewInvoicingConfigHolder() (*InvoicingConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("invoicing")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/servicecenter")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SERVICECENTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultInvoicingConfig()
	v.SetDefault("invoicing.numberPrefix", defaults.NumberPrefix)
	v.SetDefault("invoicing.autoDueDays", defaults.AutoDueDays)
	v.SetDefault("invoicing.autoNote", defaults.AutoNote)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg InvoicingConfig
	if err := v.UnmarshalKey("invoicing", &cfg); err != nil {
		return nil, err
	}
	if err := validateInvoicingConfig(cfg); err != nil {
		return nil, err
	}

	holder := &InvoicingConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated InvoicingConfig
		if err := v.UnmarshalKey("invoicing", &updated); err != nil {
			log.Printf("[invoicing-config] reload failed: %v", err)
			return
		}
		if err := validateInvoicingConfig(updated); err != nil {
			log.Printf("[invoicing-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[invoicing-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticInvoicingConfigHolder wraps fixed values without file
// watching. Used by tests and one-off tooling.
func NewStaticInvoicingConfigHolder(cfg InvoicingConfig) *InvoicingConfigHolder {
	holder := &InvoicingConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *InvoicingConfigHolder) Get() InvoicingConfig {
	return h.current.Load().(InvoicingConfig)
}

func validateInvoicingConfig(cfg InvoicingConfig) error {
	if strings.TrimSpace(cfg.NumberPrefix) == "" {
		return errors.New("invoicing.numberPrefix cannot be empty")
	}
	if cfg.AutoDueDays < 0 {
		return errors.New("invoicing.autoDueDays cannot be negative")
	}
	return nil
}
