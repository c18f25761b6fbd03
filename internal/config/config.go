// Package config загружает и валидирует конфигурацию сервиса из YAML.
// Все поля имеют рабочие дефолты: пустой путь дает готовую конфигурацию.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Intervals - периоды тиков агентов по типам сущностей.
type Intervals struct {
	Lab      time.Duration `yaml:"-"`
	City     time.Duration `yaml:"-"`
	Hospital time.Duration `yaml:"-"`
	Pharmacy time.Duration `yaml:"-"`
	Supplier time.Duration `yaml:"-"`
}

// UnmarshalYAML принимает длительности в нотации Go ("10s", "1m30s").
// yaml.v3 не умеет time.Duration из строки, поэтому парсим сами.
// Отсутствующие поля не трогают уже выставленные дефолты.
func (i *Intervals) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Lab      string `yaml:"lab"`
		City     string `yaml:"city"`
		Hospital string `yaml:"hospital"`
		Pharmacy string `yaml:"pharmacy"`
		Supplier string `yaml:"supplier"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	set := func(dst *time.Duration, s, name string) error {
		if s == "" {
			return nil
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("interval %s: %w", name, err)
		}
		*dst = d
		return nil
	}

	if err := set(&i.Lab, raw.Lab, "lab"); err != nil {
		return err
	}
	if err := set(&i.City, raw.City, "city"); err != nil {
		return err
	}
	if err := set(&i.Hospital, raw.Hospital, "hospital"); err != nil {
		return err
	}
	if err := set(&i.Pharmacy, raw.Pharmacy, "pharmacy"); err != nil {
		return err
	}
	return set(&i.Supplier, raw.Supplier, "supplier")
}

// Config - полная конфигурация сервиса.
type Config struct {
	// Port - HTTP-порт API и websocket-стрима.
	Port int `yaml:"port"`

	// Seed - мастер-сид генераторов агентов. 0 означает случайный сид
	// (текущее время) - каждый запуск дает новую траекторию симуляции.
	Seed int64 `yaml:"seed"`

	// ActivityCapacity - емкость журнала активности.
	ActivityCapacity int `yaml:"activityCapacity"`

	Intervals Intervals `yaml:"intervals"`
}

// Default возвращает конфигурацию с дефолтами, совпадающими с периодами
// оригинального фронтенд-протокола.
func Default() *Config {
	return &Config{
		Port:             4000,
		Seed:             0,
		ActivityCapacity: 200,
		Intervals: Intervals{
			Lab:      10 * time.Second,
			City:     15 * time.Second,
			Hospital: 12 * time.Second,
			Pharmacy: 20 * time.Second,
			Supplier: 25 * time.Second,
		},
	}
}

// Load читает конфигурацию из YAML-файла поверх дефолтов.
// Пустой путь возвращает дефолты без обращения к диску.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate проверяет диапазоны значений.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.ActivityCapacity <= 0 {
		return fmt.Errorf("activityCapacity must be positive: %d", c.ActivityCapacity)
	}
	for name, d := range map[string]time.Duration{
		"lab":      c.Intervals.Lab,
		"city":     c.Intervals.City,
		"hospital": c.Intervals.Hospital,
		"pharmacy": c.Intervals.Pharmacy,
		"supplier": c.Intervals.Supplier,
	} {
		if d < time.Second {
			return fmt.Errorf("interval %s too short: %s (minimum 1s)", name, d)
		}
	}
	return nil
}
