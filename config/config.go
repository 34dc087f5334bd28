package config

import (
	"os"

	"go-alloclist/pkg/locker"
	"go-alloclist/pkg/provider"

	"github.com/c2h5oh/datasize"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	List    *ListConfig    `yaml:"list"`
	Log     *LogConfig     `yaml:"log"`
	Demo    *DemoConfig    `yaml:"demo"`
	Metrics *MetricsConfig `yaml:"metrics"`
}

func New() *AppConfig {
	return &AppConfig{
		List:    NewListConfig(),
		Log:     NewLogConfig(),
		Demo:    NewDemoConfig(),
		Metrics: NewMetricsConfig(),
	}
}

// Load reads a YAML file over the defaults returned by New.
func Load(path string) (*AppConfig, error) {
	cfg := New()

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file '%s'", path)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults restores sections a file left empty, such as a bare "list:".
func (c *AppConfig) fillDefaults() {
	if c.List == nil {
		c.List = NewListConfig()
	}
	if c.Log == nil {
		c.Log = NewLogConfig()
	}
	if c.Demo == nil {
		c.Demo = NewDemoConfig()
	}
	if c.Metrics == nil {
		c.Metrics = NewMetricsConfig()
	}
}

// Provider builds the memory provider described by the config. reg may be nil
// when metrics are disabled.
func (c *AppConfig) Provider(reg prometheus.Registerer) provider.Provider {
	var p provider.Provider = provider.NewHeap()
	if c.List.MemoryLimit > 0 {
		p = provider.NewLimited(p, c.List.MemoryLimit.Bytes())
	}
	if c.Metrics.Enabled && reg != nil {
		p = provider.NewInstrumented(p, provider.NewMetrics(reg))
	}
	return p
}

func (c *AppConfig) Locker() locker.Locker {
	if c.List.Locking {
		return locker.NewMutex()
	}
	return locker.Noop{}
}

type ListConfig struct {
	Locking bool `yaml:"locking"`
	// MemoryLimit caps the bytes held by a list's regions, headers included.
	// Zero means unlimited.
	MemoryLimit datasize.ByteSize `yaml:"memory_limit"`
}

func NewListConfig() *ListConfig {
	return &ListConfig{
		Locking:     true,
		MemoryLimit: 0,
	}
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level: "info",
	}
}

type DemoConfig struct {
	Count   int   `yaml:"count"`
	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers"`
}

func NewDemoConfig() *DemoConfig {
	return &DemoConfig{
		Count:   10,
		Seed:    1,
		Workers: 4,
	}
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

func NewMetricsConfig() *MetricsConfig {
	return &MetricsConfig{
		Enabled: false,
	}
}
