package config

import (
	"os"
	"path/filepath"
	"testing"

	"go-alloclist/pkg/locker"
	"go-alloclist/pkg/provider"

	"github.com/c2h5oh/datasize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	require.True(t, cfg.List.Locking)
	require.Zero(t, cfg.List.MemoryLimit)
	require.Equal(t, "info", cfg.Log.Level)

	require.IsType(t, &provider.Heap{}, cfg.Provider(nil))
	require.IsType(t, &locker.Mutex{}, cfg.Locker())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
list:
  locking: false
  memory_limit: 64kb
log:
  level: debug
metrics:
  enabled: true
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.False(t, cfg.List.Locking)
	require.Equal(t, 64*datasize.KB, cfg.List.MemoryLimit)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 10, cfg.Demo.Count, "unset fields keep defaults")

	require.IsType(t, locker.Noop{}, cfg.Locker())
	require.IsType(t, &provider.Instrumented{}, cfg.Provider(prometheus.NewRegistry()))
	require.IsType(t, &provider.Limited{}, cfg.Provider(nil))
}

func TestLoadEmptySections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("list:\nlog:\n  level: debug\ndemo:\nmetrics:\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, NewListConfig(), cfg.List)
	require.Equal(t, NewDemoConfig(), cfg.Demo)
	require.Equal(t, NewMetricsConfig(), cfg.Metrics)
	require.Equal(t, "debug", cfg.Log.Level)

	require.IsType(t, &provider.Heap{}, cfg.Provider(nil))
	require.IsType(t, &locker.Mutex{}, cfg.Locker())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
