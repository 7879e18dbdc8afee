// Package ctlconfig handles command-line flags and config file loading
// for the microgridctl tool, returning a Settings value.
package ctlconfig

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/frequenz-floss/microgrid-client-go/client/microgridclient"
	"github.com/frequenz-floss/microgrid-client-go/config"
	"github.com/frequenz-floss/microgrid-client-go/history"
)

const (
	DefaultEtcdPrefix = "/microgrid"
)

// Settings is the resolved configuration for one microgridctl invocation.
type Settings struct {
	// Targets are gateway addresses tried in order. Empty means the
	// target should be resolved through etcd discovery.
	Targets []string

	// EtcdEndpoints enable endpoint discovery when Targets is empty.
	EtcdEndpoints []string
	EtcdPrefix    string

	CallTimeout       time.Duration
	ConnectionTimeout time.Duration

	// History is non-nil when issued power commands should be recorded
	// in PostgreSQL.
	History *history.Config
}

// Loader handles parsing of command-line flags and config file loading.
// It can be instantiated with a custom FlagSet for testing.
type Loader struct {
	fs             *flag.FlagSet
	configPath     *string
	target         *string
	etcdAddr       *string
	etcdPrefix     *string
	callTimeout    *time.Duration
	connectTimeout *time.Duration
}

// NewLoader creates a new Loader with flags registered on the provided FlagSet.
// If fs is nil, the default flag.CommandLine is used.
func NewLoader(fs *flag.FlagSet) *Loader {
	if fs == nil {
		fs = flag.CommandLine
	}
	l := &Loader{fs: fs}
	l.configPath = fs.String("config", "", "Path to YAML config file")
	l.target = fs.String("target", "", "Gateway address, comma-separated for fallbacks (cannot be used with --config)")
	l.etcdAddr = fs.String("etcd", "", "Etcd address for endpoint discovery (cannot be used with --config)")
	l.etcdPrefix = fs.String("etcd-prefix", DefaultEtcdPrefix, "Etcd key prefix (cannot be used with --config)")
	l.callTimeout = fs.Duration("call-timeout", microgridclient.DefaultCallTimeout, "Default deadline per API call")
	l.connectTimeout = fs.Duration("connect-timeout", microgridclient.DefaultConnectionTimeout, "Deadline for connection establishment")
	return l
}

// Load parses the flags (if not already parsed) and returns Settings.
// When --config is provided, addressing flags are forbidden; timeouts given
// on the command line still override the file.
// Returns an error if configuration is invalid.
func (l *Loader) Load(args []string) (*Settings, error) {
	if !l.fs.Parsed() {
		if err := l.fs.Parse(args); err != nil {
			return nil, fmt.Errorf("failed to parse flags: %w", err)
		}
	}

	if *l.configPath != "" {
		// Config file mode: addressing comes from the file.
		if *l.target != "" {
			return nil, fmt.Errorf("--target cannot be used with --config; configure in config file instead")
		}
		if *l.etcdAddr != "" {
			return nil, fmt.Errorf("--etcd cannot be used with --config; configure in config file instead")
		}
		if *l.etcdPrefix != DefaultEtcdPrefix {
			return nil, fmt.Errorf("--etcd-prefix cannot be used with --config; configure in config file instead")
		}

		cfg, err := config.LoadConfig(*l.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}

		settings := &Settings{
			Targets:           cfg.Gateway.Targets,
			EtcdEndpoints:     cfg.Etcd.Endpoints,
			EtcdPrefix:        cfg.Etcd.Prefix,
			CallTimeout:       cfg.GetCallTimeout(*l.callTimeout),
			ConnectionTimeout: cfg.GetConnectionTimeout(*l.connectTimeout),
		}
		if settings.EtcdPrefix == "" {
			settings.EtcdPrefix = DefaultEtcdPrefix
		}
		if l.flagWasSet("call-timeout") {
			settings.CallTimeout = *l.callTimeout
		}
		if l.flagWasSet("connect-timeout") {
			settings.ConnectionTimeout = *l.connectTimeout
		}
		if cfg.History.Enabled {
			settings.History = &history.Config{
				Host:     cfg.History.Host,
				Port:     cfg.History.Port,
				User:     cfg.History.User,
				Password: cfg.History.Password,
				Database: cfg.History.Database,
				SSLMode:  cfg.History.SSLMode,
			}
		}
		return settings, nil
	}

	// CLI-only mode: use flag values.
	settings := &Settings{
		EtcdPrefix:        *l.etcdPrefix,
		CallTimeout:       *l.callTimeout,
		ConnectionTimeout: *l.connectTimeout,
	}
	if *l.target != "" {
		for _, target := range strings.Split(*l.target, ",") {
			target = strings.TrimSpace(target)
			if target != "" {
				settings.Targets = append(settings.Targets, target)
			}
		}
	}
	if *l.etcdAddr != "" {
		settings.EtcdEndpoints = []string{*l.etcdAddr}
	}

	if len(settings.Targets) == 0 && len(settings.EtcdEndpoints) == 0 {
		return nil, fmt.Errorf("either --target or --etcd is required")
	}
	if settings.CallTimeout <= 0 {
		return nil, fmt.Errorf("--call-timeout must be positive")
	}
	if settings.ConnectionTimeout <= 0 {
		return nil, fmt.Errorf("--connect-timeout must be positive")
	}
	return settings, nil
}

// flagWasSet reports whether the named flag was given on the command line.
func (l *Loader) flagWasSet(name string) bool {
	set := false
	l.fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
