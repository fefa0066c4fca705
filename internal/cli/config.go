package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// Config is the TOML configuration file layout.
//
//	[store]
//	kind = "s3"
//	bucket = "tables"
//	prefix = "runs/"
//
//	[unique]
//	tolerance = 1e-6
//	method = "axis"
//	metric = [1.0, 0.5]
type Config struct {
	Store    StoreConfig    `toml:"store"`
	Unique   UniqueConfig   `toml:"unique"`
	Resource ResourceConfig `toml:"resource"`
}

// StoreConfig selects and configures the blob store.
type StoreConfig struct {
	Kind      string `toml:"kind"` // local, s3 or minio
	Root      string `toml:"root"`
	Bucket    string `toml:"bucket"`
	Prefix    string `toml:"prefix"`
	Endpoint  string `toml:"endpoint"`
	Region    string `toml:"region"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Secure    bool   `toml:"secure"`
}

// UniqueConfig holds defaults for the unique command.
type UniqueConfig struct {
	Tolerance   *float64  `toml:"tolerance"`
	Method      string    `toml:"method"`
	Stable      *bool     `toml:"stable"`
	SortedIndex bool      `toml:"sorted_index"`
	Metric      []float64 `toml:"metric"`
	Format      string    `toml:"format"`
	Codec       string    `toml:"codec"`
}

// ResourceConfig limits what a command may consume.
type ResourceConfig struct {
	IOLimitBytesPerSec int64 `toml:"io_limit_bytes_per_sec"`
}

func defaultConfig() Config {
	return Config{
		Store: StoreConfig{Kind: "local", Root: "."},
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

var errNoTolerance = errors.New("tolerance is required (set --tolerance or [unique] tolerance)")

// storeFlags binds the store selection flags shared by all table commands.
type storeFlags struct {
	cfg StoreConfig
}

func (s *storeFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&s.cfg.Kind, "store", "local", "blob store: local, s3 or minio")
	fs.StringVar(&s.cfg.Root, "root", ".", "root directory of the local store")
	fs.StringVar(&s.cfg.Bucket, "bucket", "", "bucket name (s3, minio)")
	fs.StringVar(&s.cfg.Prefix, "prefix", "", "key prefix inside the bucket")
	fs.StringVar(&s.cfg.Endpoint, "endpoint", "", "custom endpoint (s3, minio)")
	fs.StringVar(&s.cfg.Region, "region", "", "bucket region")
}

// merge overlays the flags the user set explicitly onto file.
func (s *storeFlags) merge(cmd *cobra.Command, file StoreConfig) StoreConfig {
	fs := cmd.Flags()
	out := file
	if fs.Changed("store") || out.Kind == "" {
		out.Kind = s.cfg.Kind
	}
	if fs.Changed("root") || out.Root == "" {
		out.Root = s.cfg.Root
	}
	if fs.Changed("bucket") {
		out.Bucket = s.cfg.Bucket
	}
	if fs.Changed("prefix") {
		out.Prefix = s.cfg.Prefix
	}
	if fs.Changed("endpoint") {
		out.Endpoint = s.cfg.Endpoint
	}
	if fs.Changed("region") {
		out.Region = s.cfg.Region
	}
	return out
}
