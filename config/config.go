package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/kerosiinikone/go-grpc-pixelforge/chunk"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

// Config holds addresses, ports and transfer settings shared by the server
// and the client.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Transfer TransferConfig `yaml:"transfer"`
	Palette  PaletteConfig  `yaml:"palette"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Addr        string `yaml:"address"`
	Port        int    `yaml:"port"`
	MaxMsgBytes int    `yaml:"max_msg_bytes"`
	// CacheSize is the number of processed images remembered per method.
	CacheSize int `yaml:"cache_size"`
	// Upstream is the address of the next service in a chain.
	Upstream string `yaml:"upstream"`
	// Chain maps a local method to the upstream method its result is sent to.
	Chain map[string]string `yaml:"chain"`
}

type TransferConfig struct {
	// ChunkSize is the payload size of each frame in both directions.
	ChunkSize   int           `yaml:"chunk_size"`
	Timeout     time.Duration `yaml:"timeout"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

// PaletteConfig holds the palette parameters a client sends when the
// command line does not override them. Zero means server default.
type PaletteConfig struct {
	ColorsPerRow int `yaml:"colors_per_row"`
	ColorWidth   int `yaml:"color_width"`
	ColorHeight  int `yaml:"color_height"`
	ColorNum     int `yaml:"color_num"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        "localhost",
			Port:        9090,
			MaxMsgBytes: 4 << 20,
			CacheSize:   64,
		},
		Transfer: TransferConfig{
			ChunkSize:   32 << 10,
			Timeout:     30 * time.Second,
			DialTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config load failed (%s)", path)
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config parse failed (%s)", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config invalid (%s)", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Transfer.ChunkSize < 1 {
		return fmt.Errorf("transfer.chunk_size must be at least 1, got %d", c.Transfer.ChunkSize)
	}
	if c.Server.MaxMsgBytes > 0 && c.Server.MaxMsgBytes < c.Transfer.ChunkSize {
		return fmt.Errorf("server.max_msg_bytes %d is smaller than transfer.chunk_size %d", c.Server.MaxMsgBytes, c.Transfer.ChunkSize)
	}
	if c.Transfer.Timeout < 0 {
		return errors.New("transfer.timeout must not be negative")
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("log.format %q is not console or json", c.Log.Format)
	}
	return nil
}

// Address is the host:port the server listens on and the client dials.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Addr, strconv.Itoa(c.Server.Port))
}

// ChunkSize returns the configured frame size, never below 1.
func (c *Config) ChunkSize() int {
	if c.Transfer.ChunkSize < 1 {
		return chunk.DefaultSize
	}
	return c.Transfer.ChunkSize
}

// RegisterFlags adds the command line overrides of the common settings to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("address", d.Server.Addr, "The server address")
	fs.Int("port", d.Server.Port, "The server port")
	fs.Int("chunk-size", d.Transfer.ChunkSize, "Frame payload size in bytes")
	fs.Duration("timeout", d.Transfer.Timeout, "Overall deadline of one transfer")
	fs.String("log-level", d.Log.Level, "Log level (trace, debug, info, warn, error)")
	fs.String("log-format", d.Log.Format, "Log format (console, json)")
}

// ApplyFlags copies the flags the user actually set over c, so the file
// wins over defaults and the command line wins over the file.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "address":
			c.Server.Addr, err = fs.GetString(f.Name)
		case "port":
			c.Server.Port, err = fs.GetInt(f.Name)
		case "chunk-size":
			c.Transfer.ChunkSize, err = fs.GetInt(f.Name)
		case "timeout":
			c.Transfer.Timeout, err = fs.GetDuration(f.Name)
		case "log-level":
			c.Log.Level, err = fs.GetString(f.Name)
		case "log-format":
			c.Log.Format, err = fs.GetString(f.Name)
		}
	})
	if err != nil {
		return errors.Wrap(err, "apply flags")
	}
	return c.Validate()
}
