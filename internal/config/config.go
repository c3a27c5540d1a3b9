// Package config loads the pipeline's TOML configuration (sections
// parser, output, logging, parallel), applies environment overrides,
// and supplies the defaults every CLI command falls back to.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/kmakeev/egrul-go/pkg/types"
)

// Config is the application configuration, loaded from a TOML file
// and/or EGRUL_-prefixed environment variables.
type Config struct {
	Parser   ParserSettings   `toml:"parser"`
	Output   OutputSettings   `toml:"output"`
	Logging  LoggingSettings  `toml:"logging"`
	Parallel ParallelSettings `toml:"parallel"`
}

// ParserSettings controls extraction behavior shared across files.
type ParserSettings struct {
	ContinueOnError   bool `toml:"continue_on_error"`
	BatchSize         int  `toml:"batch_size"`
	ChannelBufferSize int  `toml:"channel_buffer_size"`
	ShowProgress      bool `toml:"show_progress"`
}

// OutputSettings controls the columnar/JSON writer backends.
type OutputSettings struct {
	Format            string `toml:"format"`
	OutputDir         string `toml:"output_dir"`
	Compression       string `toml:"compression"`
	MaxFileSizeMB     int    `toml:"max_file_size_mb"`
	MaxRecordsPerFile int    `toml:"max_records_per_file"`
}

// LoggingSettings controls applog's initialization.
type LoggingSettings struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Format string `toml:"format"`
}

// ParallelSettings controls the orchestrator's worker count and
// channel sizing.
type ParallelSettings struct {
	Workers          int  `toml:"workers"`
	QueueSize        int  `toml:"queue_size"`
	DistributeBySize bool `toml:"distribute_by_size"`
}

// Default returns the configuration's zero-file defaults: continue on
// error, batch size 5000, channel buffer 10000, parquet output to
// ./output, auto worker count, size-balanced distribution.
func Default() Config {
	return Config{
		Parser: ParserSettings{
			ContinueOnError:   true,
			BatchSize:         5000,
			ChannelBufferSize: 10000,
			ShowProgress:      true,
		},
		Output: OutputSettings{
			Format:      "parquet",
			OutputDir:   "./output",
			Compression: "snappy",
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "text",
		},
		Parallel: ParallelSettings{
			QueueSize:        1000,
			DistributeBySize: true,
		},
	}
}

// candidatePaths lists the files Load searches, in priority order.
func candidatePaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "egrul-go", "config.toml"))
	}
	paths = append(paths, "./config.toml", "./egrul-go.toml")
	return paths
}

// Load searches candidatePaths for the first existing file, parses it,
// applies environment overrides, and returns the result. When no
// candidate exists, it returns Default() with environment overrides
// applied.
func Load() (Config, error) {
	for _, path := range candidatePaths() {
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	cfg := Default()
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// LoadFile reads and parses the TOML file at path, merging it onto
// Default() so that an omitted section keeps its default value, then
// applies environment overrides on top.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, types.ConfigError(err, "parsing %s", path)
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes cfg as pretty-printed TOML to path, creating parent
// directories as needed.
func Save(cfg Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return types.IOError(err, "creating %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return types.IOError(err, "creating %s", path)
	}
	defer f.Close()
	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return types.ConfigError(err, "encoding config")
	}
	return nil
}

// DefaultConfigPath returns the first candidate path (the one under
// the user's config directory), or "" when it cannot be determined.
func DefaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "egrul-go", "config.toml")
	}
	return ""
}

// NumWorkers returns the configured worker count, resolving 0 ("auto")
// to the available CPU count.
func (c Config) NumWorkers() int {
	if c.Parallel.Workers > 0 {
		return c.Parallel.Workers
	}
	return runtime.NumCPU()
}

// envPrefix is the prefix spec §6 specifies for environment overrides:
// prefix + upper-snake section name + upper-snake field name, e.g.
// EGRUL_PARSER_BATCH_SIZE sets parser.batch_size.
const envPrefix = "EGRUL_"

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv(envPrefix + "PARSER_BATCH_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Parser.BatchSize = n
		}
	}
	if v, ok := os.LookupEnv(envPrefix + "PARSER_CONTINUE_ON_ERROR"); ok {
		cfg.Parser.ContinueOnError = parseBool(v)
	}
	if v, ok := os.LookupEnv(envPrefix + "PARSER_SHOW_PROGRESS"); ok {
		cfg.Parser.ShowProgress = parseBool(v)
	}
	if v, ok := os.LookupEnv(envPrefix + "PARSER_CHANNEL_BUFFER_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Parser.ChannelBufferSize = n
		}
	}
	if v, ok := os.LookupEnv(envPrefix + "OUTPUT_FORMAT"); ok {
		cfg.Output.Format = v
	}
	if v, ok := os.LookupEnv(envPrefix + "OUTPUT_OUTPUT_DIR"); ok {
		cfg.Output.OutputDir = v
	}
	if v, ok := os.LookupEnv(envPrefix + "OUTPUT_COMPRESSION"); ok {
		cfg.Output.Compression = v
	}
	if v, ok := os.LookupEnv(envPrefix + "OUTPUT_MAX_FILE_SIZE_MB"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Output.MaxFileSizeMB = n
		}
	}
	if v, ok := os.LookupEnv(envPrefix + "OUTPUT_MAX_RECORDS_PER_FILE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Output.MaxRecordsPerFile = n
		}
	}
	if v, ok := os.LookupEnv(envPrefix + "LOGGING_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOGGING_FILE"); ok {
		cfg.Logging.File = v
	}
	if v, ok := os.LookupEnv(envPrefix + "PARALLEL_WORKERS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Parallel.Workers = n
		}
	}
	if v, ok := os.LookupEnv(envPrefix + "PARALLEL_QUEUE_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Parallel.QueueSize = n
		}
	}
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
