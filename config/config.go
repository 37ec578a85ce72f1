// Package config reads the TOML configuration file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"github.com/revelaction/cohmetrix/analysis"
	"github.com/revelaction/cohmetrix/annotate/remote"
	"github.com/revelaction/cohmetrix/annotate/vertical"
	"github.com/revelaction/cohmetrix/errs"
	"github.com/revelaction/cohmetrix/lexicon"
	"github.com/revelaction/cohmetrix/pipeline"
	"github.com/revelaction/cohmetrix/preprocess"
	"github.com/revelaction/cohmetrix/storage/postgres"
)

const (
	dfltLanguage               = "es"
	dfltBatchSize              = 1
	dfltPreprocess             = "none"
	dfltListenAddress          = "localhost"
	dfltListenPort             = 8090
	dfltServerReadTimeoutSecs  = 30
	dfltServerWriteTimeoutSecs = 120
	dfltPostgresPort           = 5432
	dfltLogLevel               = "info"
)

type ParserConf struct {
	URL         string `toml:"url"`
	TimeoutSecs int    `toml:"timeoutSecs"`
}

type ClassifierConf struct {
	ModelPath    string `toml:"modelPath"`
	ModelSHA256  string `toml:"modelSHA256"`
	ScalerPath   string `toml:"scalerPath"`
	ScalerSHA256 string `toml:"scalerSHA256"`
}

// IsSet reports whether a model is configured.
func (c ClassifierConf) IsSet() bool {
	return c.ModelPath != ""
}

type ServerConf struct {
	ListenAddress      string   `toml:"listenAddress"`
	ListenPort         int      `toml:"listenPort"`
	ReadTimeoutSecs    int      `toml:"readTimeoutSecs"`
	WriteTimeoutSecs   int      `toml:"writeTimeoutSecs"`
	CorsAllowedOrigins []string `toml:"corsAllowedOrigins"`
}

type Conf struct {
	Language           string           `toml:"language"`
	ParagraphDelimiter string           `toml:"paragraphDelimiter"`
	Workers            *int             `toml:"workers"`
	BatchSize          int              `toml:"batchSize"`
	MaxTextLength      int              `toml:"maxTextLength"`
	Preprocess         string           `toml:"preprocess"`
	Parser             ParserConf       `toml:"parser"`
	Classifier         ClassifierConf   `toml:"classifier"`
	Server             ServerConf       `toml:"server"`
	Postgres           postgres.Conf    `toml:"postgres"`
	Vertical           vertical.Columns `toml:"vertical"`
	LogFile            string           `toml:"logFile"`
	LogLevel           logging.LogLevel `toml:"logLevel"`

	srcPath string
}

// Default returns the configuration used without a file.
func Default() *Conf {
	workers := pipeline.AllWorkers
	return &Conf{
		Language:           dfltLanguage,
		ParagraphDelimiter: analysis.DefaultDelimiter,
		Workers:            &workers,
		BatchSize:          dfltBatchSize,
		MaxTextLength:      analysis.DefaultMaxLength,
		Preprocess:         dfltPreprocess,
		Parser:             ParserConf{TimeoutSecs: int(remote.DefaultTimeout.Seconds())},
		Server: ServerConf{
			ListenAddress:    dfltListenAddress,
			ListenPort:       dfltListenPort,
			ReadTimeoutSecs:  dfltServerReadTimeoutSecs,
			WriteTimeoutSecs: dfltServerWriteTimeoutSecs,
		},
		Postgres: postgres.Conf{Port: dfltPostgresPort},
		Vertical: vertical.DefaultColumns,
		LogLevel: dfltLogLevel,
	}
}

// SourcePath returns the path the configuration was read from, empty for
// defaults.
func (conf *Conf) SourcePath() string {
	return conf.srcPath
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

// Load reads the TOML file at path. A missing file yields the defaults.
func Load(path string) (*Conf, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty: %w", errs.ErrInvalidConfiguration)
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	var conf Conf
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if !md.IsDefined("vertical") {
		conf.Vertical = vertical.DefaultColumns
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Warn().Str("path", path).Msgf("unknown config keys: %v", undecoded)
	}
	conf.srcPath = path
	return &conf, nil
}

// ValidateAndDefaults fills unset values, logging each default, and checks
// the values that cannot be defaulted.
func ValidateAndDefaults(conf *Conf) error {
	if conf.Language == "" {
		conf.Language = dfltLanguage
		log.Warn().Msgf("language not specified, using default: %s", conf.Language)
	}
	if _, err := lexicon.Get(conf.Language); err != nil {
		return err
	}

	if conf.ParagraphDelimiter == "" {
		conf.ParagraphDelimiter = analysis.DefaultDelimiter
		log.Warn().Msgf("paragraphDelimiter not specified, using default: %q", conf.ParagraphDelimiter)
	}

	if conf.Workers == nil {
		w := pipeline.AllWorkers
		conf.Workers = &w
		log.Warn().Msgf("workers not specified, using default: %d", w)
	}
	if _, err := pipeline.Workers(*conf.Workers); err != nil {
		return err
	}

	if conf.BatchSize == 0 {
		conf.BatchSize = dfltBatchSize
		log.Warn().Msgf("batchSize not specified, using default: %d", conf.BatchSize)
	}
	if conf.BatchSize < 1 {
		return fmt.Errorf("batchSize %d, want a positive number: %w", conf.BatchSize, errs.ErrInvalidConfiguration)
	}

	if conf.MaxTextLength == 0 {
		conf.MaxTextLength = analysis.DefaultMaxLength
		log.Warn().Msgf("maxTextLength not specified, using default: %d", conf.MaxTextLength)
	}
	if conf.MaxTextLength < 0 {
		return fmt.Errorf("maxTextLength %d, want a positive number: %w", conf.MaxTextLength, errs.ErrInvalidConfiguration)
	}

	if conf.Preprocess == "" {
		conf.Preprocess = dfltPreprocess
	}
	if _, err := preprocess.ByName(conf.Preprocess); err != nil {
		return err
	}

	if conf.Parser.TimeoutSecs <= 0 {
		conf.Parser.TimeoutSecs = int(remote.DefaultTimeout.Seconds())
	}

	if conf.Classifier.ScalerPath != "" && conf.Classifier.ModelPath == "" {
		return fmt.Errorf("classifier.scalerPath set without classifier.modelPath: %w", errs.ErrInvalidConfiguration)
	}

	if conf.Server.ListenAddress == "" {
		conf.Server.ListenAddress = dfltListenAddress
	}
	if conf.Server.ListenPort == 0 {
		conf.Server.ListenPort = dfltListenPort
		log.Warn().Msgf("server.listenPort not specified, using default: %d", conf.Server.ListenPort)
	}
	if conf.Server.ReadTimeoutSecs == 0 {
		conf.Server.ReadTimeoutSecs = dfltServerReadTimeoutSecs
	}
	if conf.Server.WriteTimeoutSecs == 0 {
		conf.Server.WriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf(
			"server.writeTimeoutSecs not specified, using default: %d",
			dfltServerWriteTimeoutSecs,
		)
	}

	if conf.Postgres.IsSet() && conf.Postgres.Port == 0 {
		conf.Postgres.Port = dfltPostgresPort
	}

	if conf.LogLevel == "" {
		conf.LogLevel = dfltLogLevel
	}
	switch strings.ToLower(string(conf.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logLevel %q, want debug, info, warn or error: %w", conf.LogLevel, errs.ErrInvalidConfiguration)
	}

	return nil
}
