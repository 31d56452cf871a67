package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"gopkg.in/yaml.v3"

	"github.com/lobster-robotics/common/logging"
	"github.com/lobster-robotics/common/spatialmath"
)

const (
	metadataLogger = "logger"
	metadataFormat = "format"
)

// loadFormatConfig reads a display format from a YAML file, or from a JSON file when the name ends
// in .json or .json5. Fields missing from the file keep their natural value.
func loadFormatConfig(path string) (*spatialmath.FormatConfig, error) {
	//nolint:gosec
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read format config %q", path)
	}
	var cfg spatialmath.FormatConfig
	unmarshal := yaml.Unmarshal
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".json5":
		unmarshal = json5.Unmarshal
	}
	if err := unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "could not parse format config %q", path)
	}
	return &cfg, nil
}

// formatFromFlags combines the format config file with the precision and width flags, which take
// precedence. It returns nil when none of them are given.
func formatFromFlags(c *cli.Context) (*spatialmath.FormatConfig, error) {
	var cfg *spatialmath.FormatConfig
	if path := c.Path(generalFlagFormatConfig); path != "" {
		loaded, err := loadFormatConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if !c.IsSet(generalFlagPrecision) && !c.IsSet(generalFlagWidth) {
		return cfg, nil
	}
	if cfg == nil {
		cfg = &spatialmath.FormatConfig{}
	}
	if c.IsSet(generalFlagPrecision) {
		*cfg = cfg.WithPrecision(c.Int(generalFlagPrecision))
	}
	if c.IsSet(generalFlagWidth) {
		cfg.Width = c.Int(generalFlagWidth)
	}
	return cfg, nil
}

// BeforeAction sets the log level and the display format shared by every command.
func BeforeAction(c *cli.Context) error {
	level, err := logging.LevelFromString(c.String(generalFlagLogLevel))
	if err != nil {
		return errors.Wrapf(err, "invalid --%s", generalFlagLogLevel)
	}
	if c.Bool(generalFlagDebug) {
		level = logging.DEBUG
	}
	logger := loggerFromContext(c)
	logger.SetLevel(level)

	cfg, err := formatFromFlags(c)
	if err != nil {
		return err
	}
	if cfg != nil {
		if cfg.Digits() > 17 {
			warningf(c.App.ErrWriter, "precision %d is beyond what a float64 can represent", cfg.Digits())
		}
		logger.Debugw("using display format", "precision", cfg.Digits(), "width", cfg.Width)
	}

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[metadataFormat] = cfg
	return nil
}

// AfterAction flushes the logger.
func AfterAction(c *cli.Context) error {
	return loggerFromContext(c).Sync()
}

func metadata(c *cli.Context, key string) (interface{}, bool) {
	for _, ctx := range c.Lineage() {
		if ctx.App == nil || ctx.App.Metadata == nil {
			continue
		}
		if value, ok := ctx.App.Metadata[key]; ok {
			return value, true
		}
	}
	return nil, false
}

func loggerFromContext(c *cli.Context) logging.Logger {
	if value, ok := metadata(c, metadataLogger); ok {
		if logger, ok := value.(logging.Logger); ok {
			return logger
		}
	}
	logger := logging.NewWriterLogger("lobster", logging.INFO, c.App.ErrWriter)
	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[metadataLogger] = logger
	return logger
}

func formatFromContext(c *cli.Context) *spatialmath.FormatConfig {
	if value, ok := metadata(c, metadataFormat); ok {
		if cfg, ok := value.(*spatialmath.FormatConfig); ok {
			return cfg
		}
	}
	return nil
}
