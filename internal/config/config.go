package config

import (
	"errors"
	"fmt"
	"os"
	"pwmeter/internal/common"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var Global global

// global is the configuration file, keys share their names with the
// flags so that values in the file act as flag defaults
type global struct {
	MinScore   int      `json:"minScore" yaml:"min-score" mapstructure:"min-score"`
	Output     string   `json:"output" yaml:"output" mapstructure:"output"`
	Require    []string `json:"require" yaml:"require" mapstructure:"require"`
	ServerUrl  string   `json:"serverUrl" yaml:"server-url" mapstructure:"server-url"`
	SourcePath *string  `json:"sourcePath" yaml:"-" mapstructure:"-"`
}

func (g *global) IsGlobalConfigExists() bool {
	return g.SourcePath != nil
}

// LoadGlobal loads the configuration file at `from` into viper and
// the Global instance; a missing file is not an error
func LoadGlobal(from string) error {
	logrus.Debugf("loading global configuration from path[%s]...", from)
	Global = global{}

	configPath, err := common.ToAbsolutePath(from)
	if err != nil {
		return fmt.Errorf("failed to resolve configuration path[%s]: %w", from, err)
	}
	fi, err := os.Stat(configPath)
	if errors.Is(err, os.ErrNotExist) {
		logrus.Debugf("config file not found at path[%s], defaults will be used", configPath)
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to check configuration file at path[%s]: %w", configPath, err)
	} else if fi.IsDir() {
		logrus.Warnf("config file path[%s] led to a directory, defaults will be used", configPath)
		return nil
	}
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}
	if err := viper.Unmarshal(&Global); err != nil {
		return fmt.Errorf("failed to parse configuration file: %w", err)
	}
	Global.SourcePath = &configPath
	logrus.Debugf("loaded global configuration from path[%s]", configPath)

	return nil
}
