package logger

import (
	"time"

	"github.com/lintang-b-s/osm-separator-tree/pkg/logger/config"
	myZap "github.com/lintang-b-s/osm-separator-tree/pkg/logger/zap"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// New reads LOG_LEVEL, LOG_TIME_FORMAT and LOG_ENCODING through viper, so the values
// may come from the environment or the config file loaded by pkg/config.
func New() (*zap.Logger, error) {
	viper.SetDefault("LOG_LEVEL", config.INFO_LEVEL)
	viper.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)
	viper.SetDefault("LOG_ENCODING", config.CONSOLE_ENCODING)

	cfg := config.Configuration{
		Level:      viper.GetInt("LOG_LEVEL"),
		TimeFormat: viper.GetString("LOG_TIME_FORMAT"),
		Encoding:   viper.GetString("LOG_ENCODING"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return myZap.New(cfg)
}
