package config

import (
	"strings"
	"time"

	"github.com/Vilsol/memdbg/dump"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func InitializeConfig(file string) {
	if file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("memdbg")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("memdbg")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	initializeDefaults()

	err := viper.ReadInConfig()
	if err != nil {
		log.Debug(errors.Wrap(err, "config initialized using defaults and environment only"))
		return
	}

	log.Debugf("Config initialized from %s", viper.ConfigFileUsed())
}

func initializeDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.colors", true)

	viper.SetDefault("dump.row_width", dump.RowWidth)
	viper.SetDefault("dump.group_width", dump.GroupWidth)
	viper.SetDefault("dump.compact", false)
	viper.SetDefault("dump.highlight", false)

	viper.SetDefault("socket.host", "127.0.0.1")
	viper.SetDefault("socket.port", 56218)

	viper.SetDefault("send.timeout", 10*time.Second)
}

func DumpOptions() dump.Options {
	opts := dump.Options{
		RowWidth:   viper.GetInt("dump.row_width"),
		GroupWidth: viper.GetInt("dump.group_width"),
		Compact:    viper.GetBool("dump.compact"),
	}

	if viper.GetBool("dump.highlight") {
		red := color.New(color.FgRed)
		opts.Highlight = func(b byte) bool {
			return !dump.IsPrintable(b)
		}
		opts.Paint = func(s string) string {
			return red.Sprint(s)
		}
	}

	return opts
}

func Formatter() (*dump.Formatter, error) {
	f, err := dump.New(DumpOptions())
	if err != nil {
		return nil, errors.Wrap(err, "invalid dump configuration")
	}

	return f, nil
}
