// Package autoload initializes the global logger from the LOG_*
// environment on import:
//
//	import _ "github.com/frankwear858/ai-council/pkg/logger/autoload"
package autoload

import (
	"github.com/kelseyhightower/envconfig"

	logx "github.com/frankwear858/ai-council/pkg/logger"
)

func init() {
	var conf logx.Config
	if err := envconfig.Process("LOG", &conf); err != nil {
		conf = *logx.DefaultConfig
	}
	logx.Init(conf)
}
