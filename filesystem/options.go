package filesystem

import (
	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/zap"

	"github.com/andreluiz2431/Simulador-de-Sistema-de-Arquivos/common"
)

var log = logging.Logger("filesystem")

type options struct {
	logger   *zap.SugaredLogger
	rootName string
}

type Option func(o *options)

// WithLogger sets the logger diagnostic messages are written to. It has nothing to do with the operation log.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func WithRootName(name string) Option {
	return func(o *options) {
		o.rootName = name
	}
}

func defaultOptions() options {
	return options{
		logger:   &log.SugaredLogger,
		rootName: common.RootName,
	}
}
