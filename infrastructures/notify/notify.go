package notify

import (
	"github.com/rs/zerolog"
	"github.com/sobadon/ts20/domain/repository"
)

// デスクトップ通知や syslog の代わりに zerolog へ流す実装
// core は repository.Notifier しか知らない
type logNotifier struct {
	logger zerolog.Logger
}

func New(logger zerolog.Logger) repository.Notifier {
	return &logNotifier{
		logger: logger,
	}
}

func (n *logNotifier) Info(msg string) {
	n.logger.Info().Msg(msg)
}

func (n *logNotifier) Warn(msg string) {
	n.logger.Warn().Msg(msg)
}

func (n *logNotifier) Error(msg string) {
	n.logger.Error().Msg(msg)
}
