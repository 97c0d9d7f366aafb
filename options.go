package html

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Tokenizer or a Parser. The same Option values
// are accepted by both constructors, so a logger attached to a Parser
// also traces the internal Tokenizer it drives.
type Option func(*settings)

type settings struct {
	log *logrus.Logger
}

func newSettings(opts []Option) *settings {
	s := &settings{log: noopLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithLogger attaches a logger that receives Debug-level traces of
// recovery-path decisions: the tokenizer's stray-"<" fallback and
// abandoned-tag/unterminated-comment/unterminated-script recoveries,
// and the parser's implicit closes. Neither constructor's output
// sequence changes based on this option; it only affects what gets
// logged. Pass nil to silence tracing.
func WithLogger(l *logrus.Logger) Option {
	return func(s *settings) {
		if l == nil {
			l = noopLogger()
		}
		s.log = l
	}
}

func noopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
