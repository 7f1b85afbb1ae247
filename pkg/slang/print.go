package slang

import "go.uber.org/zap"

var logger *zap.Logger

// SetLogger overrides the sink used by Println. A nil logger restores the
// process-wide zap global.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Println forwards its arguments verbatim to the logging sink. Without a
// host-installed sink (zap's global defaults to a no-op logger) it does
// nothing.
func Println(args ...any) {
	l := logger
	if l == nil {
		l = zap.L()
	}
	l.Sugar().Infoln(args...)
}
