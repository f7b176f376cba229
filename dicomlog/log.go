package dicomlog

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// level sets log verbosity. The larger the value, the more verbose.  Setting it
// to -1 disables logging completely.
var level = int32(0)

// SetLevel sets log verbosity. The larger the value, the more verbose. Setting
// it to -1 disables logging completely. Thread safe.
//
// Level 1 traces element headers, level 2 also traces container budgets.
func SetLevel(l int) {
	atomic.StoreInt32(&level, int32(l))
	if l >= 1 {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// Level returns the current log level. Thread safe.
func Level() int {
	return int(atomic.LoadInt32(&level))
}

// Vprintf is shorthand for "if Level() >= l { logrus.Debugf(...) }".
func Vprintf(l int, format string, args ...interface{}) {
	if Level() >= l {
		logrus.Debugf(format, args...)
	}
}

// Warnf logs unless logging is disabled with SetLevel(-1).
func Warnf(format string, args ...interface{}) {
	if Level() >= 0 {
		logrus.Warnf(format, args...)
	}
}

// WithFile returns an entry tagged with the file being decoded.
func WithFile(path string) *logrus.Entry {
	return logrus.WithField("file", path)
}
