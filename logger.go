package zapix

import "github.com/rs/zerolog"

// defaultLogger is used by clients built without WithLogger. It discards
// everything until the host application installs a real logger.
var defaultLogger = zerolog.Nop()

// SetLogger installs the logger inherited by clients constructed after
// the call. Individual clients can still override it with WithLogger.
func SetLogger(log zerolog.Logger) {
	defaultLogger = log
}
