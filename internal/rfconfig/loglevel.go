package rfconfig

import (
	"fmt"

	"github.com/projectdiscovery/gologger/levels"
)

// ParseLogLevel maps the CLI's --log-level string onto a gologger level.
func ParseLogLevel(s string) (levels.Level, error) {
	switch s {
	case "debug":
		return levels.LevelDebug, nil
	case "info":
		return levels.LevelInfo, nil
	case "warning", "warn":
		return levels.LevelWarning, nil
	case "error":
		return levels.LevelError, nil
	case "fatal":
		return levels.LevelFatal, nil
	default:
		return levels.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
