package app

import (
	"fmt"
	"log/slog"
)

// Set via ldflags, e.g.
// -ldflags "-X github.com/heartmarshall/agrotiquiza-backend/internal/app.Version=1.2.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version line printed at startup.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

func buildAttrs() []any {
	return []any{
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("built", BuildTime),
	}
}
