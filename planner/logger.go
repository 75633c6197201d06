package planner

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// NewLogger builds a zap logger for mode: "prod"/"production" for JSON
// output at info level, "dev"/"development" for console output at debug
// level, and "" or "none" for a no-op logger.
func NewLogger(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "none", "off":
		return zap.NewNop(), nil
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	case "dev", "development":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("planner: unknown log mode %q", mode)
	}
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
