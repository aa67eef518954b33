package logger

import (
	log "log/slog"
	"os"
)

// InitLogger 初始化全局 slog，JSON 输出到标准输出
func InitLogger() {
	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})

	logger := log.New(&ContextHandler{hStdout})
	log.SetDefault(logger)
}
