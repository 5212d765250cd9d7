package reasonify

import (
	"log/slog"
	"os"
)

// Logger 全局日志记录器
var Logger = slog.New(slog.NewTextHandler(os.Stderr, nil)).With("component", "reasonify")

// SetLogger 设置自定义日志记录器
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	Logger = logger
}
