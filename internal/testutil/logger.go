package testutil

import (
	"io"

	"github.com/DanangAP-mitrais/ai-chat-app/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0)
}
