package command

import (
	"context"
	"log/slog"
	"time"

	"github.com/beliefted/beliefted-server/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

func testTime() time.Time {
	return time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)
}

const testItemID = "507f1f77bcf86cd799439011"
