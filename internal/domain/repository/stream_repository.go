package repository

import (
	"context"
)

// StreamRepository - интерфейс для публикации в Redis Streams
type StreamRepository interface {
	// PublishToStream публикует сообщение в стрим, обрезая его примерно до maxLen записей (0 - без ограничения)
	PublishToStream(ctx context.Context, stream string, maxLen int64, data interface{}) (string, error)
}
