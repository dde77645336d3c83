// Package export publishes note-export requests to a downstream worker queue.
package export

import (
	"context"

	"go.uber.org/zap"
)

// QueueNotes is the queue the export worker consumes.
const QueueNotes = "export:notes"

// Producer publishes a message body to a named queue. Publishing is
// fire-and-forget from the caller's point of view: the export worker owns the
// payload from here on.
type Producer interface {
	Publish(ctx context.Context, queue string, body []byte) error
}

// LogProducer records export requests in the log instead of a broker.
// It stands in where no broker is deployed (dev, tests).
type LogProducer struct{ log *zap.Logger }

// NewLogProducer constructs a log-backed producer.
func NewLogProducer(log *zap.Logger) *LogProducer { return &LogProducer{log: log} }

// Publish logs the message metadata.
func (p *LogProducer) Publish(_ context.Context, queue string, body []byte) error {
	p.log.Info("export publish",
		zap.String("queue", queue),
		zap.Int("bytes", len(body)),
	)
	return nil
}
