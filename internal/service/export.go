package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"

	"noteshare/internal/export"
	"noteshare/internal/model"
)

// ExportService queues asynchronous note exports.
type ExportService interface {
	// RequestExport publishes an export job for the user's notes.
	RequestExport(ctx context.Context, userID uuid.UUID, targetEmail string) error
}

type ExportServiceImpl struct {
	producer export.Producer
}

// NewExportService constructs ExportService over a queue producer.
func NewExportService(producer export.Producer) *ExportServiceImpl {
	return &ExportServiceImpl{producer: producer}
}

// RequestExport publishes the job. The export content itself is assembled by
// the worker consuming the queue, not here.
func (s *ExportServiceImpl) RequestExport(ctx context.Context, userID uuid.UUID, targetEmail string) error {
	if userID == uuid.Nil {
		return errors.New("validation: empty userID")
	}
	if !strings.Contains(targetEmail, "@") {
		return errors.New("validation: bad target email")
	}
	body, err := json.Marshal(model.ExportRequest{UserID: userID, TargetEmail: targetEmail})
	if err != nil {
		return err
	}
	return s.producer.Publish(ctx, export.QueueNotes, body)
}
