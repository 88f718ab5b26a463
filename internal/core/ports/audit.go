package ports

import (
	"context"

	"github.com/edustack/course-platform/internal/core/domain"
)

// AuditRecorder persists authentication audit events.
type AuditRecorder interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}

// AuditSink accepts events for asynchronous recording. Enqueue must not
// block the request path beyond channel capacity.
type AuditSink interface {
	Enqueue(event domain.AuthEvent)
}
