package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edustack/course-platform/internal/core/domain"
)

const auditCollection = "auth_events"

// AuditStore appends authentication audit events. Append-only, never read by
// the service itself.
type AuditStore struct {
	coll *mongo.Collection
}

func NewAuditStore(db *mongo.Database) *AuditStore {
	return &AuditStore{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Username  string `bson:"username"`
	Action    string `bson:"action"`
	Outcome   string `bson:"outcome"`
	Reason    string `bson:"reason,omitempty"`
	RemoteIP  string `bson:"remote_ip,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (s *AuditStore) Record(ctx context.Context, event domain.AuthEvent) error {
	doc := auditDoc{
		Username:  event.Username,
		Action:    event.Action,
		Outcome:   event.Outcome,
		Reason:    event.Reason,
		RemoteIP:  event.RemoteIP,
		Timestamp: event.Timestamp.Unix(),
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
