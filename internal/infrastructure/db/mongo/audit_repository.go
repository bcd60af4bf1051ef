package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

const auditCollection = "console_audit"

// AuditRepository stores the console's own audit trail. This is gateway
// observability; upstream domain state never lands here.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	ID        string `bson:"_id"`
	SessionID string `bson:"session_id"`
	Actor     string `bson:"actor"`
	Action    string `bson:"action"`
	Target    string `bson:"target,omitempty"`
	Detail    string `bson:"detail,omitempty"`
	CreatedAt int64  `bson:"created_at"`
}

func (r *AuditRepository) Insert(ctx context.Context, e domain.AuditEntry) error {
	doc := auditDoc{
		ID:        e.ID,
		SessionID: e.SessionID,
		Actor:     e.Actor,
		Action:    e.Action,
		Target:    e.Target,
		Detail:    e.Detail,
		CreatedAt: e.CreatedAt.UnixMilli(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *AuditRepository) List(ctx context.Context, page ports.Page) ([]domain.AuditEntry, int, error) {
	limit := int64(page.Limit)
	if limit <= 0 {
		limit = 50
	}
	skip := int64(0)
	if page.Page > 1 {
		skip = int64(page.Page-1) * limit
	}

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count audit entries: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find audit entries: %w", err)
	}
	defer cur.Close(ctx)

	var entries []domain.AuditEntry
	for cur.Next(ctx) {
		var doc auditDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, domain.AuditEntry{
			ID:        doc.ID,
			SessionID: doc.SessionID,
			Actor:     doc.Actor,
			Action:    doc.Action,
			Target:    doc.Target,
			Detail:    doc.Detail,
			CreatedAt: milliToTime(doc.CreatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, int(total), nil
}
