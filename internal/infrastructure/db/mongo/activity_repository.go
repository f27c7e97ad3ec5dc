package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tripnest/travel-client/internal/core/domain"
	"github.com/tripnest/travel-client/internal/core/ports"
)

const activityCollection = "activities"

// ActivityRepository implements ports.ActivityRecorder using MongoDB.
type ActivityRepository struct {
	db *mongo.Database
}

var _ ports.ActivityRecorder = (*ActivityRepository)(nil)

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Record appends one entry to the activities audit collection.
func (r *ActivityRepository) Record(ctx context.Context, a domain.Activity) error {
	if _, err := r.db.Collection(activityCollection).InsertOne(ctx, activityDocument(a)); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

// ListByUser returns a user's most recent activities, newest first.
func (r *ActivityRepository) ListByUser(ctx context.Context, userID domain.ID, limit int64) ([]domain.Activity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.db.Collection(activityCollection).Find(ctx, bson.M{"user_id": userID.String()}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer cur.Close(ctx)

	var docs []activityDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	out := make([]domain.Activity, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// EnsureIndexes creates the user/time index used by ListByUser.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(activityCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("activity indexes: %w", err)
	}
	return nil
}

type activityDoc struct {
	ID        string    `bson:"_id"`
	Kind      string    `bson:"kind"`
	UserID    string    `bson:"user_id"`
	SubjectID string    `bson:"subject_id"`
	Status    string    `bson:"status,omitempty"`
	Notes     string    `bson:"notes,omitempty"`
	At        time.Time `bson:"at"`
}

func activityDocument(a domain.Activity) activityDoc {
	at := a.At
	if at.IsZero() {
		at = time.Now()
	}
	return activityDoc{
		ID:        uuid.NewString(),
		Kind:      string(a.Kind),
		UserID:    a.UserID.String(),
		SubjectID: a.SubjectID.String(),
		Status:    a.Status,
		Notes:     a.Notes,
		At:        at.UTC(),
	}
}

func (d activityDoc) toDomain() domain.Activity {
	return domain.Activity{
		Kind:      domain.ActivityKind(d.Kind),
		UserID:    domain.ID(d.UserID),
		SubjectID: domain.ID(d.SubjectID),
		Status:    d.Status,
		Notes:     d.Notes,
		At:        d.At,
	}
}
