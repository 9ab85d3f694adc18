package repository

import (
	"context"
	"time"

	"github.com/guttosm/deal-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxHistoryLimit caps the number of calculations returned by a single query.
const MaxHistoryLimit = 100

// CalculationDocument is a stored cost calculation.
type CalculationDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Quantity  int64              `bson:"quantity"`
	TotalCost int64              `bson:"total_cost"`
	DealCount int64              `bson:"deal_count"`
	Deals     []model.Deal       `bson:"deals"`
	RequestID string             `bson:"request_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

// CalculationsRepository stores calculation history.
type CalculationsRepository struct {
	collection *mongo.Collection
}

// NewCalculationsRepository creates a repository on db.Calculations.
func NewCalculationsRepository(db *MongoDB) *CalculationsRepository {
	return &CalculationsRepository{collection: db.Calculations}
}

// CreateMany inserts docs with a single InsertMany, filling in ID and
// CreatedAt when unset. IDs are generated here, so the server never sees a
// duplicate key from a retried batch.
func (r *CalculationsRepository) CreateMany(ctx context.Context, docs []*CalculationDocument) error {
	if len(docs) == 0 {
		return nil
	}

	batch := make([]interface{}, len(docs))
	for i, doc := range docs {
		if doc.ID.IsZero() {
			doc.ID = primitive.NewObjectID()
		}
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = time.Now().UTC()
		}
		batch[i] = doc
	}

	_, err := r.collection.InsertMany(ctx, batch, options.InsertMany().SetOrdered(true))
	return err
}

// Recent returns the newest calculations first.
func (r *CalculationsRepository) Recent(ctx context.Context, limit int) ([]CalculationDocument, error) {
	return r.find(ctx, bson.M{}, limit)
}

// FindByQuantity returns the newest calculations for one quantity.
func (r *CalculationsRepository) FindByQuantity(ctx context.Context, quantity int64, limit int) ([]CalculationDocument, error) {
	return r.find(ctx, bson.M{"quantity": quantity}, limit)
}

// Count returns the number of stored calculations.
func (r *CalculationsRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *CalculationsRepository) find(ctx context.Context, filter bson.M, limit int) ([]CalculationDocument, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(clampLimit(limit)))

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := make([]CalculationDocument, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}
