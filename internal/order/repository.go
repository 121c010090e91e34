package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("order not found")

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// StatusStats is one $group bucket of the stats aggregation.
type StatusStats struct {
	Status       Status  `json:"status" bson:"_id"`
	Count        int     `json:"count" bson:"count"`
	TotalRevenue float64 `json:"totalRevenue" bson:"totalRevenue"`
}

type Stats struct {
	Stats       []StatusStats `json:"stats"`
	TotalOrders int64         `json:"totalOrders"`
}

type Repository interface {
	Create(ctx context.Context, o *Order) error
	Get(ctx context.Context, orderID string) (*Order, error)
	List(ctx context.Context, limit int64, status Status) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) (*Order, error)
	Stats(ctx context.Context) (*Stats, error)
}

type repo struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) Repository {
	return &repo{coll: coll}
}

func (r *repo) Create(ctx context.Context, o *Order) error {
	if _, err := r.coll.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *repo) Get(ctx context.Context, orderID string) (*Order, error) {
	var o Order
	err := r.coll.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &o, nil
}

// ClampLimit applies the default page size and the server-enforced ceiling.
func ClampLimit(limit int64) int64 {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// List returns orders newest first, at most ClampLimit(limit) of them.
func (r *repo) List(ctx context.Context, limit int64, status Status) ([]Order, error) {
	limit = ClampLimit(limit)

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cur.Close(ctx)

	var orders []Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (r *repo) UpdateStatus(ctx context.Context, orderID string, status Status) (*Order, error) {
	var o Order
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"orderId": orderID},
		bson.M{"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return &o, nil
}

func (r *repo) Stats(ctx context.Context) (*Stats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          "$status",
			"count":        bson.M{"$sum": 1},
			"totalRevenue": bson.M{"$sum": "$total"},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate orders: %w", err)
	}
	defer cur.Close(ctx)

	stats := &Stats{Stats: []StatusStats{}}
	if err := cur.All(ctx, &stats.Stats); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	stats.TotalOrders = total

	return stats, nil
}
