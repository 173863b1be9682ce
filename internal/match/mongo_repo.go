package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DhavalSuthar-24/crease/internal/scoring"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const matchesCollection = "matches"

// MongoMatchRepository keeps each match as one document keyed by its id.
type MongoMatchRepository struct {
	Client     *mongo.Client
	Database   *mongo.Database
	collection *mongo.Collection
	now        func() time.Time
}

// NewMongoMatchRepository connects to uri and ensures the listing indexes.
func NewMongoMatchRepository(ctx context.Context, uri, dbName string) (*MongoMatchRepository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to reach mongo: %w", err)
	}

	db := client.Database(dbName)
	repo := &MongoMatchRepository{
		Client:     client,
		Database:   db,
		collection: db.Collection(matchesCollection),
		now:        time.Now,
	}
	_, err = repo.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	if err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create match indexes: %w", err)
	}
	return repo, nil
}

func (r *MongoMatchRepository) Close(ctx context.Context) error {
	return r.Client.Disconnect(ctx)
}

func (r *MongoMatchRepository) Create(ctx context.Context, m *scoring.Match) error {
	m.LastUpdated = r.now().UTC().Truncate(time.Millisecond)
	if _, err := r.collection.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("error inserting match %s: %w", m.ID, err)
	}
	return nil
}

func (r *MongoMatchRepository) Get(ctx context.Context, id string) (*scoring.Match, error) {
	var m scoring.Match
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching match %s: %w", id, err)
	}
	return &m, nil
}

func (r *MongoMatchRepository) List(ctx context.Context, filter ListFilter, page, pageSize int) ([]scoring.Match, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Team != "" {
		query["$or"] = bson.A{bson.M{"team_a": filter.Team}, bson.M{"team_b": filter.Team}}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting matches: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetProjection(bson.M{"history": 0})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing matches: %w", err)
	}
	matches := []scoring.Match{}
	if err := cursor.All(ctx, &matches); err != nil {
		return nil, 0, fmt.Errorf("error decoding matches: %w", err)
	}
	return matches, total, nil
}

// Replace overwrites the stored document and stamps LastUpdated on m.
func (r *MongoMatchRepository) Replace(ctx context.Context, m *scoring.Match) error {
	updated := *m
	updated.LastUpdated = r.now().UTC().Truncate(time.Millisecond)
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": m.ID}, updated)
	if err != nil {
		return fmt.Errorf("error replacing match %s: %w", m.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrMatchNotFound
	}
	m.LastUpdated = updated.LastUpdated
	return nil
}

func (r *MongoMatchRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting match %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrMatchNotFound
	}
	return nil
}
