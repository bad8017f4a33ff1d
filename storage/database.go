package storage

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"rent-it-server/utils"
)

// ErrUnavailable is returned by every store operation when the database was
// never configured or the connection could not be established.
var ErrUnavailable = errors.New("database not available, check DATABASE_URL and DATABASE_NAME")

// Config holds the document store settings, read once at initialization.
type Config struct {
	URL      string
	Database string
}

var (
	db     *mongo.Database
	config Config
)

// LoadConfig reads the store settings from the environment.
func LoadConfig() Config {
	return Config{
		URL:      os.Getenv("DATABASE_URL"),
		Database: os.Getenv("DATABASE_NAME"),
	}
}

// InitializeDB connects to the document store. Missing configuration is not
// fatal: the handle stays nil and every operation fails with ErrUnavailable
// until the process is restarted with proper settings.
func InitializeDB() {
	config = LoadConfig()

	if config.URL == "" || config.Database == "" {
		utils.Log().Warn("DATABASE_URL or DATABASE_NAME not set, persistence disabled")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URL))
	if err != nil {
		utils.Log().Error("mongo connect failed", zap.Error(err))
		return
	}

	if err := c.Ping(ctx, nil); err != nil {
		utils.Log().Error("mongo ping failed", zap.Error(err))
		return
	}

	db = c.Database(config.Database)
	utils.Log().Info("connected to database", zap.String("database", config.Database))
}

// Available reports whether the store handle is usable.
func Available() bool {
	return db != nil
}

// CurrentConfig returns the settings captured by InitializeDB.
func CurrentConfig() Config {
	return config
}

// CollectionNames lists up to limit collection names, for diagnostics.
func CollectionNames(ctx context.Context, limit int) ([]string, error) {
	if db == nil {
		return nil, ErrUnavailable
	}
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// ToDocument flattens a model struct (or raw map) into a bson.M carrying only
// the declared fields.
func ToDocument(data interface{}) (bson.M, error) {
	switch m := data.(type) {
	case bson.M:
		doc := bson.M{}
		for k, v := range m {
			doc[k] = v
		}
		return doc, nil
	case map[string]interface{}:
		doc := bson.M{}
		for k, v := range m {
			doc[k] = v
		}
		return doc, nil
	}

	raw, err := bson.Marshal(data)
	if err != nil {
		return nil, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Stamp copies the document and sets created_at/updated_at to one identical
// UTC instant, the audit policy applied to every insert.
func Stamp(doc bson.M, now time.Time) bson.M {
	stamped := bson.M{}
	for k, v := range doc {
		stamped[k] = v
	}
	now = now.UTC()
	stamped["created_at"] = now
	stamped["updated_at"] = now
	return stamped
}

// CreateDocument inserts a single document with audit timestamps and returns
// the store-assigned identifier as a hex string.
func CreateDocument(ctx context.Context, collection string, data interface{}) (string, error) {
	if db == nil {
		return "", ErrUnavailable
	}

	doc, err := ToDocument(data)
	if err != nil {
		return "", err
	}

	res, err := db.Collection(collection).InsertOne(ctx, Stamp(doc, time.Now()))
	if err != nil {
		return "", err
	}

	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// GetDocuments returns the documents matching filter in store-native order.
// The filter is passed through untouched, including nested operators such as
// $gte, $lte and $or. A positive limit truncates the result.
func GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if db == nil {
		return nil, ErrUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetDocument returns the first document matching filter, or (nil, nil) when
// nothing matches. Absence is not an error.
func GetDocument(ctx context.Context, collection string, filter bson.M) (bson.M, error) {
	if db == nil {
		return nil, ErrUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}

	doc := bson.M{}
	err := db.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// UpdateResult reports the outcome of UpdateDocument.
type UpdateResult struct {
	Matched    int64  `json:"matched"`
	Modified   int64  `json:"modified"`
	UpsertedID string `json:"upserted_id,omitempty"`
}

// UpdateDocument merges fields into the first document matching filter,
// always refreshing updated_at. With upsert set, a missing document is
// inserted instead. Not driven by any HTTP route today.
func UpdateDocument(ctx context.Context, collection string, filter bson.M, fields bson.M, upsert bool) (*UpdateResult, error) {
	if db == nil {
		return nil, ErrUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}

	update := bson.M{"$set": MergeUpdate(fields, time.Now())}

	res, err := db.Collection(collection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(upsert))
	if err != nil {
		return nil, err
	}

	out := &UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = oid.Hex()
	}
	return out, nil
}

// MergeUpdate builds the $set payload for a partial update: the caller's
// fields plus a refreshed updated_at.
func MergeUpdate(fields bson.M, now time.Time) bson.M {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set["updated_at"] = now.UTC()
	return set
}
