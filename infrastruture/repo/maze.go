package repo

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/ascii-maze-api/maze"
	"github.com/beka-birhanu/ascii-maze-api/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo handles the persistence of parsed maze documents.
type MazeRepo struct {
	collection *mongo.Collection
}

// mazeRecord is the BSON shape of a stored maze.
type mazeRecord struct {
	ID        uuid.UUID         `bson:"_id"`
	Title     string            `bson:"title"`
	Document  maze.WallDocument `bson:"document"`
	UpdatedAt time.Time         `bson:"updatedAt"`
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates the document stored under the title.
// Titles are unique; converting the same drawing again replaces the
// stored document and keeps the original ID.
func (r *MazeRepo) Save(id uuid.UUID, title string, doc *maze.WallDocument) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"title": title}
	update := bson.M{
		"$set": bson.M{
			"title":     title,
			"document":  doc,
			"updatedAt": time.Now(),
		},
		"$setOnInsert": bson.M{"_id": id},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByTitle retrieves the document stored under the title.
func (r *MazeRepo) ByTitle(title string) (*maze.WallDocument, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"title": title}
	var record mazeRecord
	if err := r.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, i.ErrMazeNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &record.Document, nil
}

// Delete removes the document stored under the title.
func (r *MazeRepo) Delete(title string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"title": title})
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	if result.DeletedCount == 0 {
		return i.ErrMazeNotFound
	}
	return nil
}
