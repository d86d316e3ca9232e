package galleryRepo

import (
	"context"
	"fmt"
	"time"

	"flawless/database"
	"flawless/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GalleryRepository defines data access for gallery items.
type GalleryRepository interface {
	// GetActive retrieves active items ordered by display order, then newest.
	GetActive() ([]models.GalleryItem, error)
	// Create inserts a new gallery item.
	Create(item *models.GalleryItem) error
	// Delete removes a gallery item by its ID.
	Delete(id string) error
}

// MongoGalleryRepo implements GalleryRepository using MongoDB.
type MongoGalleryRepo struct {
	coll *mongo.Collection
}

// NewMongoGalleryRepo creates a new instance of GalleryRepository using MongoDB.
func NewMongoGalleryRepo() GalleryRepository {
	return &MongoGalleryRepo{coll: database.Collection("gallery")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetActive retrieves active items ordered by display order, then newest.
func (r *MongoGalleryRepo) GetActive() ([]models.GalleryItem, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}, {Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gallery items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.GalleryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode gallery items: %w", err)
	}
	return items, nil
}

// Create inserts a new gallery item document.
func (r *MongoGalleryRepo) Create(item *models.GalleryItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	item.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create gallery item: %w", err)
	}
	return nil
}

// Delete removes a gallery item document by its ID.
func (r *MongoGalleryRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete gallery item with id %s: %w", id, err)
	}
	return nil
}
