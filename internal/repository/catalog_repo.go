package repository

import (
	"context"
	"pathfinder/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogRepo stores uploaded weights catalogs
type CatalogRepo interface {
	Create(ctx context.Context, upload *model.CatalogUpload) error
	GetByID(ctx context.Context, id string) (*model.CatalogUpload, error)
	List(ctx context.Context) ([]model.CatalogUpload, error)
}

type catalogRepo struct {
	catalogs *mongo.Collection
}

func NewCatalogRepo(db *mongo.Database) CatalogRepo {
	return &catalogRepo{
		catalogs: db.Collection("catalogs"),
	}
}

func (r *catalogRepo) Create(ctx context.Context, upload *model.CatalogUpload) error {
	_, err := r.catalogs.InsertOne(ctx, upload)
	return err
}

func (r *catalogRepo) GetByID(ctx context.Context, id string) (*model.CatalogUpload, error) {
	var upload model.CatalogUpload
	err := r.catalogs.FindOne(ctx, bson.M{"_id": id}).Decode(&upload)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

// List returns catalog metadata, newest first, without the CSV bodies.
func (r *catalogRepo) List(ctx context.Context) ([]model.CatalogUpload, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"csv": 0})
	cursor, err := r.catalogs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var uploads []model.CatalogUpload
	if err := cursor.All(ctx, &uploads); err != nil {
		return nil, err
	}
	return uploads, nil
}
