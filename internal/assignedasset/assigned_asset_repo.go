package assignedasset

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=assigned_asset_repo.go -destination=mock/assigned_asset_repo_mock.go -package=mock
type Repository interface {
	Insert(ctx context.Context, a *AssignedAsset) (primitive.ObjectID, error)
	FindByEmployee(ctx context.Context, email string) ([]AssignedAsset, error)
	CountByEmployee(ctx context.Context, email string) (int64, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("assignedAssets")}
}

func (r *repository) Insert(ctx context.Context, a *AssignedAsset) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *repository) FindByEmployee(ctx context.Context, email string) ([]AssignedAsset, error) {
	cursor, err := r.col.Find(ctx, bson.M{"employeeEmail": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assigned []AssignedAsset
	if err := cursor.All(ctx, &assigned); err != nil {
		return nil, err
	}
	return assigned, nil
}

func (r *repository) CountByEmployee(ctx context.Context, email string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"employeeEmail": email})
}
