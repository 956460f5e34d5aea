package request

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	Insert(ctx context.Context, req *Request) (primitive.ObjectID, error)
	FindByHR(ctx context.Context, hrEmail string) ([]Request, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status, processedAt time.Time) (UpdateSummary, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("requests")}
}

func (r *repository) Insert(ctx context.Context, req *Request) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, req)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *repository) FindByHR(ctx context.Context, hrEmail string) ([]Request, error) {
	cursor, err := r.col.Find(ctx, bson.M{"hrEmail": hrEmail})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []Request
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status, processedAt time.Time) (UpdateSummary, error) {
	update := bson.M{"$set": bson.M{
		"requestStatus": status,
		"processedDate": processedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return UpdateSummary{}, err
	}
	return UpdateSummary{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
