package payment

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=payment_repo.go -destination=mock/payment_repo_mock.go -package=mock
type Repository interface {
	Insert(ctx context.Context, p *Payment) (primitive.ObjectID, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*Payment, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("payments")}
}

func (r *repository) Insert(ctx context.Context, p *Payment) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *repository) FindByTransactionID(ctx context.Context, transactionID string) (*Payment, error) {
	var p Payment
	err := r.col.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
