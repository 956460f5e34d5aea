package affiliation

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -source=affiliation_repo.go -destination=mock/affiliation_repo_mock.go -package=mock
type Repository interface {
	Insert(ctx context.Context, a *Affiliation) (primitive.ObjectID, error)
	FindPair(ctx context.Context, employeeEmail, hrEmail string) (*Affiliation, error)
	FindByEmployee(ctx context.Context, email string) ([]Affiliation, error)
	FindByHR(ctx context.Context, hrEmail string) ([]Affiliation, error)
	DeletePair(ctx context.Context, employeeEmail, hrEmail string) (DeleteSummary, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("affiliations")}
}

func (r *repository) Insert(ctx context.Context, a *Affiliation) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *repository) FindPair(ctx context.Context, employeeEmail, hrEmail string) (*Affiliation, error) {
	var a Affiliation
	err := r.col.FindOne(ctx, bson.M{
		"employeeEmail": employeeEmail,
		"hrEmail":       hrEmail,
	}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByEmployee(ctx context.Context, email string) ([]Affiliation, error) {
	cursor, err := r.col.Find(ctx, bson.M{"employeeEmail": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var affiliations []Affiliation
	if err := cursor.All(ctx, &affiliations); err != nil {
		return nil, err
	}
	return affiliations, nil
}

func (r *repository) FindByHR(ctx context.Context, hrEmail string) ([]Affiliation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "affiliationDate", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"hrEmail": hrEmail}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var affiliations []Affiliation
	if err := cursor.All(ctx, &affiliations); err != nil {
		return nil, err
	}
	return affiliations, nil
}

func (r *repository) DeletePair(ctx context.Context, employeeEmail, hrEmail string) (DeleteSummary, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{
		"employeeEmail": employeeEmail,
		"hrEmail":       hrEmail,
	})
	if err != nil {
		return DeleteSummary{}, err
	}
	return DeleteSummary{DeletedCount: res.DeletedCount}, nil
}
