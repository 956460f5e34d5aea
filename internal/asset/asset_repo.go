package asset

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -source=asset_repo.go -destination=mock/asset_repo_mock.go -package=mock
type Repository interface {
	Insert(ctx context.Context, a *Asset) (primitive.ObjectID, error)
	Find(ctx context.Context, q ListQuery) ([]Asset, error)
	Count(ctx context.Context, q ListQuery) (int64, error)
	FindByHR(ctx context.Context, hrEmail string) ([]Asset, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Asset, error)
	Update(ctx context.Context, id primitive.ObjectID, cmd UpdateAssetCommand) (UpdateSummary, error)
	Delete(ctx context.Context, id primitive.ObjectID) (DeleteSummary, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("assets")}
}

func listFilter(q ListQuery) bson.M {
	filter := bson.M{}
	if q.AvailableOnly {
		filter["availableQuantity"] = bson.M{"$gt": 0}
	}
	if q.Search != "" {
		// Quote the user input so it is a substring match, not a pattern.
		filter["productName"] = bson.M{
			"$regex":   regexp.QuoteMeta(q.Search),
			"$options": "i",
		}
	}
	return filter
}

func (r *repository) Insert(ctx context.Context, a *Asset) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *repository) Find(ctx context.Context, q ListQuery) ([]Asset, error) {
	skip := int64((q.Page - 1) * q.Limit)
	limit := int64(q.Limit)
	opts := options.Find().SetSkip(skip).SetLimit(limit)

	cursor, err := r.col.Find(ctx, listFilter(q), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assets []Asset
	if err := cursor.All(ctx, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *repository) Count(ctx context.Context, q ListQuery) (int64, error) {
	return r.col.CountDocuments(ctx, listFilter(q))
}

func (r *repository) FindByHR(ctx context.Context, hrEmail string) ([]Asset, error) {
	cursor, err := r.col.Find(ctx, bson.M{"hrEmail": hrEmail})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assets []Asset
	if err := cursor.All(ctx, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *repository) FindByID(ctx context.Context, id primitive.ObjectID) (*Asset, error) {
	var a Asset
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Update(ctx context.Context, id primitive.ObjectID, cmd UpdateAssetCommand) (UpdateSummary, error) {
	set := bson.M{}
	if cmd.Set.ProductName != nil {
		set["productName"] = *cmd.Set.ProductName
	}
	if cmd.Set.ProductImage != nil {
		set["productImage"] = *cmd.Set.ProductImage
	}
	if cmd.Set.ProductType != nil {
		set["productType"] = *cmd.Set.ProductType
	}
	if cmd.Set.ProductQuantity != nil {
		set["productQuantity"] = *cmd.Set.ProductQuantity
	}
	if cmd.Set.AvailableQuantity != nil {
		set["availableQuantity"] = *cmd.Set.AvailableQuantity
	}
	if cmd.Set.CompanyName != nil {
		set["companyName"] = *cmd.Set.CompanyName
	}

	inc := bson.M{}
	if cmd.Inc.ProductQuantity != nil {
		inc["productQuantity"] = *cmd.Inc.ProductQuantity
	}
	if cmd.Inc.AvailableQuantity != nil {
		inc["availableQuantity"] = *cmd.Inc.AvailableQuantity
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(inc) > 0 {
		update["$inc"] = inc
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return UpdateSummary{}, err
	}
	return UpdateSummary{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *repository) Delete(ctx context.Context, id primitive.ObjectID) (DeleteSummary, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return DeleteSummary{}, err
	}
	return DeleteSummary{DeletedCount: res.DeletedCount}, nil
}
