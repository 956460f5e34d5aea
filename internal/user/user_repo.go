package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Insert(ctx context.Context, u *User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByEmails(ctx context.Context, emails []string) ([]User, error)
	FindAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, email string, cmd UpdateUserCommand) (UpdateSummary, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("users")}
}

func (r *repository) Insert(ctx context.Context, u *User) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindByEmail returns (nil, nil) when no document matches, mirroring
// the store's findOne-null behavior.
func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmails(ctx context.Context, emails []string) ([]User, error) {
	cursor, err := r.col.Find(ctx, bson.M{"email": bson.M{"$in": emails}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Update translates the validated command into store operators. Client
// input never reaches the operator layer directly.
func (r *repository) Update(ctx context.Context, email string, cmd UpdateUserCommand) (UpdateSummary, error) {
	set := bson.M{}
	if cmd.Set.Name != nil {
		set["name"] = *cmd.Set.Name
	}
	if cmd.Set.Photo != nil {
		set["photo"] = *cmd.Set.Photo
	}
	if cmd.Set.CompanyName != nil {
		set["companyName"] = *cmd.Set.CompanyName
	}
	if cmd.Set.CompanyLogo != nil {
		set["companyLogo"] = *cmd.Set.CompanyLogo
	}
	if cmd.Set.Subscription != nil {
		set["subscription"] = *cmd.Set.Subscription
	}
	if cmd.Set.PackageLimit != nil {
		set["packageLimit"] = *cmd.Set.PackageLimit
	}

	inc := bson.M{}
	if cmd.Inc.CurrentEmployees != nil {
		inc["currentEmployees"] = *cmd.Inc.CurrentEmployees
	}
	if cmd.Inc.PackageLimit != nil {
		inc["packageLimit"] = *cmd.Inc.PackageLimit
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(inc) > 0 {
		update["$inc"] = inc
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return UpdateSummary{}, err
	}
	return UpdateSummary{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
