package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=catalog_repo.go -destination=mock/catalog_repo_mock.go -package=mock
type Repository interface {
	FindPackages(ctx context.Context) ([]Package, error)
	FindTestimonials(ctx context.Context) ([]Testimonial, error)
}

type repository struct {
	packages     *mongo.Collection
	testimonials *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{
		packages:     db.Collection("packages"),
		testimonials: db.Collection("testimonials"),
	}
}

func (r *repository) FindPackages(ctx context.Context) ([]Package, error) {
	cursor, err := r.packages.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var packages []Package
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *repository) FindTestimonials(ctx context.Context) ([]Testimonial, error) {
	cursor, err := r.testimonials.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var testimonials []Testimonial
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}
