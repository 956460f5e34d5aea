package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	PackagesCacheKey     = "catalog:packages"
	TestimonialsCacheKey = "catalog:testimonials"

	catalogCacheTTL = 30 * time.Minute
)

type Service interface {
	GetPackages(ctx context.Context) ([]Package, error)
	GetTestimonials(ctx context.Context) ([]Testimonial, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService accepts a nil rdb; caching is skipped entirely in that case.
func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("catalog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) GetPackages(ctx context.Context) ([]Package, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, PackagesCacheKey).Result()
		if err == nil {
			var packages []Package
			if err := json.Unmarshal([]byte(cached), &packages); err == nil {
				return packages, nil
			}
		}
	}

	v, err, _ := s.sf.Do(PackagesCacheKey, func() (interface{}, error) {
		packages, err := s.repo.FindPackages(ctx)
		if err != nil {
			return nil, err
		}
		if packages == nil {
			packages = []Package{}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(packages); err == nil {
				if err := s.rdb.Set(ctx, PackagesCacheKey, jsonData, catalogCacheTTL).Err(); err != nil {
					s.logger.Warn("failed to cache packages", zap.Error(err))
				}
			}
		}

		return packages, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]Package), nil
}

func (s *service) GetTestimonials(ctx context.Context) ([]Testimonial, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, TestimonialsCacheKey).Result()
		if err == nil {
			var testimonials []Testimonial
			if err := json.Unmarshal([]byte(cached), &testimonials); err == nil {
				return testimonials, nil
			}
		}
	}

	v, err, _ := s.sf.Do(TestimonialsCacheKey, func() (interface{}, error) {
		testimonials, err := s.repo.FindTestimonials(ctx)
		if err != nil {
			return nil, err
		}
		if testimonials == nil {
			testimonials = []Testimonial{}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(testimonials); err == nil {
				if err := s.rdb.Set(ctx, TestimonialsCacheKey, jsonData, catalogCacheTTL).Err(); err != nil {
					s.logger.Warn("failed to cache testimonials", zap.Error(err))
				}
			}
		}

		return testimonials, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]Testimonial), nil
}
