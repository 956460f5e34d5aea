package analytics

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/udoykumar/assets-verse-server/internal/asset"
	"github.com/udoykumar/assets-verse-server/internal/request"
)

const topRequestsLimit = 5

// AssetSource exposes the slice of the asset store the aggregates need.
type AssetSource interface {
	FindByHR(ctx context.Context, hrEmail string) ([]asset.Asset, error)
}

// RequestSource exposes the slice of the request store the aggregates need.
type RequestSource interface {
	FindByHR(ctx context.Context, hrEmail string) ([]request.Request, error)
}

type Service interface {
	AssetDistribution(ctx context.Context, hrEmail string) (Distribution, error)
	TopRequests(ctx context.Context, hrEmail string) ([]RequestCount, error)
}

type service struct {
	assets   AssetSource
	requests RequestSource
	logger   *zap.Logger
}

func NewService(assets AssetSource, requests RequestSource, logger ...*zap.Logger) Service {
	l := zap.L().Named("analytics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.service")
	}
	return &service{assets: assets, requests: requests, logger: l}
}

func (s *service) AssetDistribution(ctx context.Context, hrEmail string) (Distribution, error) {
	assets, err := s.assets.FindByHR(ctx, hrEmail)
	if err != nil {
		return Distribution{}, err
	}

	var dist Distribution
	for _, a := range assets {
		switch a.ProductType {
		case asset.TypeReturnable:
			dist.Returnable++
		case asset.TypeNonReturnable:
			dist.NonReturnable++
		}
	}
	return dist, nil
}

func (s *service) TopRequests(ctx context.Context, hrEmail string) ([]RequestCount, error) {
	requests, err := s.requests.FindByHR(ctx, hrEmail)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(requests))
	order := make([]string, 0, len(requests))
	for _, req := range requests {
		if _, seen := counts[req.AssetName]; !seen {
			order = append(order, req.AssetName)
		}
		counts[req.AssetName]++
	}

	ranked := make([]RequestCount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, RequestCount{Name: name, Count: counts[name]})
	}

	// Stable sort keeps first-seen order for equal counts.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topRequestsLimit {
		ranked = ranked[:topRequestsLimit]
	}
	return ranked, nil
}
