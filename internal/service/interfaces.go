package service

import (
	"context"

	"github.com/alexanderramin/almanac/internal/contract"
	"github.com/alexanderramin/almanac/internal/domain"
)

type WisdomService interface {
	Recommend(ctx context.Context, req contract.WisdomRequest) (*contract.WisdomEngineResponse, error)
	// RecommendForProfile replaces req.Context with the saved profile's context.
	RecommendForProfile(ctx context.Context, profileRef string, req contract.WisdomRequest) (*contract.WisdomEngineResponse, error)
}

// ProfileService manages saved contexts. A ref is either a profile ID or a name.
type ProfileService interface {
	Create(ctx context.Context, p *domain.Profile) error
	Save(ctx context.Context, p *domain.Profile) error
	Get(ctx context.Context, ref string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	Delete(ctx context.Context, ref string) error
}
