package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/almanac/internal/contract"
	"github.com/alexanderramin/almanac/internal/knowledge"
	"github.com/alexanderramin/almanac/internal/repository"
	"github.com/alexanderramin/almanac/internal/wisdom"
)

type wisdomService struct {
	kb       *knowledge.KnowledgeBase
	opts     wisdom.Options
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

// NewWisdomService wires the engine to a loaded knowledge base. profiles may
// be nil when saved profiles are not available.
func NewWisdomService(
	kb *knowledge.KnowledgeBase,
	opts wisdom.Options,
	profiles repository.ProfileRepo,
	observers ...UseCaseObserver,
) WisdomService {
	return &wisdomService{
		kb:       kb,
		opts:     opts,
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *wisdomService) Recommend(ctx context.Context, req contract.WisdomRequest) (resp *contract.WisdomEngineResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"context": req.Context.String(),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "recommend",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if s.kb == nil {
		return nil, errors.New("recommend: no knowledge base loaded")
	}

	opts := s.opts
	if req.MaxSupporting > 0 {
		opts.MaxSupporting = req.MaxSupporting
	}
	opts.Explain = req.Explain

	resp, err = wisdom.Recommend(req.Context, s.kb, opts)
	if err != nil {
		return nil, err
	}

	fields["primary_id"] = resp.PrimaryWisdom.Principle.ID
	fields["primary_score"] = resp.PrimaryWisdom.RelevanceScore
	fields["supporting"] = len(resp.SupportingWisdom)
	fields["fallback"] = resp.Fallback
	return resp, nil
}

func (s *wisdomService) RecommendForProfile(ctx context.Context, profileRef string, req contract.WisdomRequest) (*contract.WisdomEngineResponse, error) {
	if s.profiles == nil {
		return nil, errors.New("recommend: profile store is not configured")
	}
	p, err := resolveProfile(ctx, s.profiles, profileRef)
	if err != nil {
		return nil, fmt.Errorf("loading profile %q: %w", profileRef, err)
	}
	req.Context = p.Context
	return s.Recommend(ctx, req)
}
