package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/almanac/internal/db"
	"github.com/alexanderramin/almanac/internal/domain"
	"github.com/alexanderramin/almanac/internal/repository"
	"github.com/alexanderramin/almanac/internal/wisdom"
	"github.com/google/uuid"
)

type profileService struct {
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewProfileService(profiles repository.ProfileRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		profiles: profiles,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) Create(ctx context.Context, p *domain.Profile) (err error) {
	defer s.observe(ctx, "profile-create", p, time.Now().UTC(), &err)

	if err = validateProfile(p); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteProfileRepo(tx).Create(ctx, p)
	})
}

// Save creates the profile or, when its name is already taken, replaces the
// stored context while keeping the original ID and creation time.
func (s *profileService) Save(ctx context.Context, p *domain.Profile) (err error) {
	defer s.observe(ctx, "profile-save", p, time.Now().UTC(), &err)

	if err = validateProfile(p); err != nil {
		return err
	}
	now := time.Now().UTC()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProfiles := repository.NewSQLiteProfileRepo(tx)

		existing, err := txProfiles.GetByName(ctx, p.Name)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			if p.ID == "" {
				p.ID = uuid.New().String()
			}
			p.CreatedAt = now
			p.UpdatedAt = now
			return txProfiles.Create(ctx, p)
		case err != nil:
			return err
		}

		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
		p.UpdatedAt = now
		return txProfiles.Update(ctx, p)
	})
}

func (s *profileService) Get(ctx context.Context, ref string) (p *domain.Profile, err error) {
	err = s.uow.WithinReadTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		p, err = resolveProfile(ctx, repository.NewSQLiteProfileRepo(tx), ref)
		return err
	})
	return p, err
}

func (s *profileService) List(ctx context.Context) (profiles []*domain.Profile, err error) {
	err = s.uow.WithinReadTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		profiles, err = repository.NewSQLiteProfileRepo(tx).List(ctx)
		return err
	})
	return profiles, err
}

func (s *profileService) Delete(ctx context.Context, ref string) (err error) {
	startedAt := time.Now().UTC()
	var p *domain.Profile
	defer func() { s.observe(ctx, "profile-delete", p, startedAt, &err) }()

	p, err = resolveProfile(ctx, s.profiles, ref)
	if err != nil {
		return err
	}
	return s.profiles.Delete(ctx, p.ID)
}

func (s *profileService) observe(ctx context.Context, name string, p *domain.Profile, startedAt time.Time, err *error) {
	fields := map[string]any{}
	if p != nil {
		fields["profile_id"] = p.ID
		fields["profile_name"] = p.Name
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
	})
}

func validateProfile(p *domain.Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return err
	}
	return wisdom.ValidateContext(p.Context)
}

// resolveProfile looks a profile up by ID, then by name.
func resolveProfile(ctx context.Context, profiles repository.ProfileRepo, ref string) (*domain.Profile, error) {
	p, err := profiles.GetByID(ctx, ref)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return profiles.GetByName(ctx, ref)
}
