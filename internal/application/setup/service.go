// Package setup is the single generic CRUD service behind every setup entity.
// Entity-specific rules live in Hooks, not in copies of the service.
package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

// Hooks are optional per-entity rules run around persistence.
type Hooks[T any] struct {
	// BeforeSave runs after validation on create and update; referential checks go here.
	BeforeSave func(ctx context.Context, ownerID string, rec *T) error
	// BeforeDelete may veto a delete, typically with domain.ErrConflict.
	BeforeDelete func(ctx context.Context, ownerID, id string) error
}

type Service[T any, P entity.Record[T]] struct {
	name  string
	repo  repository.CRUDRepository[T]
	hooks Hooks[T]
	now   func() time.Time
}

// NewService builds the service; name is used in not-found messages.
func NewService[T any, P entity.Record[T]](name string, repo repository.CRUDRepository[T], hooks Hooks[T]) *Service[T, P] {
	return &Service[T, P]{name: name, repo: repo, hooks: hooks, now: time.Now}
}

func (s *Service[T, P]) Name() string { return s.name }

func (s *Service[T, P]) List(ctx context.Context, ownerID string) ([]*T, error) {
	out, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.name, err)
	}
	return out, nil
}

func (s *Service[T, P]) Get(ctx context.Context, ownerID, id string) (*T, error) {
	rec, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.name, err)
	}
	if rec == nil {
		return nil, domain.Missing(s.name, id)
	}
	return rec, nil
}

// Create assigns a new id and timestamps; client-sent ids are ignored.
func (s *Service[T, P]) Create(ctx context.Context, ownerID string, rec T) (*T, error) {
	now := s.now()
	P(&rec).Stamp(uuid.New().String(), ownerID, now, now)
	if err := s.check(ctx, ownerID, &rec); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &rec); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.name, err)
	}
	return &rec, nil
}

// Update replaces the stored row, keeping its id, owner and creation time.
func (s *Service[T, P]) Update(ctx context.Context, ownerID, id string, rec T) (*T, error) {
	existing, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	P(&rec).Stamp(id, ownerID, P(existing).Created(), s.now())
	if err := s.check(ctx, ownerID, &rec); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, &rec); err != nil {
		return nil, fmt.Errorf("update %s: %w", s.name, err)
	}
	return &rec, nil
}

// Mutate loads a row, applies fn and saves it through Update.
func (s *Service[T, P]) Mutate(ctx context.Context, ownerID, id string, fn func(rec *T)) (*T, error) {
	existing, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	next := *existing
	fn(&next)
	return s.Update(ctx, ownerID, id, next)
}

func (s *Service[T, P]) Delete(ctx context.Context, ownerID, id string) error {
	if s.hooks.BeforeDelete != nil {
		if err := s.hooks.BeforeDelete(ctx, ownerID, id); err != nil {
			return err
		}
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete %s: %w", s.name, err)
	}
	return nil
}

func (s *Service[T, P]) check(ctx context.Context, ownerID string, rec *T) error {
	if err := P(rec).Validate(); err != nil {
		return err
	}
	if s.hooks.BeforeSave != nil {
		return s.hooks.BeforeSave(ctx, ownerID, rec)
	}
	return nil
}
