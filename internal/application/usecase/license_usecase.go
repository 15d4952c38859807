package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

// LicenseService is the only place that knows how an entitlement is evaluated.
type LicenseService struct {
	repo repository.LicenseRepository
	now  func() time.Time
}

func NewLicenseService(repo repository.LicenseRepository) *LicenseService {
	return &LicenseService{repo: repo, now: time.Now}
}

// IsActive reports whether the owner holds a valid license. A missing license is
// (false, nil); errors are infrastructure failures only.
func (s *LicenseService) IsActive(ctx context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("license: ownerID is required")
	}
	l, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return false, fmt.Errorf("load license: %w", err)
	}
	return l.ValidAt(s.now()), nil
}

func (s *LicenseService) Verify(ctx context.Context, ownerID string) (*dto.LicenseResponse, error) {
	l, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load license: %w", err)
	}
	out := &dto.LicenseResponse{OK: true, Active: l.ValidAt(s.now())}
	if l != nil {
		out.ExpiresAt = l.ExpiresAt
	}
	return out, nil
}
