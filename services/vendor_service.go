package services

import (
	"context"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/repository"
)

// VendorService holds the admin-side vendor moderation.
type VendorService struct {
	Repo *repository.VendorRepository
}

func NewVendorService(repo *repository.VendorRepository) *VendorService {
	return &VendorService{Repo: repo}
}

type VendorFlagsInput struct {
	IsVerified *bool `json:"is_verified"`
	IsActive   *bool `json:"is_active"`
}

// SetFlags verifies/unverifies or (de)activates a vendor. Vendors are never deleted.
func (s *VendorService) SetFlags(ctx context.Context, vendorID uint, in VendorFlagsInput) (*VendorProfile, error) {
	updates := map[string]any{}
	if in.IsVerified != nil {
		updates["is_verified"] = *in.IsVerified
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if len(updates) == 0 {
		return nil, Validation("is_verified or is_active is required")
	}

	if _, err := s.Repo.FindByID(ctx, vendorID); err != nil {
		return nil, notFoundOr(err, "Vendor not found")
	}
	if err := s.Repo.Update(ctx, vendorID, updates); err != nil {
		return nil, err
	}
	v, err := s.Repo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	profile := NewVendorProfile(v)
	return &profile, nil
}
