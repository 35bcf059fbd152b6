package services

import (
	"CareDesk/models"
	"CareDesk/repositories"
	"context"
)

type BedService struct {
	repository *repositories.BedRepository
}

func NewBedService(repository *repositories.BedRepository) *BedService {
	return &BedService{repository: repository}
}

func (s *BedService) Create(ctx context.Context, bed *models.Bed) error {
	return s.repository.Create(ctx, bed)
}

func (s *BedService) GetByID(ctx context.Context, id string) (*models.Bed, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *BedService) GetAll(ctx context.Context) ([]models.Bed, error) {
	return s.repository.GetAll(ctx)
}

// Update edits ward and bed number. Occupancy changes go through the
// allocation flow, so the stored flag is carried over rather than taken
// from the request.
func (s *BedService) Update(ctx context.Context, bed *models.Bed) error {
	existing, err := s.repository.GetByID(ctx, bed.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return &NotFoundError{Kind: "bed", ID: bed.ID}
	}
	bed.IsOccupied = existing.IsOccupied
	return s.repository.Update(ctx, bed)
}

func (s *BedService) Delete(ctx context.Context, id string) error {
	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return &NotFoundError{Kind: "bed", ID: id}
	}
	if existing.IsOccupied {
		return NewValidationError("bed %s is occupied and cannot be removed", id)
	}
	return s.repository.Delete(ctx, id)
}
