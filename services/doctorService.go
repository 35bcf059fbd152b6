package services

import (
	"CareDesk/models"
	"CareDesk/repositories"
	"context"
	"time"
)

type DoctorService struct {
	repository *repositories.DoctorRepository
}

func NewDoctorService(repository *repositories.DoctorRepository) *DoctorService {
	return &DoctorService{repository: repository}
}

func (s *DoctorService) Create(ctx context.Context, doctor *models.Doctor) error {
	return s.repository.Create(ctx, doctor)
}

func (s *DoctorService) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *DoctorService) GetAll(ctx context.Context) ([]models.Doctor, error) {
	return s.repository.GetAll(ctx)
}

func (s *DoctorService) Update(ctx context.Context, doctor *models.Doctor) error {
	return s.repository.Update(ctx, doctor)
}

// Delete removes the doctor without touching patients that reference the ID.
// Stale references render as "Unknown Doctor" in the directory views.
func (s *DoctorService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}

// DoctorAvailableOn reports whether the doctor works on the weekday of the
// given date (YYYY-MM-DD). An empty date means today.
func DoctorAvailableOn(doctor *models.Doctor, date string) (bool, error) {
	day := time.Now()
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return false, NewValidationError("date must be in YYYY-MM-DD format")
		}
		day = parsed
	}
	return doctor.Availability.Contains(day.Weekday().String()), nil
}
