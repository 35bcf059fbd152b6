package services

import (
	"CareDesk/models"
	"CareDesk/repositories"
	"context"
)

type DiagnosisService struct {
	repository *repositories.DiagnosisRepository
}

func NewDiagnosisService(repository *repositories.DiagnosisRepository) *DiagnosisService {
	return &DiagnosisService{repository: repository}
}

func (s *DiagnosisService) Create(ctx context.Context, diagnosis *models.Diagnosis) error {
	return s.repository.Create(ctx, diagnosis)
}

func (s *DiagnosisService) GetByID(ctx context.Context, id uint) (*models.Diagnosis, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *DiagnosisService) GetAll(ctx context.Context) ([]models.Diagnosis, error) {
	return s.repository.GetAll(ctx)
}

func (s *DiagnosisService) GetByPatient(ctx context.Context, patientID string) ([]models.Diagnosis, error) {
	return s.repository.GetByPatient(ctx, patientID)
}

func (s *DiagnosisService) Update(ctx context.Context, diagnosis *models.Diagnosis) error {
	return s.repository.Update(ctx, diagnosis)
}

func (s *DiagnosisService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
