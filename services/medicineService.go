package services

import (
	"CareDesk/models"
	"CareDesk/repositories"
	"context"
)

type MedicineService struct {
	repository *repositories.MedicineRepository
}

func NewMedicineService(repository *repositories.MedicineRepository) *MedicineService {
	return &MedicineService{repository: repository}
}

func (s *MedicineService) Create(ctx context.Context, medicine *models.Medicine) error {
	return s.repository.Create(ctx, medicine)
}

func (s *MedicineService) GetByID(ctx context.Context, id uint) (*models.Medicine, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *MedicineService) GetAll(ctx context.Context) ([]models.Medicine, error) {
	return s.repository.GetAll(ctx)
}

func (s *MedicineService) GetByPatient(ctx context.Context, patientID string) ([]models.Medicine, error) {
	return s.repository.GetByPatient(ctx, patientID)
}

func (s *MedicineService) Update(ctx context.Context, medicine *models.Medicine) error {
	return s.repository.Update(ctx, medicine)
}

func (s *MedicineService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
