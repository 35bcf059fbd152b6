package repositories

import (
	"CareDesk/cache"
	"CareDesk/database"
	"CareDesk/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	MedicineCacheExpiry = 7 * 24 * time.Hour
)

type MedicineRepository struct {
	cache *cache.Cache
}

func NewMedicineRepository(cache *cache.Cache) *MedicineRepository {
	return &MedicineRepository{cache: cache}
}

func (r *MedicineRepository) Create(ctx context.Context, medicine *models.Medicine) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(medicine).Error; err != nil {
			return fmt.Errorf("failed to create medicine: %w", err)
		}
		return r.cache.DeleteAll(ctx, "medicines_cache*")
	})
}

func (r *MedicineRepository) GetByID(ctx context.Context, id uint) (*models.Medicine, error) {
	var medicine models.Medicine
	err := database.DB.First(&medicine, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get medicine: %w", err)
	}
	return &medicine, nil
}

func (r *MedicineRepository) GetAll(ctx context.Context) ([]models.Medicine, error) {
	return r.list(ctx, "medicines_cache", func(db *gorm.DB) *gorm.DB { return db })
}

// GetByPatient lists the prescriptions for a single patient.
func (r *MedicineRepository) GetByPatient(ctx context.Context, patientID string) ([]models.Medicine, error) {
	cacheKey := fmt.Sprintf("medicines_cache:%s", patientID)
	return r.list(ctx, cacheKey, func(db *gorm.DB) *gorm.DB {
		return db.Where("patient_id = ?", patientID)
	})
}

func (r *MedicineRepository) list(ctx context.Context, cacheKey string, scope func(*gorm.DB) *gorm.DB) ([]models.Medicine, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedMedicines, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedMedicines != "" {
		var medicines []models.Medicine
		if err := json.Unmarshal([]byte(cachedMedicines), &medicines); err == nil {
			return medicines, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get medicines from cache: %v", err)
	}

	var medicines []models.Medicine
	if err := scope(database.DB).Order("created_at DESC").Find(&medicines).Error; err != nil {
		return nil, fmt.Errorf("failed to get medicines: %w", err)
	}

	medicinesJSON, err := json.Marshal(medicines)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal medicines: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, medicinesJSON, MedicineCacheExpiry); err != nil {
		log.Printf("Failed to set medicines in cache: %v", err)
	}
	return medicines, nil
}

func (r *MedicineRepository) Update(ctx context.Context, medicine *models.Medicine) error {
	err := database.DB.Model(&models.Medicine{}).
		Where("id = ?", medicine.ID).
		Updates(map[string]interface{}{
			"patient_id":    medicine.PatientID,
			"prescribed_by": medicine.PrescribedBy,
			"name":          medicine.Name,
			"dosage":        medicine.Dosage,
			"frequency":     medicine.Frequency,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update medicine: %w", err)
	}
	return r.cache.DeleteAll(ctx, "medicines_cache*")
}

func (r *MedicineRepository) Delete(ctx context.Context, id uint) error {
	err := database.DB.Delete(&models.Medicine{}, "id = ?", id).Error
	if err != nil {
		return fmt.Errorf("failed to delete medicine: %w", err)
	}
	return r.cache.DeleteAll(ctx, "medicines_cache*")
}
