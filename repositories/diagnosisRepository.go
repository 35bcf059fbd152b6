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
	DiagnosisCacheExpiry = 7 * 24 * time.Hour
)

type DiagnosisRepository struct {
	cache *cache.Cache
}

func NewDiagnosisRepository(cache *cache.Cache) *DiagnosisRepository {
	return &DiagnosisRepository{cache: cache}
}

func (r *DiagnosisRepository) Create(ctx context.Context, diagnosis *models.Diagnosis) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(diagnosis).Error; err != nil {
			return fmt.Errorf("failed to create diagnosis: %w", err)
		}
		return r.cache.DeleteAll(ctx, "diagnoses_cache*")
	})
}

func (r *DiagnosisRepository) GetByID(ctx context.Context, id uint) (*models.Diagnosis, error) {
	var diagnosis models.Diagnosis
	err := database.DB.First(&diagnosis, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get diagnosis: %w", err)
	}
	return &diagnosis, nil
}

func (r *DiagnosisRepository) GetAll(ctx context.Context) ([]models.Diagnosis, error) {
	return r.list(ctx, "diagnoses_cache", func(db *gorm.DB) *gorm.DB { return db })
}

func (r *DiagnosisRepository) GetByPatient(ctx context.Context, patientID string) ([]models.Diagnosis, error) {
	cacheKey := fmt.Sprintf("diagnoses_cache:%s", patientID)
	return r.list(ctx, cacheKey, func(db *gorm.DB) *gorm.DB {
		return db.Where("patient_id = ?", patientID)
	})
}

func (r *DiagnosisRepository) list(ctx context.Context, cacheKey string, scope func(*gorm.DB) *gorm.DB) ([]models.Diagnosis, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedDiagnoses, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedDiagnoses != "" {
		var diagnoses []models.Diagnosis
		if err := json.Unmarshal([]byte(cachedDiagnoses), &diagnoses); err == nil {
			return diagnoses, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get diagnoses from cache: %v", err)
	}

	var diagnoses []models.Diagnosis
	if err := scope(database.DB).Order("created_at DESC").Find(&diagnoses).Error; err != nil {
		return nil, fmt.Errorf("failed to get diagnoses: %w", err)
	}

	diagnosesJSON, err := json.Marshal(diagnoses)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal diagnoses: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, diagnosesJSON, DiagnosisCacheExpiry); err != nil {
		log.Printf("Failed to set diagnoses in cache: %v", err)
	}
	return diagnoses, nil
}

func (r *DiagnosisRepository) Update(ctx context.Context, diagnosis *models.Diagnosis) error {
	err := database.DB.Model(&models.Diagnosis{}).
		Where("id = ?", diagnosis.ID).
		Updates(map[string]interface{}{
			"patient_id": diagnosis.PatientID,
			"doctor_id":  diagnosis.DoctorID,
			"condition":  diagnosis.Condition,
			"notes":      diagnosis.Notes,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update diagnosis: %w", err)
	}
	return r.cache.DeleteAll(ctx, "diagnoses_cache*")
}

func (r *DiagnosisRepository) Delete(ctx context.Context, id uint) error {
	err := database.DB.Delete(&models.Diagnosis{}, "id = ?", id).Error
	if err != nil {
		return fmt.Errorf("failed to delete diagnosis: %w", err)
	}
	return r.cache.DeleteAll(ctx, "diagnoses_cache*")
}
