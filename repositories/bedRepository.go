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
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	BedCacheExpiry = 7 * 24 * time.Hour
)

type BedRepository struct {
	cache *cache.Cache
}

func NewBedRepository(cache *cache.Cache) *BedRepository {
	return &BedRepository{cache: cache}
}

// Create provisions a bed. Normal operation only toggles occupancy; this
// exists for admin provisioning beyond the seed data.
func (r *BedRepository) Create(ctx context.Context, bed *models.Bed) error {
	lockKey := fmt.Sprintf("bed_lock:%s_%s", bed.Ward, bed.BedNumber)
	lockValue := uuid.New().String()
	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	var existingBed models.Bed
	if err := database.DB.Where("ward = ? AND bed_number = ?", bed.Ward, bed.BedNumber).First(&existingBed).Error; err == nil {
		return errors.New("bed with the same ward and number already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for existing bed: %w", err)
	}

	if bed.ID == "" {
		bed.ID = fmt.Sprintf("BED-%s", uuid.New().String()[:8])
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bed).Error; err != nil {
			return fmt.Errorf("failed to create bed: %w", err)
		}
		if err := r.cache.Delete(ctx, r.getBedCacheKey(bed.ID)); err != nil {
			return fmt.Errorf("failed to delete bed cache: %w", err)
		}
		return r.cache.DeleteAll(ctx, "beds_cache")
	})
}

func (r *BedRepository) GetByID(ctx context.Context, id string) (*models.Bed, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getBedCacheKey(id)
	cachedBed, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedBed != "" {
		var bed models.Bed
		if err := json.Unmarshal([]byte(cachedBed), &bed); err == nil {
			return &bed, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get bed from cache: %v", err)
	}

	var bed models.Bed
	err = database.DB.First(&bed, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bed: %w", err)
	}

	bedJSON, err := json.Marshal(bed)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bed: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, bedJSON, BedCacheExpiry); err != nil {
		log.Printf("Failed to set bed in cache: %v", err)
	}

	return &bed, nil
}

func (r *BedRepository) GetAll(ctx context.Context) ([]models.Bed, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "beds_cache"
	cachedBeds, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedBeds != "" {
		var beds []models.Bed
		if err := json.Unmarshal([]byte(cachedBeds), &beds); err == nil {
			return beds, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get beds from cache: %v", err)
	}

	var beds []models.Bed
	err = database.DB.Order("ward ASC, bed_number ASC").Find(&beds).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all beds: %w", err)
	}

	bedsJSON, err := json.Marshal(beds)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal beds: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, bedsJSON, BedCacheExpiry); err != nil {
		log.Printf("Failed to set beds in cache: %v", err)
	}

	return beds, nil
}

func (r *BedRepository) Update(ctx context.Context, bed *models.Bed) error {
	lockKey := fmt.Sprintf("bed_lock:%s", bed.ID)
	lockValue := uuid.New().String()
	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	err = database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"ward", "bed_number", "is_occupied"}),
	}).Save(bed).Error
	if err != nil {
		return fmt.Errorf("failed to update bed: %w", err)
	}

	if err := r.cache.Delete(ctx, r.getBedCacheKey(bed.ID)); err != nil {
		return fmt.Errorf("failed to delete bed cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "beds_cache")
}

func (r *BedRepository) Delete(ctx context.Context, id string) error {
	lockKey := fmt.Sprintf("bed_lock:%s", id)
	lockValue := uuid.New().String()
	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	err = database.DB.Delete(&models.Bed{}, "id = ?", id).Error
	if err != nil {
		return fmt.Errorf("failed to delete bed: %w", err)
	}
	if err := r.cache.Delete(ctx, r.getBedCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete bed cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "beds_cache")
}

func (r *BedRepository) getBedCacheKey(bedID string) string {
	return fmt.Sprintf("bed_cache:%s", bedID)
}
