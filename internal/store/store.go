// Package store is the client-local persistent storage: the credential under
// a fixed key, plus cached copies of the identity and last-seen meal plan.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nutriplan/nutriplan-cli/internal/models"
)

// TokenKey is the fixed key the bearer credential is stored under
const TokenKey = "nutriplan_token"

type setting struct {
	Name  string `gorm:"primarykey;size:64"`
	Value string `gorm:"not null"`
}

type cachedProfile struct {
	UserID  string    `gorm:"primarykey;size:64"`
	Payload string    `gorm:"not null"`
	SavedAt time.Time `gorm:"not null"`
}

type cachedPlan struct {
	UserID  string    `gorm:"primarykey;size:64"`
	Payload string    `gorm:"not null"`
	SavedAt time.Time `gorm:"not null"`
}

// Store wraps the sqlite state database
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the state database at path.
// Use ":memory:" for tests.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	if err := db.AutoMigrate(&setting{}, &cachedProfile{}, &cachedPlan{}); err != nil {
		return nil, fmt.Errorf("failed to migrate state database: %w", err)
	}

	return &Store{db: db}, nil
}

// Token returns the stored credential, or "" when none is stored
func (s *Store) Token() string {
	var row setting
	if err := s.db.Where("name = ?", TokenKey).First(&row).Error; err != nil {
		return ""
	}
	return row.Value
}

// SetToken stores the credential under the fixed key
func (s *Store) SetToken(token string) error {
	row := setting{Name: TokenKey, Value: token}
	return s.db.Save(&row).Error
}

// ClearToken removes the stored credential
func (s *Store) ClearToken() error {
	return s.db.Where("name = ?", TokenKey).Delete(&setting{}).Error
}

// SaveProfile caches the resolved identity
func (s *Store) SaveProfile(profile models.UserProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	row := cachedProfile{UserID: profile.ID, Payload: string(payload), SavedAt: time.Now()}
	return s.db.Save(&row).Error
}

// CachedProfile returns the cached identity for a user, if any
func (s *Store) CachedProfile(userID string) (models.UserProfile, bool, error) {
	var row cachedProfile
	if err := s.db.Where("user_id = ?", userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UserProfile{}, false, nil
		}
		return models.UserProfile{}, false, err
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(row.Payload), &profile); err != nil {
		return models.UserProfile{}, false, fmt.Errorf("failed to decode cached profile: %w", err)
	}
	return profile, true, nil
}

// SavePlan caches the last successfully fetched plan for its owner
func (s *Store) SavePlan(plan models.MealPlan) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	row := cachedPlan{UserID: plan.UserID, Payload: string(payload), SavedAt: time.Now()}
	return s.db.Save(&row).Error
}

// CachedPlan returns the cached plan for a user, if any
func (s *Store) CachedPlan(userID string) (models.MealPlan, bool, error) {
	var row cachedPlan
	if err := s.db.Where("user_id = ?", userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MealPlan{}, false, nil
		}
		return models.MealPlan{}, false, err
	}

	var plan models.MealPlan
	if err := json.Unmarshal([]byte(row.Payload), &plan); err != nil {
		return models.MealPlan{}, false, fmt.Errorf("failed to decode cached plan: %w", err)
	}
	return plan, true, nil
}

// LatestCachedPlan returns the most recently cached plan across users, if
// any. Lets `plan show --cached` work without a resolved identity.
func (s *Store) LatestCachedPlan() (models.MealPlan, bool, error) {
	var row cachedPlan
	if err := s.db.Order("saved_at desc").First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MealPlan{}, false, nil
		}
		return models.MealPlan{}, false, err
	}

	var plan models.MealPlan
	if err := json.Unmarshal([]byte(row.Payload), &plan); err != nil {
		return models.MealPlan{}, false, fmt.Errorf("failed to decode cached plan: %w", err)
	}
	return plan, true, nil
}

// ClearPlans drops every cached plan
func (s *Store) ClearPlans() error {
	return s.db.Where("1 = 1").Delete(&cachedPlan{}).Error
}

// ClearProfiles drops every cached identity
func (s *Store) ClearProfiles() error {
	return s.db.Where("1 = 1").Delete(&cachedProfile{}).Error
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
