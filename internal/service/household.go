package service

import (
	"context"
	"crypto/rand"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/wastewise-v1/backend/internal/model"
)

// joinCodeAlphabet leaves out 0/O, 1/I/L to keep codes easy to read aloud.
const joinCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const joinCodeLength = 8

const defaultWasteGoal = 10

// maxJoinCodeAttempts bounds the retry loop on a join-code collision.
const maxJoinCodeAttempts = 5

// HouseholdService handles household creation, joining and lookup
type HouseholdService struct {
	db *gorm.DB
}

func NewHouseholdService(db *gorm.DB) *HouseholdService {
	return &HouseholdService{db: db}
}

// GenerateJoinCode returns an 8-character uppercase code drawn from an
// unambiguous alphabet.
func GenerateJoinCode() (string, error) {
	buf := make([]byte, joinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}
	return string(buf), nil
}

// Create makes a new household with the caller as its sole member. Fails
// with ErrAlreadyMember if the caller already belongs to one. A wasteGoal of
// nil falls back to the default of 10.
func (s *HouseholdService) Create(ctx context.Context, userID uuid.UUID, name string, wasteGoal *float64) (*model.Household, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	if user.HouseholdID != nil {
		return nil, ErrAlreadyMember
	}

	goal := float64(defaultWasteGoal)
	if wasteGoal != nil {
		goal = *wasteGoal
	}
	household := model.Household{
		Name:      name,
		WasteGoal: goal,
	}

	// Codes are probabilistically unique; the unique index catches the rare
	// collision and we retry with a fresh code.
	var lastErr error
	for attempt := 0; attempt < maxJoinCodeAttempts; attempt++ {
		code, err := GenerateJoinCode()
		if err != nil {
			return nil, err
		}
		household.ID = uuid.Nil
		household.JoinCode = code

		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&household).Error; err != nil {
				return err
			}
			return tx.Model(&model.User{}).Where("id = ?", userID).
				Update("household_id", household.ID).Error
		})
		if err == nil {
			return s.Get(ctx, userID)
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// Join adds the caller to the household matching the given code. Codes are
// case-insensitive; lookup happens after normalizing to uppercase.
func (s *HouseholdService) Join(ctx context.Context, userID uuid.UUID, code string) (*model.Household, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	if user.HouseholdID != nil {
		return nil, ErrAlreadyMember
	}

	normalized := strings.ToUpper(strings.TrimSpace(code))

	var household model.Household
	if err := s.db.WithContext(ctx).First(&household, "join_code = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseholdNotFound
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).
		Update("household_id", household.ID).Error; err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

// Get returns the caller's household with its member list preloaded, or
// (nil, nil) when the caller has no household.
func (s *HouseholdService) Get(ctx context.Context, userID uuid.UUID) (*model.Household, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	if user.HouseholdID == nil {
		return nil, nil
	}

	var household model.Household
	if err := s.db.WithContext(ctx).Preload("Members").
		First(&household, "id = ?", *user.HouseholdID).Error; err != nil {
		return nil, err
	}
	return &household, nil
}
