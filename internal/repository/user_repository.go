package repository

import (
	"stepup_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// UpdateStreak persists a streak advance in one statement so a
// concurrent completion on the same day cannot interleave a stale
// count with a fresh date.
func (r *UserRepository) UpdateStreak(userID uint, streak int, lastActiveDate string) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"streak_count":     streak,
			"last_active_date": lastActiveDate,
		}).Error
}

func (r *UserRepository) UpdateTrack(userID uint, trackID string) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("selected_track", trackID).Error
}

// FindAll returns every learner profile, used by the nudge batch.
func (r *UserRepository) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("id ASC").Find(&users).Error
	return users, err
}
