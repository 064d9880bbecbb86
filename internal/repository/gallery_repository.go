package repository

import (
	"stepup_backend/internal/model"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	DB *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{DB: db}
}

func (r *GalleryRepository) Create(submission *model.GallerySubmission) error {
	return r.DB.Create(submission).Error
}

func (r *GalleryRepository) FindByID(id uint) (*model.GallerySubmission, error) {
	var submission model.GallerySubmission
	err := r.DB.First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// FindAll lists submissions newest first, optionally filtered by track.
func (r *GalleryRepository) FindAll(trackID string) ([]model.GallerySubmission, error) {
	var submissions []model.GallerySubmission
	query := r.DB.Order("created_at DESC, id DESC")
	if trackID != "" {
		query = query.Where("track_id = ?", trackID)
	}
	err := query.Find(&submissions).Error
	return submissions, err
}

func (r *GalleryRepository) FindByUser(userID uint) ([]model.GallerySubmission, error) {
	var submissions []model.GallerySubmission
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&submissions).Error
	return submissions, err
}

// FindAllForRanking reads the owner columns in insertion order so the
// leaderboard's first-seen tie break is deterministic.
func (r *GalleryRepository) FindAllForRanking() ([]model.GallerySubmission, error) {
	var submissions []model.GallerySubmission
	err := r.DB.Select("user_id", "user_name").
		Order("id ASC").
		Find(&submissions).Error
	return submissions, err
}

func (r *GalleryRepository) Update(submission *model.GallerySubmission) error {
	return r.DB.Save(submission).Error
}

func (r *GalleryRepository) Delete(id uint) error {
	return r.DB.Delete(&model.GallerySubmission{}, id).Error
}
