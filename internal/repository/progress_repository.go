package repository

import (
	"stepup_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Complete upserts the (user, topic) pair; repeating a completion is a
// no-op rather than a constraint violation.
func (r *ProgressRepository) Complete(userID uint, topicID string) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.TopicCompletion{UserID: userID, TopicID: topicID}).Error
}

func (r *ProgressRepository) Uncomplete(userID uint, topicID string) error {
	return r.DB.Unscoped().
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		Delete(&model.TopicCompletion{}).Error
}

// CompletedTopicIDs lists all completed topic ids for a user,
// including ids from previously selected tracks.
func (r *ProgressRepository) CompletedTopicIDs(userID uint) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.TopicCompletion{}).
		Where("user_id = ?", userID).
		Pluck("topic_id", &ids).Error
	return ids, err
}

func (r *ProgressRepository) IsCompleted(userID uint, topicID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.TopicCompletion{}).
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		Count(&count).Error
	return count > 0, err
}
