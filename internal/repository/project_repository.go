package repository

import (
	"stepup_backend/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	DB *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

func (r *ProjectRepository) Create(project *model.Project) error {
	return r.DB.Create(project).Error
}

func (r *ProjectRepository) CreateBatch(projects []model.Project) error {
	if len(projects) == 0 {
		return nil
	}
	return r.DB.Create(&projects).Error
}

// FindByUserAndTrack orders by week number with id as tiebreak, which
// preserves insertion order for duplicate week numbers.
func (r *ProjectRepository) FindByUserAndTrack(userID uint, trackID string) ([]model.Project, error) {
	var projects []model.Project
	err := r.DB.Where("user_id = ? AND track_id = ?", userID, trackID).
		Order("week_number ASC, id ASC").
		Find(&projects).Error
	return projects, err
}

// FindLatest returns the most recently created row for (user, track),
// gorm.ErrRecordNotFound when the log is empty.
func (r *ProjectRepository) FindLatest(userID uint, trackID string) (*model.Project, error) {
	var project model.Project
	err := r.DB.Where("user_id = ? AND track_id = ?", userID, trackID).
		Order("id DESC").
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) MaxWeekNumber(userID uint, trackID string) (int, error) {
	var max *int
	err := r.DB.Model(&model.Project{}).
		Where("user_id = ? AND track_id = ?", userID, trackID).
		Select("MAX(week_number)").
		Scan(&max).Error
	if err != nil || max == nil {
		return 0, err
	}
	return *max, nil
}

func (r *ProjectRepository) FindByID(id uint) (*model.Project, error) {
	var project model.Project
	err := r.DB.First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Update(project *model.Project) error {
	return r.DB.Save(project).Error
}

func (r *ProjectRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Project{}, id).Error
}

func (r *ProjectRepository) CountByStatus(userID uint, trackID string, status model.ProjectStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Project{}).
		Where("user_id = ? AND track_id = ? AND status = ?", userID, trackID, status).
		Count(&count).Error
	return count, err
}

func (r *ProjectRepository) CountByTrack(userID uint, trackID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Project{}).
		Where("user_id = ? AND track_id = ?", userID, trackID).
		Count(&count).Error
	return count, err
}
