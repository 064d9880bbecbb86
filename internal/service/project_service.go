package service

import (
	"errors"
	"stepup_backend/internal/catalog"
	"stepup_backend/internal/model"
	"stepup_backend/internal/repository"
	"stepup_backend/internal/util"
	"strings"

	"gorm.io/gorm"
)

type ProjectService struct {
	ProjectRepo *repository.ProjectRepository
}

func NewProjectService(projectRepo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{ProjectRepo: projectRepo}
}

// NextWeekNumber suggests max existing week + 1, or 1 for an empty log.
func NextWeekNumber(projects []model.Project) int {
	max := 0
	for _, p := range projects {
		if p.WeekNumber > max {
			max = p.WeekNumber
		}
	}
	return max + 1
}

// CanAppend rejects a new week while the most recently created row is
// still unnamed.
func CanAppend(latest *model.Project) bool {
	if latest == nil {
		return true
	}
	return strings.TrimSpace(latest.Title) != ""
}

func (s *ProjectService) List(userID uint, trackID string) ([]model.Project, error) {
	return s.ProjectRepo.FindByUserAndTrack(userID, trackID)
}

// AppendWeek adds an empty row with the next week number. It fails
// with ErrUnnamedProject when the current last row has a blank title.
func (s *ProjectService) AppendWeek(userID uint, trackID string) (*model.Project, error) {
	latest, err := s.ProjectRepo.FindLatest(userID, trackID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if !CanAppend(latest) {
		return nil, util.ErrUnnamedProject
	}

	maxWeek, err := s.ProjectRepo.MaxWeekNumber(userID, trackID)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		UserID:     userID,
		TrackID:    trackID,
		WeekNumber: maxWeek + 1,
		Title:      "",
		Status:     model.StatusNotStarted,
	}
	if err := s.ProjectRepo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

// SeedIfEmpty bulk-inserts the track's idea list as weeks 1..n when the
// learner has no rows yet for this track. Returns the rows either way.
func (s *ProjectService) SeedIfEmpty(userID uint, trackID string) ([]model.Project, error) {
	existing, err := s.ProjectRepo.FindByUserAndTrack(userID, trackID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	ideas := catalog.ProjectIdeas(trackID)
	seeded := make([]model.Project, 0, len(ideas))
	for i, title := range ideas {
		seeded = append(seeded, model.Project{
			UserID:     userID,
			TrackID:    trackID,
			WeekNumber: i + 1,
			Title:      title,
			Status:     model.StatusNotStarted,
		})
	}
	if err := s.ProjectRepo.CreateBatch(seeded); err != nil {
		return nil, err
	}
	return seeded, nil
}

// UpdateFields edits title/status/link in place. A title explicitly
// set to blank deletes the row, which is the server side of the
// blur-to-cancel gesture. Returns deleted=true in that case.
func (s *ProjectService) UpdateFields(userID, projectID uint, title *string, status *model.ProjectStatus, linkedinURL *string) (*model.Project, bool, error) {
	project, err := s.ProjectRepo.FindByID(projectID)
	if err != nil {
		return nil, false, util.ErrProjectNotFound
	}
	if project.UserID != userID {
		return nil, false, util.ErrPermissionDenied
	}

	if title != nil && strings.TrimSpace(*title) == "" {
		if err := s.ProjectRepo.Delete(project.ID); err != nil {
			return nil, false, err
		}
		return project, true, nil
	}

	if title != nil {
		project.Title = *title
	}
	if status != nil {
		if !model.ValidStatus(*status) {
			return nil, false, errors.New("invalid status: " + string(*status))
		}
		project.Status = *status
	}
	if linkedinURL != nil {
		project.LinkedinURL = *linkedinURL
	}

	if err := s.ProjectRepo.Update(project); err != nil {
		return nil, false, err
	}
	return project, false, nil
}

func (s *ProjectService) Delete(userID, projectID uint) error {
	project, err := s.ProjectRepo.FindByID(projectID)
	if err != nil {
		return util.ErrProjectNotFound
	}
	if project.UserID != userID {
		return util.ErrPermissionDenied
	}
	return s.ProjectRepo.Delete(projectID)
}
