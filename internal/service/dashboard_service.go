package service

import (
	"stepup_backend/internal/catalog"
	"stepup_backend/internal/model"
	"stepup_backend/internal/repository"
	"stepup_backend/internal/util"
)

// DashboardView is the single-request profile overview.
type DashboardView struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	TrackID       string          `json:"trackId"`
	TrackName     string          `json:"trackName"`
	Onboarded     bool            `json:"onboarded"`
	StreakCount   int             `json:"streakCount"`
	LastActive    string          `json:"lastActiveDate,omitempty"`
	Progress      catalog.Summary `json:"progress"`
	ProjectsDone  int64           `json:"projectsDone"`
	ProjectsTotal int64           `json:"projectsTotal"`
}

type DashboardService struct {
	UserRepo    *repository.UserRepository
	ProjectRepo *repository.ProjectRepository
	ProgressSvc *ProgressService
}

func NewDashboardService(userRepo *repository.UserRepository, projectRepo *repository.ProjectRepository, progressSvc *ProgressService) *DashboardService {
	return &DashboardService{
		UserRepo:    userRepo,
		ProjectRepo: projectRepo,
		ProgressSvc: progressSvc,
	}
}

func (s *DashboardService) Overview(userID uint) (*DashboardView, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	view := &DashboardView{
		Name:        user.Name,
		Email:       user.Email,
		TrackID:     user.SelectedTrack,
		Onboarded:   user.Onboarded,
		StreakCount: user.StreakCount,
		LastActive:  user.LastActiveDate,
	}
	if track, ok := catalog.Get(user.SelectedTrack); ok {
		view.TrackName = track.Name
	}

	summary, err := s.ProgressSvc.Summary(user)
	if err != nil {
		return nil, err
	}
	view.Progress = summary

	if user.SelectedTrack != "" {
		done, err := s.ProjectRepo.CountByStatus(userID, user.SelectedTrack, model.StatusDone)
		if err != nil {
			return nil, err
		}
		total, err := s.ProjectRepo.CountByTrack(userID, user.SelectedTrack)
		if err != nil {
			return nil, err
		}
		view.ProjectsDone = done
		view.ProjectsTotal = total
	}
	return view, nil
}
