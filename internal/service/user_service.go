package service

import (
	"stepup_backend/internal/catalog"
	"stepup_backend/internal/model"
	"stepup_backend/internal/repository"
	"stepup_backend/internal/util"
)

type UserService struct {
	UserRepo   *repository.UserRepository
	ProjectSvc *ProjectService
}

func NewUserService(userRepo *repository.UserRepository, projectSvc *ProjectService) *UserService {
	return &UserService{
		UserRepo:   userRepo,
		ProjectSvc: projectSvc,
	}
}

func (s *UserService) GetByID(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

// Onboard records the display name and first track, then seeds the
// project log with the track's idea list. Calling it again simply
// overwrites name and track.
func (s *UserService) Onboard(userID uint, name, trackID string) (*model.User, error) {
	if _, ok := catalog.Get(trackID); !ok {
		return nil, util.ErrTrackNotFound
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	user.Name = name
	user.SelectedTrack = trackID
	user.Onboarded = true
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	if _, err := s.ProjectSvc.SeedIfEmpty(userID, trackID); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangeTrack switches the selected track. Completions and streak are
// untouched; shared core topics stay done on the new track. The new
// track's project log is seeded on first visit.
func (s *UserService) ChangeTrack(userID uint, trackID string) (*model.User, error) {
	if _, ok := catalog.Get(trackID); !ok {
		return nil, util.ErrTrackNotFound
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if err := s.UserRepo.UpdateTrack(userID, trackID); err != nil {
		return nil, err
	}
	user.SelectedTrack = trackID

	if _, err := s.ProjectSvc.SeedIfEmpty(userID, trackID); err != nil {
		return nil, err
	}
	return user, nil
}
