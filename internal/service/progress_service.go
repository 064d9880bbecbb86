package service

import (
	"stepup_backend/internal/catalog"
	"stepup_backend/internal/model"
	"stepup_backend/internal/streak"
	"stepup_backend/internal/util"
	"stepup_backend/pkg/logger"

	"go.uber.org/zap"
)

// ProgressView is the payload for the progress read endpoint.
type ProgressView struct {
	TrackID     string          `json:"trackId"`
	TrackName   string          `json:"trackName"`
	Completed   []string        `json:"completed"`
	Summary     catalog.Summary `json:"summary"`
	StreakCount int             `json:"streakCount"`
	LastActive  string          `json:"lastActiveDate,omitempty"`
}

// StreakUpdate reports the streak state after a completion.
type StreakUpdate struct {
	StreakCount    int    `json:"streakCount"`
	LastActiveDate string `json:"lastActiveDate"`
	Advanced       bool   `json:"advanced"`
}

// CompletionStore persists topic completions. Satisfied by
// repository.ProgressRepository; kept narrow so service tests can
// stub it.
type CompletionStore interface {
	Complete(userID uint, topicID string) error
	Uncomplete(userID uint, topicID string) error
	CompletedTopicIDs(userID uint) ([]string, error)
	IsCompleted(userID uint, topicID string) (bool, error)
}

// StreakStore reads a learner and advances their streak state.
// Satisfied by repository.UserRepository.
type StreakStore interface {
	FindByID(id uint) (*model.User, error)
	UpdateStreak(userID uint, streak int, lastActiveDate string) error
}

type ProgressService struct {
	ProgressRepo CompletionStore
	UserRepo     StreakStore
}

func NewProgressService(progressRepo CompletionStore, userRepo StreakStore) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		UserRepo:     userRepo,
	}
}

func (s *ProgressService) GetProgress(userID uint) (*ProgressView, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	track, ok := catalog.Get(user.SelectedTrack)
	if !ok {
		return nil, util.ErrTrackNotFound
	}

	ids, err := s.ProgressRepo.CompletedTopicIDs(userID)
	if err != nil {
		return nil, err
	}

	return &ProgressView{
		TrackID:     track.ID,
		TrackName:   track.Name,
		Completed:   ids,
		Summary:     catalog.Summarize(track, catalog.CompletedSet(ids)),
		StreakCount: user.StreakCount,
		LastActive:  user.LastActiveDate,
	}, nil
}

// CompleteTopic marks a topic done and advances the streak. The streak
// moves only on an incomplete->complete transition when the stored
// last-active date is not already today; repeating a same-day
// completion is idempotent.
func (s *ProgressService) CompleteTopic(userID uint, topicID string) (*StreakUpdate, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	track, ok := catalog.Get(user.SelectedTrack)
	if !ok {
		return nil, util.ErrTrackNotFound
	}
	if !track.HasTopic(topicID) {
		return nil, util.ErrTopicNotInTrack
	}

	alreadyDone, err := s.ProgressRepo.IsCompleted(userID, topicID)
	if err != nil {
		return nil, err
	}
	if !alreadyDone {
		if err := s.ProgressRepo.Complete(userID, topicID); err != nil {
			return nil, err
		}
	}

	update := &StreakUpdate{
		StreakCount:    user.StreakCount,
		LastActiveDate: user.LastActiveDate,
	}

	today := streak.Today()
	if !alreadyDone && user.LastActiveDate != today {
		newStreak := streak.Compute(user.LastActiveDate, user.StreakCount, today)
		if err := s.UserRepo.UpdateStreak(userID, newStreak, today); err != nil {
			return nil, err
		}
		update.StreakCount = newStreak
		update.LastActiveDate = today
		update.Advanced = true
		logger.Log.Debug("streak advanced",
			zap.Uint("user_id", userID),
			zap.Int("streak", newStreak),
		)
	}

	return update, nil
}

// UncompleteTopic removes a completion. Streak and last-active date
// are never rolled back by unchecking.
func (s *ProgressService) UncompleteTopic(userID uint, topicID string) error {
	return s.ProgressRepo.Uncomplete(userID, topicID)
}

// Summary computes the progress summary for dashboard aggregation.
// An unknown or unset track yields an empty summary, not an error.
func (s *ProgressService) Summary(user *model.User) (catalog.Summary, error) {
	track, ok := catalog.Get(user.SelectedTrack)
	if !ok {
		return catalog.Summary{FirstIncompletePhase: -1}, nil
	}
	ids, err := s.ProgressRepo.CompletedTopicIDs(user.ID)
	if err != nil {
		return catalog.Summary{}, err
	}
	return catalog.Summarize(track, catalog.CompletedSet(ids)), nil
}
