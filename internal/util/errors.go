package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrTrackNotFound      = errors.New("track not found")
	ErrTopicNotInTrack    = errors.New("topic does not belong to the selected track")
	ErrProjectNotFound    = errors.New("project not found")
	ErrUnnamedProject     = errors.New("give the current project a name first")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrTitleRequired      = errors.New("project title is required")
	ErrDescRequired       = errors.New("description is required")
	ErrImageTooLarge      = errors.New("image must be under 10 MB")
	ErrNotAnImage         = errors.New("file must be an image")
)
