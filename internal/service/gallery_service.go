package service

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"stepup_backend/internal/imaging"
	"stepup_backend/internal/model"
	"stepup_backend/internal/util"
	"stepup_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
)

// GalleryInput carries the text fields of a submission. URLs are
// optional on both create and edit.
type GalleryInput struct {
	TrackID     string `form:"trackId"`
	Title       string `form:"title"`
	Description string `form:"description"`
	DemoURL     string `form:"demoUrl"`
	GithubURL   string `form:"githubUrl"`
	LinkedinURL string `form:"linkedinUrl"`
}

// GalleryStore persists submissions. Satisfied by
// repository.GalleryRepository; kept narrow so service tests can stub it.
type GalleryStore interface {
	Create(submission *model.GallerySubmission) error
	FindByID(id uint) (*model.GallerySubmission, error)
	FindAll(trackID string) ([]model.GallerySubmission, error)
	FindByUser(userID uint) ([]model.GallerySubmission, error)
	Update(submission *model.GallerySubmission) error
	Delete(id uint) error
}

type GalleryService struct {
	GalleryRepo GalleryStore
	Storage     *StorageService
	Leaderboard *LeaderboardService
}

func NewGalleryService(galleryRepo GalleryStore, storage *StorageService, leaderboard *LeaderboardService) *GalleryService {
	return &GalleryService{
		GalleryRepo: galleryRepo,
		Storage:     storage,
		Leaderboard: leaderboard,
	}
}

func (s *GalleryService) List(trackID string) ([]model.GallerySubmission, error) {
	return s.GalleryRepo.FindAll(trackID)
}

func (s *GalleryService) Mine(userID uint) ([]model.GallerySubmission, error) {
	return s.GalleryRepo.FindByUser(userID)
}

// Create validates, crops the cover image to the card aspect, uploads,
// then inserts the row. The image is optional; when absent the row is
// stored with an empty image URL. A failed upload aborts before the
// insert so no submission points at a missing image.
func (s *GalleryService) Create(ctx context.Context, user *model.User, input GalleryInput, file *multipart.FileHeader) (*model.GallerySubmission, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, util.ErrTitleRequired
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, util.ErrDescRequired
	}

	imageURL := ""
	if file != nil {
		uploaded, err := s.uploadCover(ctx, file)
		if err != nil {
			return nil, err
		}
		imageURL = uploaded
	}

	submission := &model.GallerySubmission{
		UserID:      user.ID,
		UserName:    user.Name,
		TrackID:     input.TrackID,
		Title:       input.Title,
		Description: input.Description,
		DemoURL:     input.DemoURL,
		GithubURL:   input.GithubURL,
		LinkedinURL: input.LinkedinURL,
		ImageURL:    imageURL,
	}
	if err := s.GalleryRepo.Create(submission); err != nil {
		return nil, err
	}

	s.Leaderboard.Invalidate(ctx)
	return submission, nil
}

// uploadCover normalizes and stores the cover image, returning its
// public URL.
func (s *GalleryService) uploadCover(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > imaging.MaxUploadBytes {
		return "", util.ErrImageTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	original, err := io.ReadAll(io.LimitReader(src, imaging.MaxUploadBytes+1))
	if err != nil {
		return "", err
	}
	if int64(len(original)) > imaging.MaxUploadBytes {
		return "", util.ErrImageTooLarge
	}

	contentType, err := util.ValidateMimeType(bytes.NewReader(original), []string{"image/"})
	if err != nil || !util.IsImage(contentType) {
		return "", util.ErrNotAnImage
	}

	// Undecodable or exotic images fall back to the raw upload rather
	// than failing the submission.
	payload := original
	uploadType := contentType
	ext := extensionFor(contentType)
	if cropped, err := imaging.CropCover(bytes.NewReader(original)); err == nil {
		payload = cropped
		uploadType = "image/jpeg"
		ext = ".jpg"
	} else {
		logger.Log.Warn("cover crop failed, storing original",
			zap.String("content_type", contentType),
			zap.Error(err),
		)
	}

	filename := model.GenerateUUID() + ext
	return s.Storage.Upload(ctx, filename, bytes.NewReader(payload), int64(len(payload)), uploadType)
}

// Update edits text fields only. Replacing the cover image means
// deleting and resubmitting.
func (s *GalleryService) Update(ctx context.Context, userID, submissionID uint, input GalleryInput) (*model.GallerySubmission, error) {
	submission, err := s.GalleryRepo.FindByID(submissionID)
	if err != nil {
		return nil, util.ErrSubmissionNotFound
	}
	if submission.UserID != userID {
		return nil, util.ErrPermissionDenied
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, util.ErrTitleRequired
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, util.ErrDescRequired
	}

	submission.Title = input.Title
	submission.Description = input.Description
	submission.DemoURL = input.DemoURL
	submission.GithubURL = input.GithubURL
	submission.LinkedinURL = input.LinkedinURL

	if err := s.GalleryRepo.Update(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *GalleryService) Delete(ctx context.Context, userID, submissionID uint) error {
	submission, err := s.GalleryRepo.FindByID(submissionID)
	if err != nil {
		return util.ErrSubmissionNotFound
	}
	if submission.UserID != userID {
		return util.ErrPermissionDenied
	}

	if err := s.GalleryRepo.Delete(submissionID); err != nil {
		return err
	}

	// Best effort: an orphaned object is harmless, a dangling row is not.
	if filename := filenameFromURL(submission.ImageURL); filename != "" {
		if err := s.Storage.Delete(ctx, filename); err != nil {
			logger.Log.Warn("cover image cleanup failed",
				zap.String("filename", filename),
				zap.Error(err),
			)
		}
	}

	s.Leaderboard.Invalidate(ctx)
	return nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

func filenameFromURL(imageURL string) string {
	idx := strings.LastIndex(imageURL, "/")
	if idx < 0 || idx == len(imageURL)-1 {
		return ""
	}
	return imageURL[idx+1:]
}
