package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"stepup_backend/internal/model"
	"stepup_backend/internal/util"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGalleryStore struct {
	created []model.GallerySubmission
}

func (s *stubGalleryStore) Create(submission *model.GallerySubmission) error {
	s.created = append(s.created, *submission)
	return nil
}

func (s *stubGalleryStore) FindByID(id uint) (*model.GallerySubmission, error) {
	return nil, errors.New("not found")
}

func (s *stubGalleryStore) FindAll(trackID string) ([]model.GallerySubmission, error) {
	return nil, nil
}

func (s *stubGalleryStore) FindByUser(userID uint) ([]model.GallerySubmission, error) {
	return nil, nil
}

func (s *stubGalleryStore) Update(submission *model.GallerySubmission) error { return nil }

func (s *stubGalleryStore) Delete(id uint) error { return nil }

type stubProvider struct {
	uploads   []string
	uploadErr error
}

func (p *stubProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	if p.uploadErr != nil {
		return "", p.uploadErr
	}
	p.uploads = append(p.uploads, filename)
	return p.GetURL(filename), nil
}

func (p *stubProvider) Delete(ctx context.Context, filename string) error { return nil }

func (p *stubProvider) GetURL(filename string) string {
	return "https://cdn.example.com/" + filename
}

func galleryFixture(provider *stubProvider) (*GalleryService, *stubGalleryStore) {
	store := &stubGalleryStore{}
	svc := NewGalleryService(store, &StorageService{Provider: provider}, &LeaderboardService{})
	return svc, store
}

// pngFileHeader builds a real multipart file header the way gin's
// FormFile would hand it to the controller.
func pngFileHeader(t *testing.T, w, h int) *multipart.FileHeader {
	t.Helper()

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, w, h))))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", "cover.png")
	require.NoError(t, err)
	_, err = fw.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image"][0]
}

func submitter() *model.User {
	return &model.User{
		BaseModel: model.BaseModel{ID: 7},
		Name:      "Asha",
	}
}

func TestGalleryCreateWithoutImage(t *testing.T) {
	provider := &stubProvider{}
	svc, store := galleryFixture(provider)

	submission, err := svc.Create(context.Background(), submitter(), GalleryInput{
		TrackID:     "fs-core",
		Title:       "Habit tracker",
		Description: "Streak visualization for daily habits",
		GithubURL:   "https://github.com/asha/habits",
	}, nil)
	require.NoError(t, err)

	// No image is a valid submission; the row just has no cover URL.
	assert.Equal(t, "", submission.ImageURL)
	assert.Empty(t, provider.uploads)
	require.Len(t, store.created, 1)
	assert.Equal(t, "Habit tracker", store.created[0].Title)
	assert.Equal(t, "Asha", store.created[0].UserName)
}

func TestGalleryCreateValidatesText(t *testing.T) {
	svc, store := galleryFixture(&stubProvider{})

	_, err := svc.Create(context.Background(), submitter(), GalleryInput{
		Title:       "   ",
		Description: "something",
	}, nil)
	assert.ErrorIs(t, err, util.ErrTitleRequired)

	_, err = svc.Create(context.Background(), submitter(), GalleryInput{
		Title:       "Named",
		Description: "",
	}, nil)
	assert.ErrorIs(t, err, util.ErrDescRequired)

	assert.Empty(t, store.created)
}

func TestGalleryCreateUploadsCroppedCover(t *testing.T) {
	provider := &stubProvider{}
	svc, store := galleryFixture(provider)

	submission, err := svc.Create(context.Background(), submitter(), GalleryInput{
		Title:       "Finance tracker",
		Description: "CSV import and budget charts",
	}, pngFileHeader(t, 1600, 900))
	require.NoError(t, err)

	require.Len(t, provider.uploads, 1)
	assert.True(t, strings.HasSuffix(provider.uploads[0], ".jpg"), "decodable images are stored as cropped JPEG")
	assert.Equal(t, "https://cdn.example.com/"+provider.uploads[0], submission.ImageURL)
	require.Len(t, store.created, 1)
	assert.Equal(t, submission.ImageURL, store.created[0].ImageURL)
}

func TestGalleryCreateUploadFailureLeavesNoRow(t *testing.T) {
	provider := &stubProvider{uploadErr: errors.New("bucket unavailable")}
	svc, store := galleryFixture(provider)

	_, err := svc.Create(context.Background(), submitter(), GalleryInput{
		Title:       "Event board",
		Description: "Neighborhood events with geolocation",
	}, pngFileHeader(t, 800, 600))

	assert.Error(t, err)
	assert.Empty(t, store.created, "a failed upload must abort before the insert")
}
