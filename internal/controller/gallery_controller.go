package controller

import (
	"errors"
	"strconv"

	"stepup_backend/internal/service"
	"stepup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GalleryController struct {
	GalleryService *service.GalleryService
	AuthService    *service.AuthService
}

func NewGalleryController(galleryService *service.GalleryService, authService *service.AuthService) *GalleryController {
	return &GalleryController{
		GalleryService: galleryService,
		AuthService:    authService,
	}
}

// List godoc
// @Summary Public gallery
// @Tags gallery
// @Produce  json
// @Param   track query string false "Filter by track id"
// @Success 200 {object} util.Response{data=[]model.GallerySubmission}
// @Router /api/gallery [get]
func (c *GalleryController) List(ctx *gin.Context) {
	submissions, err := c.GalleryService.List(ctx.Query("track"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

// Mine godoc
// @Summary Current learner's submissions
// @Tags gallery
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.GallerySubmission}
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/gallery/mine [get]
func (c *GalleryController) Mine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	submissions, err := c.GalleryService.Mine(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

// Create godoc
// @Summary Submit a project to the gallery
// @Description Multipart form; the cover image is center-cropped to 1200x545
// @Tags gallery
// @Accept  mpfd
// @Produce  json
// @Security BearerAuth
// @Param   title formData string true "Project title"
// @Param   description formData string true "Short description"
// @Param   trackId formData string false "Track id"
// @Param   demoUrl formData string false "Live demo URL"
// @Param   githubUrl formData string false "Repository URL"
// @Param   linkedinUrl formData string false "LinkedIn post URL"
// @Param   image formData file false "Cover image, max 10 MB"
// @Success 201 {object} util.Response{data=model.GallerySubmission}
// @Failure 400 {object} util.Response "Missing fields or bad image"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 413 {object} util.Response "Image too large"
// @Router /api/gallery [post]
func (c *GalleryController) Create(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.GalleryInput
	if err := ctx.ShouldBind(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		file = nil
	}

	submission, err := c.GalleryService.Create(ctx.Request.Context(), user, input, file)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrImageTooLarge):
			util.Error(ctx, 413, err.Error())
		case errors.Is(err, util.ErrTitleRequired),
			errors.Is(err, util.ErrDescRequired),
			errors.Is(err, util.ErrNotAnImage):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, submission)
}

// Update godoc
// @Summary Edit a submission's text fields
// @Tags gallery
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Submission id"
// @Param   body body service.GalleryInput true "New text fields"
// @Success 200 {object} util.Response{data=model.GallerySubmission}
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Not the owner"
// @Failure 404 {object} util.Response "Submission not found"
// @Router /api/gallery/{id} [patch]
func (c *GalleryController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	submissionID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid submission id")
		return
	}

	var input service.GalleryInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.GalleryService.Update(ctx.Request.Context(), claims.UserID, uint(submissionID), input)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSubmissionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrTitleRequired), errors.Is(err, util.ErrDescRequired):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, submission)
}

// Delete godoc
// @Summary Delete a submission
// @Tags gallery
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Submission id"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Not the owner"
// @Failure 404 {object} util.Response "Submission not found"
// @Router /api/gallery/{id} [delete]
func (c *GalleryController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	submissionID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid submission id")
		return
	}

	if err := c.GalleryService.Delete(ctx.Request.Context(), claims.UserID, uint(submissionID)); err != nil {
		switch {
		case errors.Is(err, util.ErrSubmissionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}
