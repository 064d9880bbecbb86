package controller

import (
	"errors"
	"stepup_backend/internal/service"
	"stepup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

type OnboardRequest struct {
	Name    string `json:"name" binding:"required"`
	TrackID string `json:"trackId" binding:"required"`
}

// Onboard godoc
// @Summary Complete onboarding
// @Description Sets display name and first track, seeds the project log
// @Tags profile
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body OnboardRequest true "Name and track"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Invalid payload or unknown track"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/onboarding [post]
func (c *UserController) Onboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req OnboardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Onboard(claims.UserID, req.Name, req.TrackID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTrackNotFound):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"name":          user.Name,
		"selectedTrack": user.SelectedTrack,
		"onboarded":     user.Onboarded,
	})
}

type ChangeTrackRequest struct {
	TrackID string `json:"trackId" binding:"required"`
}

// ChangeTrack godoc
// @Summary Switch the selected track
// @Description Completions and streak are kept; shared topics stay done
// @Tags profile
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body ChangeTrackRequest true "Target track"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Unknown track"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/profile/track [put]
func (c *UserController) ChangeTrack(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ChangeTrackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.ChangeTrack(claims.UserID, req.TrackID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTrackNotFound):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"selectedTrack": user.SelectedTrack})
}
