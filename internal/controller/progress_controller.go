package controller

import (
	"errors"
	"stepup_backend/internal/service"
	"stepup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// Get godoc
// @Summary Progress on the selected track
// @Description Completed topic ids, summary and streak in one read
// @Tags progress
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.ProgressView}
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "No track selected"
// @Router /api/progress [get]
func (c *ProgressController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.ProgressService.GetProgress(claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound), errors.Is(err, util.ErrTrackNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, view)
}

// Complete godoc
// @Summary Mark a topic complete
// @Description Idempotent; the streak advances at most once per day
// @Tags progress
// @Produce  json
// @Security BearerAuth
// @Param   topicId path string true "Topic id"
// @Success 200 {object} util.Response{data=service.StreakUpdate}
// @Failure 400 {object} util.Response "Topic not in the selected track"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/progress/topics/{topicId} [post]
func (c *ProgressController) Complete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	update, err := c.ProgressService.CompleteTopic(claims.UserID, ctx.Param("topicId"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTopicNotInTrack), errors.Is(err, util.ErrTrackNotFound):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, update)
}

// Uncomplete godoc
// @Summary Uncheck a topic
// @Description Removes the completion; streak is never rolled back
// @Tags progress
// @Produce  json
// @Security BearerAuth
// @Param   topicId path string true "Topic id"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/progress/topics/{topicId} [delete]
func (c *ProgressController) Uncomplete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ProgressService.UncompleteTopic(claims.UserID, ctx.Param("topicId")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
