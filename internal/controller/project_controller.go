package controller

import (
	"errors"
	"strconv"

	"stepup_backend/internal/model"
	"stepup_backend/internal/service"
	"stepup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	ProjectService *service.ProjectService
	UserService    *service.UserService
}

func NewProjectController(projectService *service.ProjectService, userService *service.UserService) *ProjectController {
	return &ProjectController{
		ProjectService: projectService,
		UserService:    userService,
	}
}

// trackFromQuery resolves the track: explicit ?track= wins, else the
// learner's selected track.
func (c *ProjectController) trackFromQuery(ctx *gin.Context, userID uint) (string, error) {
	if trackID := ctx.Query("track"); trackID != "" {
		return trackID, nil
	}
	user, err := c.UserService.GetByID(userID)
	if err != nil {
		return "", err
	}
	return user.SelectedTrack, nil
}

// List godoc
// @Summary Weekly project log
// @Tags projects
// @Produce  json
// @Security BearerAuth
// @Param   track query string false "Track id, defaults to the selected track"
// @Success 200 {object} util.Response{data=[]model.Project}
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/projects [get]
func (c *ProjectController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	trackID, err := c.trackFromQuery(ctx, claims.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	projects, err := c.ProjectService.List(claims.UserID, trackID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, projects)
}

// Append godoc
// @Summary Add the next week's row
// @Description Rejected while the latest row is still unnamed
// @Tags projects
// @Produce  json
// @Security BearerAuth
// @Param   track query string false "Track id, defaults to the selected track"
// @Success 201 {object} util.Response{data=model.Project}
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 409 {object} util.Response "Latest project has no name yet"
// @Router /api/projects [post]
func (c *ProjectController) Append(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	trackID, err := c.trackFromQuery(ctx, claims.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	project, err := c.ProjectService.AppendWeek(claims.UserID, trackID)
	if err != nil {
		if errors.Is(err, util.ErrUnnamedProject) {
			util.Error(ctx, 409, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, project)
}

// UpdateProjectRequest uses pointers so absent fields stay untouched.
type UpdateProjectRequest struct {
	Title       *string              `json:"title"`
	Status      *model.ProjectStatus `json:"status"`
	LinkedinURL *string              `json:"linkedinUrl"`
}

// Update godoc
// @Summary Edit a project row
// @Description Setting the title to blank deletes the row
// @Tags projects
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Project id"
// @Param   body body UpdateProjectRequest true "Fields to change"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Invalid payload or status"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Not the owner"
// @Failure 404 {object} util.Response "Project not found"
// @Router /api/projects/{id} [patch]
func (c *ProjectController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	projectID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid project id")
		return
	}

	var req UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	project, deleted, err := c.ProjectService.UpdateFields(claims.UserID, uint(projectID), req.Title, req.Status, req.LinkedinURL)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrProjectNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, gin.H{"project": project, "deleted": deleted})
}

// Delete godoc
// @Summary Delete a project row
// @Tags projects
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Project id"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 403 {object} util.Response "Not the owner"
// @Failure 404 {object} util.Response "Project not found"
// @Router /api/projects/{id} [delete]
func (c *ProjectController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	projectID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid project id")
		return
	}

	if err := c.ProjectService.Delete(claims.UserID, uint(projectID)); err != nil {
		switch {
		case errors.Is(err, util.ErrProjectNotFound):
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
