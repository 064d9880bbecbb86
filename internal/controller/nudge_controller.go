package controller

import (
	"crypto/subtle"
	"time"

	"stepup_backend/internal/service"
	"stepup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NudgeController struct {
	NudgeService *service.NudgeService
	Secret       string
}

func NewNudgeController(nudgeService *service.NudgeService, secret string) *NudgeController {
	return &NudgeController{
		NudgeService: nudgeService,
		Secret:       secret,
	}
}

// Send godoc
// @Summary Send the weekly nudge batch
// @Description Cron-triggered; requires the shared bearer secret. GET and POST behave identically.
// @Tags nudges
// @Produce  json
// @Param   Authorization header string true "Bearer <secret>"
// @Success 200 {object} util.Response{data=service.NudgeReport}
// @Failure 401 {object} util.Response "Wrong or missing secret"
// @Router /api/nudges/send [post]
func (c *NudgeController) Send(ctx *gin.Context) {
	auth := ctx.GetHeader("Authorization")
	if c.Secret == "" || subtle.ConstantTimeCompare([]byte(auth), []byte("Bearer "+c.Secret)) != 1 {
		util.Unauthorized(ctx)
		return
	}

	report, err := c.NudgeService.SendAll(time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}
