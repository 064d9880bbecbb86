package controller

import (
	"stepup_backend/internal/catalog"
	"stepup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TrackController struct{}

func NewTrackController() *TrackController {
	return &TrackController{}
}

// List godoc
// @Summary List track options
// @Tags tracks
// @Produce  json
// @Success 200 {object} util.Response{data=[]catalog.Option}
// @Router /api/tracks [get]
func (c *TrackController) List(ctx *gin.Context) {
	util.Success(ctx, catalog.Options())
}

// Get godoc
// @Summary Full curriculum for one track
// @Tags tracks
// @Produce  json
// @Param   id path string true "Track id"
// @Success 200 {object} util.Response{data=catalog.Track}
// @Failure 404 {object} util.Response "Unknown track"
// @Router /api/tracks/{id} [get]
func (c *TrackController) Get(ctx *gin.Context) {
	track, ok := catalog.Get(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, track)
}
