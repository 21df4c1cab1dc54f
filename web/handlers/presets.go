package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"timescan.app/timescan/shift"
	"timescan.app/timescan/web/common"
)

type presetDTO struct {
	Name       string  `json:"name" binding:"required"`
	Icon       string  `json:"icon"`
	StartTime  string  `json:"startTime" binding:"required"`
	EndTime    string  `json:"endTime" binding:"required"`
	WorkHours  float64 `json:"workHours" binding:"required,gt=0,max=24"`
	BreakHours float64 `json:"breakHours" binding:"gte=0,max=24"`
	IsNextDay  bool    `json:"isNextDay"`
}

func (dto presetDTO) toPreset(id int) shift.Preset {
	return shift.Preset{
		ID:         id,
		Name:       dto.Name,
		Icon:       dto.Icon,
		StartTime:  dto.StartTime,
		EndTime:    dto.EndTime,
		WorkHours:  dto.WorkHours,
		BreakHours: dto.BreakHours,
		IsNextDay:  dto.IsNextDay,
	}
}

func (ep *Endpoint) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(ep.shifts.Presets()))
}

func (ep *Endpoint) CreatePreset(c *gin.Context) {
	var dto presetDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	created, err := ep.shifts.Create(dto.toPreset(0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(created))
}

func (ep *Endpoint) UpdatePreset(c *gin.Context) {
	id, ok := presetID(c)
	if !ok {
		return
	}

	var dto presetDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	updated, err := ep.shifts.Update(dto.toPreset(id))
	if err != nil {
		respondPresetError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(updated))
}

func (ep *Endpoint) SetDefaultPreset(c *gin.Context) {
	id, ok := presetID(c)
	if !ok {
		return
	}
	if err := ep.shifts.SetDefault(id); err != nil {
		respondPresetError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(ep.shifts.Presets()))
}

func (ep *Endpoint) DeletePreset(c *gin.Context) {
	id, ok := presetID(c)
	if !ok {
		return
	}
	if err := ep.shifts.Delete(id); err != nil {
		respondPresetError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(ep.shifts.Presets()))
}

func presetID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return 0, false
	}
	return id, true
}

func respondPresetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, shift.ErrPresetNotFound):
		c.JSON(http.StatusNotFound, common.NewErrorResponse(err.Error()))
	case errors.Is(err, shift.ErrLastPreset):
		c.JSON(http.StatusConflict, common.NewErrorResponse(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
	}
}
