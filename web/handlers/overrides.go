package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timescan.app/timescan/web/common"
)

func (ep *Endpoint) ListAssignments(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(ep.shifts.Overrides()))
}

type assignDTO struct {
	PresetID int `json:"presetId" binding:"required"`
}

// AssignShift pins an employee to a preset. The stored override snapshots the
// preset's hours; later edits to the preset do not follow.
func (ep *Endpoint) AssignShift(c *gin.Context) {
	employeeID := c.Param("id")

	var dto assignDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	ov, err := ep.shifts.Assign(employeeID, dto.PresetID)
	if err != nil {
		respondPresetError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(ov))
}

// ClearShift puts an employee back on the default preset.
func (ep *Endpoint) ClearShift(c *gin.Context) {
	if err := ep.shifts.ClearOverride(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}
