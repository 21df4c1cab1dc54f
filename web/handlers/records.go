package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timescan.app/timescan/core"
	"timescan.app/timescan/utils"
	"timescan.app/timescan/web/common"
)

type recordDTO struct {
	core.PunchEvent
	ThaiDate string          `json:"thaiDate"`
	Status   core.ScanStatus `json:"status"`
}

// Records lists the punches matching the active filter, each with its Thai
// date and coarse status label.
func (ep *Endpoint) Records(c *gin.Context) {
	rows := utils.Map(ep.session.FilteredRecords(), func(r core.PunchEvent) recordDTO {
		return recordDTO{
			PunchEvent: r,
			ThaiDate:   utils.ThaiDate(r.Date),
			Status:     core.StatusFor(r.Time),
		}
	})
	c.JSON(http.StatusOK, common.NewSuccessResponse(rows))
}

func (ep *Endpoint) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(ep.session.Stats()))
}

type filterDTO struct {
	Date       string `json:"date"`
	EmployeeID string `json:"employeeId"`
	TimeFrom   string `json:"timeFrom"`
	TimeTo     string `json:"timeTo"`
}

// SetFilter replaces the active record filter; listings and exports follow it.
func (ep *Endpoint) SetFilter(c *gin.Context) {
	var dto filterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	ep.session.SetFilter(core.Filter{
		Date:       dto.Date,
		EmployeeID: dto.EmployeeID,
		TimeFrom:   dto.TimeFrom,
		TimeTo:     dto.TimeTo,
	})
	c.JSON(http.StatusOK, common.NewSuccessResponse(ep.session.Stats()))
}

// ResetFilter restores the unfiltered record list.
func (ep *Endpoint) ResetFilter(c *gin.Context) {
	ep.session.SetFilter(core.Filter{})
	c.JSON(http.StatusOK, common.NewSuccessResponse(ep.session.Stats()))
}
