package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timescan.app/timescan/core"
	"timescan.app/timescan/web/common"
)

type employeeDTO struct {
	core.EmployeeCard
	HasOverride bool `json:"hasOverride"`
}

// Employees returns the per-employee cards for the current filtered view,
// flagged with whether a shift override is pinned.
func (ep *Endpoint) Employees(c *gin.Context) {
	cards := core.BuildCards(ep.session.FilteredRecords())
	rows := make([]employeeDTO, 0, len(cards))
	for _, card := range cards {
		rows = append(rows, employeeDTO{
			EmployeeCard: card,
			HasOverride:  ep.shifts.HasOverride(card.EmployeeID),
		})
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(rows))
}

// Report returns one employee's reconciled attendance: day rows with time
// pairs and overtime, plus totals. Built from the full import, not the
// filtered view — the modal always shows the whole history.
func (ep *Endpoint) Report(c *gin.Context) {
	employeeID := c.Param("id")

	report := core.BuildReport(ep.session.Records(), employeeID, ep.shifts.Resolve)
	if report == nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("no records for employee "+employeeID))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"report":      report,
		"hasOverride": ep.shifts.HasOverride(employeeID),
	}))
}

// Timeline returns the filtered punches grouped per date, newest first.
func (ep *Endpoint) Timeline(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(core.BuildTimeline(ep.session.FilteredRecords())))
}
