// Package handlers exposes the reconciliation engine over HTTP. All state
// lives in the session (current import) and the shift store; handlers are
// thin adapters between the two and JSON.
package handlers

import (
	"github.com/gin-gonic/gin"

	"timescan.app/timescan/core"
	"timescan.app/timescan/shift"
)

type Endpoint struct {
	session *core.Session
	shifts  *shift.Store
}

func Register(r *gin.RouterGroup, session *core.Session, shifts *shift.Store) {
	ep := &Endpoint{session: session, shifts: shifts}

	r.POST("/import", ep.Import)

	r.GET("/records", ep.Records)
	r.GET("/stats", ep.Stats)
	r.PUT("/filter", ep.SetFilter)
	r.DELETE("/filter", ep.ResetFilter)

	r.GET("/employees", ep.Employees)
	r.GET("/employees/:id/report", ep.Report)
	r.GET("/timeline", ep.Timeline)

	r.GET("/presets", ep.ListPresets)
	r.POST("/presets", ep.CreatePreset)
	r.PUT("/presets/:id", ep.UpdatePreset)
	r.PUT("/presets/:id/default", ep.SetDefaultPreset)
	r.DELETE("/presets/:id", ep.DeletePreset)

	r.GET("/shift-assignments", ep.ListAssignments)
	r.PUT("/employees/:id/shift", ep.AssignShift)
	r.DELETE("/employees/:id/shift", ep.ClearShift)

	r.GET("/export/csv", ep.ExportCSV)
	r.GET("/export/xlsx", ep.ExportXLSX)
}
