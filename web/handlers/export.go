package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"timescan.app/timescan/export"
	"timescan.app/timescan/web/common"
)

// ExportCSV downloads the filtered punch list as payroll-compatible CSV.
func (ep *Endpoint) ExportCSV(c *gin.Context) {
	records := ep.session.FilteredRecords()
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("no records to export"))
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, records); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	name := fmt.Sprintf("attendance_export_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportXLSX downloads the filtered punch list plus the reconciled attendance
// sheet as a workbook.
func (ep *Endpoint) ExportXLSX(c *gin.Context) {
	records := ep.session.FilteredRecords()
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("no records to export"))
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, records, ep.shifts.Resolve); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	name := fmt.Sprintf("attendance_export_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
