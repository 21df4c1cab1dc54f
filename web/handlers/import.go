package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"timescan.app/timescan/web/common"
)

// Import receives a scanner export as multipart field "file" and replaces the
// whole session with the parsed result. Only .txt exports are accepted — that
// is all the devices produce.
func (ep *Endpoint) Import(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("missing file"))
		return
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".txt") {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("only .txt log files are supported"))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer src.Close()

	importID, err := ep.session.Import(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	stats := ep.session.Stats()
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"importId":  importID,
		"fileName":  file.Filename,
		"records":   stats.Records,
		"employees": stats.Employees,
		"days":      stats.Days,
	}))
}
