package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timescan.app/timescan/core"
	"timescan.app/timescan/shift"
	"timescan.app/timescan/store"
)

const sampleLog = "No\tMchn\tEnNo\tName\tMode\tDateTime\n" +
	"1\t1\t0001\tsomchai\tFP\t2025/3/1 09:00\n" +
	"2\t1\t0001\tsomchai\tFP\t2025/3/1 19:30\n" +
	"3\t1\t0002\tsuda\tFP\t2025/3/1 09:30\n"

func newTestRouter(t *testing.T) (*gin.Engine, *shift.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	settings, err := store.Open(":memory:")
	require.NoError(t, err)
	shifts, err := shift.NewStore(settings)
	require.NoError(t, err)

	r := gin.New()
	Register(r.Group("/api"), core.NewSession(), shifts)
	return r, shifts
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func importLog(t *testing.T, r *gin.Engine) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "export.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte(sampleLog))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestImportAndStats(t *testing.T) {
	r, _ := newTestRouter(t)
	importLog(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data core.Stats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, core.Stats{Employees: 2, Records: 3, Days: 1, Filtered: 3}, resp.Data)
}

func TestImportRejectsNonTxt(t *testing.T) {
	r, _ := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "export.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("whatever"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFilterNarrowsRecordsAndExports(t *testing.T) {
	r, _ := newTestRouter(t)
	importLog(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/filter", gin.H{"employeeId": "0001"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/records", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)

	// Export follows the filter.
	w = doJSON(t, r, http.MethodGet, "/api/export/csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "\uFEFFลำดับ"))
	assert.Equal(t, 3, strings.Count(body, "\n"), "header plus two filtered rows")

	// Reset restores everything.
	w = doJSON(t, r, http.MethodDelete, "/api/filter", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/records", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 3)
}

func TestExportWithoutImport(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/export/csv", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeReport(t *testing.T) {
	r, _ := newTestRouter(t)
	importLog(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/employees/0001/report", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Report      core.EmployeeReport `json:"report"`
			HasOverride bool                `json:"hasOverride"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	report := resp.Data.Report
	assert.Equal(t, "somchai", report.EmployeeName)
	require.Len(t, report.Days, 1)
	// Default preset is 9+1h; 09:00-19:30 yields 30 minutes OT.
	assert.Equal(t, 30, report.Days[0].OTMinutes)
	assert.False(t, resp.Data.HasOverride)

	w = doJSON(t, r, http.MethodGet, "/api/employees/9999/report", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPresetCRUDKeepsSingleDefault(t *testing.T) {
	r, shifts := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/presets", gin.H{
		"name": "evening", "startTime": "14:00", "endTime": "23:00",
		"workHours": 8, "breakHours": 1,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		Data shift.Preset `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 4, created.Data.ID)
	assert.False(t, created.Data.IsDefault)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/presets/%d/default", created.Data.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "evening", shifts.Default().Name)

	defaults := 0
	for _, p := range shifts.Presets() {
		if p.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestPresetValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/presets", gin.H{"name": "broken"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "startTime")
}

func TestDeleteLastPresetConflict(t *testing.T) {
	r, shifts := newTestRouter(t)

	presets := shifts.Presets()
	for _, p := range presets[1:] {
		w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/presets/%d", p.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/presets/%d", presets[0].ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, shifts.Presets(), 1)

	w = doJSON(t, r, http.MethodDelete, "/api/presets/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssignAndClearShift(t *testing.T) {
	r, shifts := newTestRouter(t)
	importLog(t, r)

	night := shifts.Presets()[1]
	w := doJSON(t, r, http.MethodPut, "/api/employees/0001/shift", gin.H{"presetId": night.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, shifts.HasOverride("0001"))

	w = doJSON(t, r, http.MethodGet, "/api/employees", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hasOverride":true`)

	w = doJSON(t, r, http.MethodDelete, "/api/employees/0001/shift", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, shifts.HasOverride("0001"))

	w = doJSON(t, r, http.MethodPut, "/api/employees/0001/shift", gin.H{"presetId": 99})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
