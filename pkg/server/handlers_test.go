package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"odgen/pkg/docx"
	"odgen/pkg/report"
	"odgen/pkg/roster"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(report.NewGenerator(), nil, nil)
	h.now = func() time.Time { return time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC) }
	return NewEngine(h)
}

func uploadRequest(t *testing.T, path, filename, content string, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if filename != "" {
		fw, err := mw.CreateFormFile(rosterField, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

const rosterCSV = `Name,Registration Number,Section,Branch,Semester,Date,From,To
John Doe,REG001,A,CSE,1,2024-01-15,09:00,17:00
Jane Smith,REG002,B,ECE,2,2024-01-15,10:00,16:00
`

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	newTestEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestSample(t *testing.T) {
	w := httptest.NewRecorder()
	newTestEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sample.csv", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "sample_od_data.csv")

	records, err := roster.Read(w.Body, "sample.csv", roster.Options{})
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestPreview(t *testing.T) {
	w := httptest.NewRecorder()
	newTestEngine().ServeHTTP(w, uploadRequest(t, "/preview", "roster.csv", rosterCSV, nil))

	require.Equal(t, http.StatusOK, w.Code)

	var s roster.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.Equal(t, 2, s.Total)
	assert.Len(t, s.Branches, 2)
}

func TestGenerate(t *testing.T) {
	w := httptest.NewRecorder()
	newTestEngine().ServeHTTP(w, uploadRequest(t, "/generate", "roster.csv", rosterCSV, nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, docx.ContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="OD_List_All_Branches_20240115_093000.docx"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")), "body is a zip package")
}

func TestGenerate_WithEvent(t *testing.T) {
	in := "Name,Registration Number,Section,Branch,Semester\nA,R1,S,CSE,3\n"
	fields := map[string]string{"date": "2024-02-01", "from": "10:00", "to": "12:00"}

	w := httptest.NewRecorder()
	newTestEngine().ServeHTTP(w, uploadRequest(t, "/generate", "roster.csv", in, fields))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "OD_List_2024-02-01_20240115_093000.docx")
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		fields   map[string]string
		status   int
		message  string
	}{
		{"missing file", "", "", nil, http.StatusBadRequest, "roster file is required"},
		{"missing columns", "roster.csv", "Name,Branch\nA,CSE\n", nil, http.StatusBadRequest, "missing columns"},
		{"unsupported format", "roster.pdf", "x", nil, http.StatusBadRequest, "unsupported file format"},
		{"bad event date", "roster.csv", rosterCSV, map[string]string{"date": "soon"}, http.StatusBadRequest, "invalid event date"},
		{"malformed semester", "roster.csv", strings.Replace(rosterCSV, "CSE,1,", "CSE,first,", 1), nil, http.StatusUnprocessableEntity, "malformed record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newTestEngine().ServeHTTP(w, uploadRequest(t, "/generate", tt.filename, tt.content, tt.fields))

			assert.Equal(t, tt.status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body["error"], tt.message)
		})
	}
}
