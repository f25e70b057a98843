package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"odgen/pkg/config"
	"odgen/pkg/docx"
	"odgen/pkg/exporter"
	"odgen/pkg/report"
	"odgen/pkg/roster"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// rosterField is the multipart field carrying the uploaded roster file.
const rosterField = "roster"

// Handler serves roster uploads and report downloads.
type Handler struct {
	gen    *report.Generator
	cfg    *config.AppConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewHandler wires a handler around a shared generator.
func NewHandler(gen *report.Generator, cfg *config.AppConfig, logger *zap.Logger) *Handler {
	if cfg == nil {
		cfg = &config.AppConfig{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{gen: gen, cfg: cfg, logger: logger, now: time.Now}
}

// Health reports that the server is up.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Sample serves the example roster as CSV.
func (h *Handler) Sample(c *gin.Context) {
	var buf bytes.Buffer
	if err := roster.WriteCSV(&buf, roster.SampleRecords()); err != nil {
		h.logger.Error("failed to render sample roster", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sample data"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="sample_od_data.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// Preview parses an uploaded roster and returns its statistics.
func (h *Handler) Preview(c *gin.Context) {
	records, _, ok := h.readRoster(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, roster.Summarize(records))
}

// Generate parses an uploaded roster and responds with the report document.
func (h *Handler) Generate(c *gin.Context) {
	records, ev, ok := h.readRoster(c)
	if !ok {
		return
	}

	out, err := h.gen.Generate(records)
	if err != nil {
		if errors.Is(err, report.ErrMalformedRecord) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("report generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate document"})
		return
	}

	eventDate := ""
	if ev != nil {
		eventDate = ev.Date
	}
	name := exporter.FileName(h.now(), eventDate)

	h.logger.Info("report generated",
		zap.Int("records", len(records)),
		zap.Int("bytes", len(out)),
		zap.String("file", name))

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, docx.ContentType, out)
}

// readRoster decodes the uploaded file and optional date/from/to form
// fields. On failure it writes the error response and returns ok=false.
func (h *Handler) readRoster(c *gin.Context) ([]roster.Record, *roster.Event, bool) {
	fh, err := c.FormFile(rosterField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A roster file is required in the 'roster' field"})
		return nil, nil, false
	}

	var opts roster.Options
	if date := c.PostForm("date"); date != "" {
		ev, err := roster.NewEvent(date, c.PostForm("from"), c.PostForm("to"), h.cfg.DateLayout, h.cfg.TimeLayout)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, nil, false
		}
		opts.Event = &ev
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return nil, nil, false
	}
	defer f.Close()

	records, err := roster.Read(f, fh.Filename, opts)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error processing file: %v", err)})
		return nil, nil, false
	}

	return records, opts.Event, true
}
