package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seedhiai/resume-matcher/internal/events"
	"github.com/seedhiai/resume-matcher/internal/extract"
	"github.com/seedhiai/resume-matcher/internal/match"
)

// matchResume is the POST /match-resume endpoint: multipart résumé upload in,
// ranked recommendation list out.
func (s *Server) matchResume(c *gin.Context) {
	requestID := uuid.NewString()
	start := time.Now()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing resume file: " + err.Error()})
		return
	}

	ext := extensionOf(fileHeader.Filename)
	if !extract.Supported(ext) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported file type: %s", ext)})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open upload: " + err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload: " + err.Error()})
		return
	}

	text, err := extract.Text(data, ext)
	if err != nil {
		s.log.Warn("text extraction failed",
			zap.String("request_id", requestID),
			zap.String("file_type", ext),
			zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "failed to extract text: " + err.Error()})
		return
	}

	resume := match.Normalize(text)

	recs, err := s.engine.Match(c.Request.Context(), resume)
	if err != nil {
		s.log.Error("matching failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "matching failed: " + err.Error()})
		return
	}

	elapsed := time.Since(start)
	s.log.Info("resume matched",
		zap.String("request_id", requestID),
		zap.String("file_type", ext),
		zap.Int("resume_bytes", len(data)),
		zap.Int("recommendations", len(recs)),
		zap.Duration("elapsed", elapsed))

	if err := s.events.MatchCompleted(events.MatchCompleted{
		RequestID:       requestID,
		FileType:        ext,
		Recommendations: len(recs),
		ElapsedMS:       elapsed.Milliseconds(),
		Timestamp:       time.Now(),
	}); err != nil {
		s.log.Warn("failed to publish match event",
			zap.String("request_id", requestID),
			zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// extensionOf derives the declared file type from the upload filename,
// defaulting to pdf when the name carries no extension.
func extensionOf(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 && i < len(filename)-1 {
		return strings.ToLower(filename[i+1:])
	}
	return "pdf"
}
