package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/edufund/scholarship-finder/dto"
	"github.com/edufund/scholarship-finder/service"
)

// MatchHandler serves the manual-entry and document-upload match endpoints.
type MatchHandler struct {
	matchService    *service.MatchService
	documentService *service.DocumentService
	logger          *zap.Logger
	now             func() time.Time
}

func NewMatchHandler(matchService *service.MatchService, documentService *service.DocumentService, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{
		matchService:    matchService,
		documentService: documentService,
		logger:          logger,
		now:             time.Now,
	}
}

// MatchManual handles POST /match: an explicit partial profile in the body.
func (h *MatchHandler) MatchManual(c *gin.Context) {
	var req dto.ManualMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	profile := req.Profile()
	matched, rejected := h.matchService.Match(profile, h.now())

	c.JSON(http.StatusOK, dto.MatchResponse{
		Success:     true,
		Profile:     profile,
		Matched:     matched,
		Rejected:    rejected,
		Stats:       h.matchService.Aggregate(matched),
		ProcessedAt: h.now().Format(time.RFC3339),
	})
}

// Upload handles POST /upload: a marksheet or certificate file goes through
// text extraction, profile parsing and then the same match run.
func (h *MatchHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", dto.ErrNoFiles)
		return
	}

	h.logger.Info("processing uploaded document",
		zap.String("file", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size))

	profile, rawText, err := h.documentService.ExtractProfile(fileHeader)
	if err != nil {
		h.sendError(c, http.StatusUnprocessableEntity, "Failed to extract text from document", err)
		return
	}

	matched, rejected := h.matchService.Match(profile, h.now())

	c.JSON(http.StatusOK, dto.MatchResponse{
		Success:     true,
		Profile:     profile,
		Matched:     matched,
		Rejected:    rejected,
		Stats:       h.matchService.Aggregate(matched),
		RawText:     rawText,
		ProcessedAt: h.now().Format(time.RFC3339),
	})
}

func (h *MatchHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		h.logger.Error(message, zap.Error(err))
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "MATCH_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
