package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"scanhub.backend/internal/domain/entities"
	domainerrors "scanhub.backend/internal/domain/errors"
	"scanhub.backend/internal/interfaces/http/middleware"
	"scanhub.backend/internal/interfaces/http/response"
	"scanhub.backend/internal/usecases"
	"scanhub.backend/pkg/utils"
)

// ScanHandler handles scan report endpoints
type ScanHandler struct {
	scanUsecase *usecases.ScanUsecase
}

// NewScanHandler creates a new scan handler
func NewScanHandler(scanUsecase *usecases.ScanUsecase) *ScanHandler {
	return &ScanHandler{scanUsecase: scanUsecase}
}

// CreateScan ingests a scan report
// POST /api/v1/scans
func (h *ScanHandler) CreateScan(c *gin.Context) {
	var input entities.CreateScanResultInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.ErrMissingCredentials)
		return
	}

	scan, err := h.scanUsecase.Create(c.Request.Context(), principal.User.ID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, scan)
}

// GetScan fetches one scan report
// GET /api/v1/scans/:id
func (h *ScanHandler) GetScan(c *gin.Context) {
	scanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid scan id"))
		return
	}

	scan, err := h.scanUsecase.GetByID(c.Request.Context(), scanID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, scan)
}

// ListScans lists scan reports, newest first
// GET /api/v1/scans?image=&page=&limit=
func (h *ScanHandler) ListScans(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	params := utils.GetPaginationParams(page, limit)

	scans, total, err := h.scanUsecase.List(c.Request.Context(), c.Query("image"), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"scans":      scans,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}
