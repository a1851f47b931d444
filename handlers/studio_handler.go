package handlers

import (
	"fmt"
	"net/http"

	"tastings-with-tay/helper"
	"tastings-with-tay/services"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20

// StudioHandler carries the admin dashboard and image uploads.
type StudioHandler struct {
	dashboardService services.DashboardService
	uploadService    services.UploadService
	Helper           *helper.HTTPHelper
}

func NewStudioHandler(dashboardService services.DashboardService, uploadService services.UploadService, h *helper.HTTPHelper) *StudioHandler {
	return &StudioHandler{dashboardService: dashboardService, uploadService: uploadService, Helper: h}
}

func (h *StudioHandler) GetDashboard(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", stats)
}

// Upload stores the multipart "file" field as a JPEG plus thumbnail.
func (h *StudioHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.Helper.SendBadRequest(c, "Missing or oversized file", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.Helper.SendServiceError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer file.Close()

	result, err := h.uploadService.StoreImage(file)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Image uploaded", result)
}
