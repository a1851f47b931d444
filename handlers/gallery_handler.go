package handlers

import (
	"tastings-with-tay/helper"
	"tastings-with-tay/models"
	"tastings-with-tay/services"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	galleryService services.GalleryService
	Helper         *helper.HTTPHelper
}

func NewGalleryHandler(galleryService services.GalleryService, h *helper.HTTPHelper) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService, Helper: h}
}

func (h *GalleryHandler) GetPublicImages(c *gin.Context) {
	h.list(c, true)
}

func (h *GalleryHandler) GetImages(c *gin.Context) {
	h.list(c, false)
}

func (h *GalleryHandler) list(c *gin.Context, isPublic bool) {
	var params models.GalleryListParams
	if !h.Helper.BindQuery(c, &params) {
		return
	}

	page, err := h.galleryService.GetImages(params, isPublic)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", page)
}

func (h *GalleryHandler) CreateImage(c *gin.Context) {
	var req models.CreateGalleryImageRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	image, err := h.galleryService.CreateImage(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Image added successfully", image)
}

func (h *GalleryHandler) UpdateImage(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateGalleryImageRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	image, err := h.galleryService.UpdateImage(id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Image updated successfully", image)
}

func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.galleryService.DeleteImage(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Image deleted successfully", h.Helper.EmptyJsonMap())
}

func (h *GalleryHandler) Reorder(c *gin.Context) {
	var req models.ReorderRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	if err := h.galleryService.Reorder(req); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Gallery reordered", h.Helper.EmptyJsonMap())
}
