package handlers

import (
	"strconv"

	"tastings-with-tay/helper"
	"tastings-with-tay/models"
	"tastings-with-tay/services"

	"github.com/gin-gonic/gin"
)

type WineHandler struct {
	wineService services.WineService
	Helper      *helper.HTTPHelper
}

func NewWineHandler(wineService services.WineService, h *helper.HTTPHelper) *WineHandler {
	return &WineHandler{wineService: wineService, Helper: h}
}

func (h *WineHandler) GetPublicWines(c *gin.Context) {
	h.list(c, true)
}

func (h *WineHandler) GetWines(c *gin.Context) {
	h.list(c, false)
}

func (h *WineHandler) list(c *gin.Context, isPublic bool) {
	var params models.WineListParams
	if !h.Helper.BindQuery(c, &params) {
		return
	}

	page, err := h.wineService.GetWines(params, isPublic)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", page)
}

func (h *WineHandler) GetFeatured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	wines, err := h.wineService.GetFeatured(limit)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", wines)
}

func (h *WineHandler) GetBySlug(c *gin.Context) {
	wine, err := h.wineService.GetBySlug(c.Param("slug"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", wine)
}

func (h *WineHandler) GetWine(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	wine, err := h.wineService.GetWine(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", wine)
}

func (h *WineHandler) CreateWine(c *gin.Context) {
	var req models.CreateWineRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	wine, err := h.wineService.CreateWine(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Wine created successfully", wine)
}

func (h *WineHandler) UpdateWine(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateWineRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	wine, err := h.wineService.UpdateWine(id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Wine updated successfully", wine)
}

func (h *WineHandler) DeleteWine(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.wineService.DeleteWine(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Wine deleted successfully", h.Helper.EmptyJsonMap())
}
