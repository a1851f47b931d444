package handlers

import (
	"strconv"

	"tastings-with-tay/helper"
	"tastings-with-tay/models"
	"tastings-with-tay/services"

	"github.com/gin-gonic/gin"
)

type ExperimentHandler struct {
	experimentService services.ExperimentService
	Helper            *helper.HTTPHelper
}

func NewExperimentHandler(experimentService services.ExperimentService, h *helper.HTTPHelper) *ExperimentHandler {
	return &ExperimentHandler{experimentService: experimentService, Helper: h}
}

func (h *ExperimentHandler) GetPublicExperiments(c *gin.Context) {
	h.list(c, true)
}

func (h *ExperimentHandler) GetExperiments(c *gin.Context) {
	h.list(c, false)
}

func (h *ExperimentHandler) list(c *gin.Context, isPublic bool) {
	var params models.ExperimentListParams
	if !h.Helper.BindQuery(c, &params) {
		return
	}

	page, err := h.experimentService.GetExperiments(params, isPublic)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", page)
}

func (h *ExperimentHandler) GetFeatured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	experiments, err := h.experimentService.GetFeatured(limit)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", experiments)
}

func (h *ExperimentHandler) GetBySlug(c *gin.Context) {
	experiment, err := h.experimentService.GetBySlug(c.Param("slug"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", experiment)
}

func (h *ExperimentHandler) GetExperiment(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	experiment, err := h.experimentService.GetExperiment(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", experiment)
}

func (h *ExperimentHandler) CreateExperiment(c *gin.Context) {
	var req models.CreateExperimentRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	experiment, err := h.experimentService.CreateExperiment(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Experiment created successfully", experiment)
}

func (h *ExperimentHandler) UpdateExperiment(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateExperimentRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	experiment, err := h.experimentService.UpdateExperiment(id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Experiment updated successfully", experiment)
}

func (h *ExperimentHandler) DeleteExperiment(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.experimentService.DeleteExperiment(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Experiment deleted successfully", h.Helper.EmptyJsonMap())
}

func (h *ExperimentHandler) AddEntry(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.CreateEntryRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	entry, err := h.experimentService.AddEntry(id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Entry added successfully", entry)
}

func (h *ExperimentHandler) UpdateEntry(c *gin.Context) {
	entryID, ok := h.Helper.ParamID(c, "entryId")
	if !ok {
		return
	}

	var req models.UpdateEntryRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	entry, err := h.experimentService.UpdateEntry(entryID, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Entry updated successfully", entry)
}

func (h *ExperimentHandler) DeleteEntry(c *gin.Context) {
	entryID, ok := h.Helper.ParamID(c, "entryId")
	if !ok {
		return
	}

	if err := h.experimentService.DeleteEntry(entryID); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Entry deleted successfully", h.Helper.EmptyJsonMap())
}

func (h *ExperimentHandler) Graduate(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.GraduateRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	experiment, err := h.experimentService.Graduate(id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Experiment graduated", experiment)
}
