package handlers

import (
	"strconv"

	"tastings-with-tay/helper"
	"tastings-with-tay/models"
	"tastings-with-tay/services"

	"github.com/gin-gonic/gin"
)

type CollectionHandler struct {
	collectionService services.CollectionService
	Helper            *helper.HTTPHelper
}

func NewCollectionHandler(collectionService services.CollectionService, h *helper.HTTPHelper) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService, Helper: h}
}

func (h *CollectionHandler) GetPublicCollections(c *gin.Context) {
	h.list(c, true)
}

func (h *CollectionHandler) GetCollections(c *gin.Context) {
	h.list(c, false)
}

func (h *CollectionHandler) list(c *gin.Context, isPublic bool) {
	var params models.CollectionListParams
	if !h.Helper.BindQuery(c, &params) {
		return
	}

	page, err := h.collectionService.GetCollections(params, isPublic)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", page)
}

func (h *CollectionHandler) GetFeatured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	collections, err := h.collectionService.GetFeatured(limit)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", collections)
}

func (h *CollectionHandler) GetBySlug(c *gin.Context) {
	collection, err := h.collectionService.GetBySlug(c.Param("slug"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", collection)
}

func (h *CollectionHandler) GetCollection(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	collection, err := h.collectionService.GetCollection(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", collection)
}

func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	var req models.CreateCollectionRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	collection, err := h.collectionService.CreateCollection(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Collection created successfully", collection)
}

func (h *CollectionHandler) UpdateCollection(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateCollectionRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	collection, err := h.collectionService.UpdateCollection(id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Collection updated successfully", collection)
}

func (h *CollectionHandler) DeleteCollection(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.collectionService.DeleteCollection(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Collection deleted successfully", h.Helper.EmptyJsonMap())
}

func (h *CollectionHandler) AddRecipe(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.AddCollectionRecipeRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	if err := h.collectionService.AddRecipe(id, req); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Recipe added to collection", h.Helper.EmptyJsonMap())
}

func (h *CollectionHandler) MoveRecipe(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}
	recipeID, ok := h.Helper.ParamID(c, "recipeId")
	if !ok {
		return
	}

	var req models.UpdateMemberOrderRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	if err := h.collectionService.MoveRecipe(id, recipeID, req); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Recipe moved", h.Helper.EmptyJsonMap())
}

func (h *CollectionHandler) RemoveRecipe(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}
	recipeID, ok := h.Helper.ParamID(c, "recipeId")
	if !ok {
		return
	}

	if err := h.collectionService.RemoveRecipe(id, recipeID); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Recipe removed from collection", h.Helper.EmptyJsonMap())
}

func (h *CollectionHandler) AddWine(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.AddCollectionWineRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	if err := h.collectionService.AddWine(id, req); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Wine added to collection", h.Helper.EmptyJsonMap())
}

func (h *CollectionHandler) MoveWine(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}
	wineID, ok := h.Helper.ParamID(c, "wineId")
	if !ok {
		return
	}

	var req models.UpdateMemberOrderRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	if err := h.collectionService.MoveWine(id, wineID, req); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Wine moved", h.Helper.EmptyJsonMap())
}

func (h *CollectionHandler) RemoveWine(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}
	wineID, ok := h.Helper.ParamID(c, "wineId")
	if !ok {
		return
	}

	if err := h.collectionService.RemoveWine(id, wineID); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Wine removed from collection", h.Helper.EmptyJsonMap())
}
