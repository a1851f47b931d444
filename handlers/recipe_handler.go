package handlers

import (
	"strconv"

	"tastings-with-tay/helper"
	"tastings-with-tay/models"
	"tastings-with-tay/services"

	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	recipeService services.RecipeService
	Helper        *helper.HTTPHelper
}

func NewRecipeHandler(recipeService services.RecipeService, h *helper.HTTPHelper) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService, Helper: h}
}

func (h *RecipeHandler) GetPublicRecipes(c *gin.Context) {
	h.list(c, true)
}

func (h *RecipeHandler) GetRecipes(c *gin.Context) {
	h.list(c, false)
}

func (h *RecipeHandler) list(c *gin.Context, isPublic bool) {
	var params models.RecipeListParams
	if !h.Helper.BindQuery(c, &params) {
		return
	}

	page, err := h.recipeService.GetRecipes(params, isPublic)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", page)
}

func (h *RecipeHandler) GetFeatured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	recipes, err := h.recipeService.GetFeatured(limit)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", recipes)
}

func (h *RecipeHandler) GetBySlug(c *gin.Context) {
	recipe, err := h.recipeService.GetBySlug(c.Param("slug"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", recipe)
}

func (h *RecipeHandler) RecordView(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.recipeService.RecordView(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "View recorded", h.Helper.EmptyJsonMap())
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipe(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req models.CreateRecipeRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	recipe, err := h.recipeService.CreateRecipe(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Recipe created successfully", recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateRecipeRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Recipe updated successfully", recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Recipe deleted successfully", h.Helper.EmptyJsonMap())
}
