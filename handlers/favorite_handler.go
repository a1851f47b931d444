package handlers

import (
	"tastings-with-tay/helper"
	"tastings-with-tay/middleware"
	"tastings-with-tay/models"
	"tastings-with-tay/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService services.FavoriteService
	Helper          *helper.HTTPHelper
}

func NewFavoriteHandler(favoriteService services.FavoriteService, h *helper.HTTPHelper) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService, Helper: h}
}

func (h *FavoriteHandler) ToggleRecipe(c *gin.Context) {
	h.toggle(c, h.favoriteService.ToggleRecipe)
}

func (h *FavoriteHandler) ToggleWine(c *gin.Context) {
	h.toggle(c, h.favoriteService.ToggleWine)
}

func (h *FavoriteHandler) RecipeStatus(c *gin.Context) {
	h.status(c, h.favoriteService.RecipeStatus)
}

func (h *FavoriteHandler) WineStatus(c *gin.Context) {
	h.status(c, h.favoriteService.WineStatus)
}

func (h *FavoriteHandler) toggle(c *gin.Context, fn func(userID, id uint) (*models.FavoriteStatus, error)) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	status, err := fn(middleware.CurrentPrincipal(c).UserID, id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	message := "Removed from favorites"
	if status.Favorited {
		message = "Added to favorites"
	}
	h.Helper.SendSuccess(c, message, status)
}

func (h *FavoriteHandler) status(c *gin.Context, fn func(userID, id uint) (*models.FavoriteStatus, error)) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	status, err := fn(middleware.CurrentPrincipal(c).UserID, id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", status)
}

func (h *FavoriteHandler) GetRecipes(c *gin.Context) {
	recipes, err := h.favoriteService.GetRecipes(middleware.CurrentPrincipal(c).UserID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", recipes)
}

func (h *FavoriteHandler) GetWines(c *gin.Context) {
	wines, err := h.favoriteService.GetWines(middleware.CurrentPrincipal(c).UserID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", wines)
}
