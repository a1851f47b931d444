package handlers

import (
	"tastings-with-tay/helper"
	"tastings-with-tay/middleware"
	"tastings-with-tay/models"
	"tastings-with-tay/services"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService services.RatingService
	Helper        *helper.HTTPHelper
}

func NewRatingHandler(ratingService services.RatingService, h *helper.HTTPHelper) *RatingHandler {
	return &RatingHandler{ratingService: ratingService, Helper: h}
}

func (h *RatingHandler) GetAverage(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	summary, err := h.ratingService.GetAverage(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", summary)
}

func (h *RatingHandler) GetReviews(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.ratingService.GetReviews(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", reviews)
}

func (h *RatingHandler) RateRecipe(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.RateRecipeRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	rating, err := h.ratingService.RateRecipe(id, middleware.CurrentPrincipal(c).UserID, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Rating saved", rating)
}

// GetMine returns the caller's rating, or null data when they have not rated.
func (h *RatingHandler) GetMine(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	rating, err := h.ratingService.GetMine(id, middleware.CurrentPrincipal(c).UserID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", rating)
}

func (h *RatingHandler) DeleteMine(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.ratingService.DeleteMine(id, middleware.CurrentPrincipal(c).UserID); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Rating removed", h.Helper.EmptyJsonMap())
}

func (h *RatingHandler) DeleteRating(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "ratingId")
	if !ok {
		return
	}

	if err := h.ratingService.DeleteRating(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Rating deleted", h.Helper.EmptyJsonMap())
}
