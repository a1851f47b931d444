package handlers

import (
	"tastings-with-tay/helper"
	"tastings-with-tay/models"
	"tastings-with-tay/services"

	"github.com/gin-gonic/gin"
)

type SubscriberHandler struct {
	subscriberService services.SubscriberService
	Helper            *helper.HTTPHelper
}

func NewSubscriberHandler(subscriberService services.SubscriberService, h *helper.HTTPHelper) *SubscriberHandler {
	return &SubscriberHandler{subscriberService: subscriberService, Helper: h}
}

func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	result, err := h.subscriberService.Subscribe(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	switch {
	case result.AlreadySubscribed:
		h.Helper.SendSuccess(c, "Already subscribed", result)
	case result.Reactivated:
		h.Helper.SendSuccess(c, "Welcome back", result)
	default:
		h.Helper.SendCreated(c, "Subscribed successfully", result)
	}
}

func (h *SubscriberHandler) Unsubscribe(c *gin.Context) {
	var req models.UnsubscribeRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	subscriber, err := h.subscriberService.Unsubscribe(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Unsubscribed successfully", subscriber)
}

func (h *SubscriberHandler) GetSubscribers(c *gin.Context) {
	var params models.SubscriberListParams
	if !h.Helper.BindQuery(c, &params) {
		return
	}

	page, err := h.subscriberService.GetSubscribers(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", page)
}

func (h *SubscriberHandler) GetStats(c *gin.Context) {
	stats, err := h.subscriberService.GetStats()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", stats)
}

func (h *SubscriberHandler) DeleteSubscriber(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.subscriberService.DeleteSubscriber(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Subscriber deleted successfully", h.Helper.EmptyJsonMap())
}
