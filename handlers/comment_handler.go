package handlers

import (
	"tastings-with-tay/helper"
	"tastings-with-tay/middleware"
	"tastings-with-tay/models"
	"tastings-with-tay/services"

	"github.com/gin-gonic/gin"
)

// CommentHandler serves the comment threads of one content family. The
// entity is taken from the :id path parameter.
type CommentHandler[T models.Comment] struct {
	commentService services.CommentService[T]
	Helper         *helper.HTTPHelper
}

func NewCommentHandler[T models.Comment](commentService services.CommentService[T], h *helper.HTTPHelper) *CommentHandler[T] {
	return &CommentHandler[T]{commentService: commentService, Helper: h}
}

func (h *CommentHandler[T]) GetThread(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	thread, err := h.commentService.GetThread(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", thread)
}

func (h *CommentHandler[T]) AddComment(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	comment, err := h.commentService.AddComment(id, middleware.CurrentPrincipal(c).UserID, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Comment posted", comment)
}

func (h *CommentHandler[T]) DeleteOwn(c *gin.Context) {
	commentID, ok := h.Helper.ParamID(c, "commentId")
	if !ok {
		return
	}

	if err := h.commentService.DeleteOwn(commentID, middleware.CurrentPrincipal(c).UserID); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment deleted", h.Helper.EmptyJsonMap())
}

func (h *CommentHandler[T]) GetAll(c *gin.Context) {
	var params models.ListParams
	if !h.Helper.BindQuery(c, &params) {
		return
	}

	page, err := h.commentService.GetAll(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", page)
}

func (h *CommentHandler[T]) DeleteComment(c *gin.Context) {
	commentID, ok := h.Helper.ParamID(c, "commentId")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(commentID); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment deleted", h.Helper.EmptyJsonMap())
}
