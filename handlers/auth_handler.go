package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/url"

	"tastings-with-tay/helper"
	"tastings-with-tay/middleware"
	"tastings-with-tay/models"
	"tastings-with-tay/services"

	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	authService      services.AuthService
	googleService    services.GoogleService
	frontendRedirect string
	Helper           *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, googleService services.GoogleService, frontendRedirect string, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{
		authService:      authService,
		googleService:    googleService,
		frontendRedirect: frontendRedirect,
		Helper:           h,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	response, err := h.authService.Register(req, c.Request.UserAgent())
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Register success", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	response, err := h.authService.Login(req, c.Request.UserAgent())
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Login success", response)
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GoogleStart redirects the browser to Google's consent page.
func (h *AuthHandler) GoogleStart(c *gin.Context) {
	if !h.googleService.Enabled() {
		h.Helper.SendNotFoundError(c, "Google sign-in is not configured", h.Helper.EmptyJsonMap())
		return
	}

	state, err := randomState()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.SetCookie(oauthStateCookie, state, 300, "/", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusFound, h.googleService.AuthCodeURL(state))
}

// GoogleCallback finishes the code exchange and opens a session. With a
// frontend redirect configured the token travels in the query string,
// otherwise it is returned as JSON.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if !h.googleService.Enabled() {
		h.Helper.SendNotFoundError(c, "Google sign-in is not configured", h.Helper.EmptyJsonMap())
		return
	}

	state := c.Query("state")
	code := c.Query("code")
	if code == "" || state == "" {
		h.Helper.SendBadRequest(c, "Missing code or state", h.Helper.EmptyJsonMap())
		return
	}

	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || cookieState != state {
		h.Helper.SendBadRequest(c, "Invalid oauth state", h.Helper.EmptyJsonMap())
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", c.Request.TLS != nil, true)

	identity, err := h.googleService.Exchange(c.Request.Context(), code)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	response, err := h.authService.SignInWithGoogle(*identity, c.Request.UserAgent())
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	if h.frontendRedirect == "" {
		h.Helper.SendSuccess(c, "Login success", response)
		return
	}
	c.Redirect(http.StatusFound, h.frontendRedirect+"?token="+url.QueryEscape(response.Token))
}

func (h *AuthHandler) GetSession(c *gin.Context) {
	session, err := h.authService.GetSession(middleware.CurrentPrincipal(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Session loaded", session)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(middleware.CurrentPrincipal(c)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Signed out", h.Helper.EmptyJsonMap())
}

func (h *AuthHandler) GetUsers(c *gin.Context) {
	var params models.ListParams
	if !h.Helper.BindQuery(c, &params) {
		return
	}

	page, err := h.authService.GetUsers(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", page)
}

func (h *AuthHandler) UpdateRole(c *gin.Context) {
	id, ok := h.Helper.ParamID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateRoleRequest
	if !h.Helper.BindAndValidate(c, &req) {
		return
	}

	user, err := h.authService.UpdateRole(id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Role updated", user)
}
