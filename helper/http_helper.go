package helper

import (
	"errors"
	"net/http"
	"strconv"

	"tastings-with-tay/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
)

const (
	textError = `error`
	textOk    = `ok`
)

// ResponseHelper ...
type ResponseHelper struct {
	C        *gin.Context
	Status   string
	Message  interface{}
	Data     interface{}
	Code     int
	CodeType string
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper builds a helper with the shared validator and its English translator.
func NewHTTPHelper() *HTTPHelper {
	v, trans := NewValidator()
	return &HTTPHelper{Validate: v, Translator: trans}
}

// GetStatusCode ...
// Maps a service error onto the HTTP status and code type reported to callers.
func (u *HTTPHelper) GetStatusCode(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, `success`
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest, `badRequest`
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized, `unAuthorized`
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden, `forbidden`
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, `notFound`
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict, `conflict`
	default:
		return http.StatusInternalServerError, `internalError`
	}
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message interface{}, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType}
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, message string, data interface{}, code int, codeType string) error {
	res := u.SetResponse(c, textError, message, data, code, codeType)

	return u.SendResponse(res)
}

// SendServiceError ...
// Send the response matching an error returned by a service.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) error {
	code, codeType := u.GetStatusCode(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		c.Error(err)
		message = "internal server error"
	}
	return u.SendError(c, message, u.EmptyJsonMap(), code, codeType)
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, http.StatusBadRequest, `badRequest`)
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) error {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := err.Field()
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	res := u.SetResponse(c, textError, errorResponse, u.EmptyJsonMap(), http.StatusBadRequest, `validationError`)
	return u.SendResponse(res)
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, http.StatusUnauthorized, `unAuthorized`)
}

// SendForbiddenError ...
// Send forbidden response to consumers.
func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, http.StatusForbidden, `forbidden`)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, http.StatusNotFound, `notFound`)
}

// SendTooManyRequests ...
func (u *HTTPHelper) SendTooManyRequests(c *gin.Context, message string) error {
	return u.SendError(c, message, u.EmptyJsonMap(), http.StatusTooManyRequests, `tooManyRequests`)
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textOk, message, data, http.StatusOK, `success`)

	return u.SendResponse(res)
}

// SendCreated ...
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textOk, message, data, http.StatusCreated, `success`)

	return u.SendResponse(res)
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(res ResponseHelper) error {
	if s, ok := res.Message.(string); ok && len(s) == 0 {
		res.Message = `success`
	}

	res.C.JSON(res.Code, map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
	return nil
}

// BindAndValidate decodes the JSON body into req and validates it. It
// writes the error response itself and reports whether the handler may go on.
func (u *HTTPHelper) BindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		u.SendBadRequest(c, "Malformed request body", err.Error())
		return false
	}
	if err := u.Validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			u.SendValidationError(c, validationErrors)
			return false
		}
		u.SendBadRequest(c, err.Error(), u.EmptyJsonMap())
		return false
	}
	return true
}

// BindQuery decodes query string parameters into params.
func (u *HTTPHelper) BindQuery(c *gin.Context, params interface{}) bool {
	if err := c.ShouldBindQuery(params); err != nil {
		u.SendBadRequest(c, "Invalid query parameters", err.Error())
		return false
	}
	return true
}

// ParamID parses a positive numeric path parameter.
func (u *HTTPHelper) ParamID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		u.SendBadRequest(c, "Invalid "+Underscore(name), u.EmptyJsonMap())
		return 0, false
	}
	return uint(id), true
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}
