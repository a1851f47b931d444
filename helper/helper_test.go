package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tastings-with-tay/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/go-playground/validator.v9"
)

func TestMakeSlug(t *testing.T) {
	cases := map[string]string{
		"Crème Brûlée for Two":     "creme-brulee-for-two",
		"  Mac & Cheese  ":         "mac-and-cheese",
		"Rosé -- Summer Edition!!": "rose-summer-edition",
		"2019 Pinot Noir":          "2019-pinot-noir",
		"!!!":                      "untitled",
		"":                         "untitled",
	}
	for in, want := range cases {
		assert.Equal(t, want, MakeSlug(in), "MakeSlug(%q)", in)
	}
}

func TestIsSlug(t *testing.T) {
	assert.True(t, IsSlug("sourdough-starter"))
	assert.True(t, IsSlug("a1"))
	assert.False(t, IsSlug("Sourdough"))
	assert.False(t, IsSlug("-leading"))
	assert.False(t, IsSlug("double--dash"))
	assert.False(t, IsSlug(""))
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "prep_time", Underscore("PrepTime"))
	assert.Equal(t, "entry_id", Underscore("entryId"))
	assert.Equal(t, "id", Underscore("id"))
	assert.Equal(t, "recipe_id", Underscore("recipeId"))
}

func TestGetStatusCode(t *testing.T) {
	h := NewHTTPHelper()

	cases := []struct {
		err      error
		code     int
		codeType string
	}{
		{nil, http.StatusOK, "success"},
		{fmt.Errorf("%w: bad tag", models.ErrInvalidInput), http.StatusBadRequest, "badRequest"},
		{models.ErrUnauthorized, http.StatusUnauthorized, "unAuthorized"},
		{fmt.Errorf("wrap: %w", models.ErrForbidden), http.StatusForbidden, "forbidden"},
		{fmt.Errorf("recipe %w", models.ErrNotFound), http.StatusNotFound, "notFound"},
		{models.ErrConflict, http.StatusConflict, "conflict"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "internalError"},
	}
	for _, tc := range cases {
		code, codeType := h.GetStatusCode(tc.err)
		assert.Equal(t, tc.code, code, "%v", tc.err)
		assert.Equal(t, tc.codeType, codeType, "%v", tc.err)
	}
}

type envelope struct {
	Code        int             `json:"code"`
	CodeType    string          `json:"code_type"`
	CodeMessage json.RawMessage `json:"code_message"`
	Data        json.RawMessage `json:"data"`
}

func TestSendServiceErrorHidesInternalMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	h.SendServiceError(c, errors.New("pq: connection refused"))

	var res envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Equal(t, "internalError", res.CodeType)
	assert.JSONEq(t, `"internal server error"`, string(res.CodeMessage))
	assert.Len(t, c.Errors, 1)
}

type sampleRequest struct {
	Title string `json:"title" validate:"required,max=5"`
	Slug  string `json:"slug" validate:"omitempty,slug"`
}

func TestSendValidationErrorUsesJSONFieldNames(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper()

	err := h.Validate.Struct(sampleRequest{Title: "too long title", Slug: "Not A Slug"})
	require.Error(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var res envelope
	h.SendValidationError(c, err.(validator.ValidationErrors))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validationError", res.CodeType)

	var fields map[string][]string
	require.NoError(t, json.Unmarshal(res.CodeMessage, &fields))
	assert.Contains(t, fields, "title")
	assert.Equal(t, []string{"slug must contain only lowercase letters, digits and dashes"}, fields["slug"])
}
