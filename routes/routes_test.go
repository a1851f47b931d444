package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"tastings-with-tay/config"
	"tastings-with-tay/internal/testdb"
	"tastings-with-tay/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type response struct {
	Code        int             `json:"code"`
	CodeMessage interface{}     `json:"code_message"`
	CodeType    string          `json:"code_type"`
	Data        json.RawMessage `json:"data"`
}

type APITestSuite struct {
	suite.Suite
	router      *gin.Engine
	adminToken  string
	memberToken string
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		BaseURL:          "http://localhost:8080",
		AuthSecret:       "test-secret",
		SessionTTL:       time.Hour,
		AdminEmails:      []string{"tay@example.com"},
		UploadDir:        suite.T().TempDir(),
		PublicWriteRPS:   100,
		PublicWriteBurst: 100,
	}
	suite.router, _ = NewRouter(testdb.Open(suite.T()), cfg)

	suite.adminToken = suite.register("Tay", "tay@example.com")
	suite.memberToken = suite.register("Guest", "guest@example.com")
}

func (suite *APITestSuite) register(name, email string) string {
	w := suite.do(http.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "password123",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var auth models.AuthResponse
	suite.decode(w, &auth)
	return auth.Token
}

func (suite *APITestSuite) do(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		suite.Require().NoError(json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// decode unpacks the envelope and, when out is non-nil, its data.
func (suite *APITestSuite) decode(w *httptest.ResponseRecorder, out interface{}) response {
	var res response
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	if out != nil {
		suite.Require().NoError(json.Unmarshal(res.Data, out))
	}
	return res
}

func (suite *APITestSuite) createRecipe(title string, published bool) models.Recipe {
	w := suite.do(http.MethodPost, "/api/admin/recipes", suite.adminToken, models.CreateRecipeRequest{
		Title:        title,
		Category:     models.CategoryDinner,
		Difficulty:   models.DifficultyEasy,
		Instructions: []string{"Cook it"},
		Published:    published,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var recipe models.Recipe
	suite.decode(w, &recipe)
	return recipe
}

func (suite *APITestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"healthy"}`, w.Body.String())
}

func (suite *APITestSuite) TestDraftIsHiddenUntilPublished() {
	recipe := suite.createRecipe("Midnight Ramen", false)
	suite.Equal("midnight-ramen", recipe.Slug)

	w := suite.do(http.MethodGet, "/api/recipes/slug/midnight-ramen", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	res := suite.decode(w, nil)
	suite.Equal("success", res.CodeType)
	suite.JSONEq(`null`, string(res.Data))

	var page models.Page[models.Recipe]
	suite.decode(suite.do(http.MethodGet, "/api/recipes", "", nil), &page)
	suite.Zero(page.Total)

	w = suite.do(http.MethodPut, "/api/admin/recipes/"+itoa(recipe.ID), suite.adminToken, map[string]interface{}{"published": true})
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	var found models.Recipe
	suite.decode(suite.do(http.MethodGet, "/api/recipes/slug/midnight-ramen", "", nil), &found)
	suite.Equal(recipe.ID, found.ID)
	suite.Equal([]string{"Cook it"}, []string(found.Instructions))

	suite.decode(suite.do(http.MethodGet, "/api/recipes?search=ramen", "", nil), &page)
	suite.EqualValues(1, page.Total)
}

func (suite *APITestSuite) TestAdminRoutesNeedAdmin() {
	payload := map[string]interface{}{"title": "Nope", "category": "dinner", "difficulty": "easy"}

	w := suite.do(http.MethodPost, "/api/admin/recipes", "", payload)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("unAuthorized", suite.decode(w, nil).CodeType)

	w = suite.do(http.MethodPost, "/api/admin/recipes", suite.memberToken, payload)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodGet, "/api/admin/dashboard", suite.memberToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	var stats models.DashboardStats
	w = suite.do(http.MethodGet, "/api/admin/dashboard", suite.adminToken, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.decode(w, &stats)
	suite.Zero(stats.Recipes.Total)
}

func (suite *APITestSuite) TestValidationUsesFieldNames() {
	w := suite.do(http.MethodPost, "/api/admin/recipes", suite.adminToken, map[string]interface{}{
		"category":   "brunch",
		"difficulty": "easy",
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	res := suite.decode(w, nil)
	suite.Equal("validationError", res.CodeType)
	fields, ok := res.CodeMessage.(map[string]interface{})
	suite.Require().True(ok)
	suite.Contains(fields, "title")
	suite.Contains(fields, "category")
}

func (suite *APITestSuite) TestBadIDIsRejected() {
	w := suite.do(http.MethodGet, "/api/admin/recipes/abc", suite.adminToken, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/admin/recipes/999", suite.adminToken, nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("notFound", suite.decode(w, nil).CodeType)
}

func (suite *APITestSuite) TestCommentsAreSanitized() {
	recipe := suite.createRecipe("Peach Cobbler", true)
	path := "/api/comments/recipes/" + itoa(recipe.ID)

	w := suite.do(http.MethodPost, path, "", map[string]string{"content": "hi"})
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodPost, path, suite.memberToken, map[string]string{
		"content": `<img src=x onerror=alert(1)>So <i>good</i>`,
	})
	suite.Equal(http.StatusCreated, w.Code, w.Body.String())

	var thread []models.CommentView
	suite.decode(suite.do(http.MethodGet, path, "", nil), &thread)
	suite.Require().Len(thread, 1)
	suite.Equal("So good", thread[0].Content)
	suite.Equal("Guest", thread[0].Author.Name)

	w = suite.do(http.MethodDelete, "/api/comments/recipes/comment/"+itoa(thread[0].ID), suite.adminToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodDelete, "/api/comments/recipes/comment/"+itoa(thread[0].ID), suite.memberToken, nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *APITestSuite) TestCommentTextRoundTrips() {
	recipe := suite.createRecipe("Sourdough", true)
	path := "/api/comments/recipes/" + itoa(recipe.ID)

	w := suite.do(http.MethodPost, path, suite.memberToken, map[string]string{"content": "Tom's bread & butter"})
	suite.Equal(http.StatusCreated, w.Code, w.Body.String())

	// Escaping would push this past the length limit.
	long := strings.Repeat("&", 1500)
	w = suite.do(http.MethodPost, path, suite.memberToken, map[string]string{"content": long})
	suite.Equal(http.StatusCreated, w.Code, w.Body.String())

	var thread []models.CommentView
	suite.decode(suite.do(http.MethodGet, path, "", nil), &thread)
	suite.Require().Len(thread, 2)
	contents := []string{thread[0].Content, thread[1].Content}
	suite.ElementsMatch([]string{"Tom's bread & butter", long}, contents)
}

func (suite *APITestSuite) TestFavoritesAndRatings() {
	recipe := suite.createRecipe("Carrot Cake", true)
	id := itoa(recipe.ID)

	w := suite.do(http.MethodPost, "/api/favorites/recipes/"+id+"/toggle", suite.memberToken, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Added to favorites", suite.decode(w, nil).CodeMessage)

	var status models.FavoriteStatus
	suite.decode(suite.do(http.MethodGet, "/api/favorites/recipes/"+id, suite.memberToken, nil), &status)
	suite.True(status.Favorited)

	w = suite.do(http.MethodGet, "/api/ratings/recipes/"+id+"/mine", suite.memberToken, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`null`, string(suite.decode(w, nil).Data))

	w = suite.do(http.MethodPost, "/api/ratings/recipes/"+id, suite.memberToken, map[string]interface{}{"rating": 4})
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.do(http.MethodPost, "/api/ratings/recipes/"+id, suite.memberToken, map[string]interface{}{"rating": 9})
	suite.Equal(http.StatusBadRequest, w.Code)

	var summary models.RatingSummary
	suite.decode(suite.do(http.MethodGet, "/api/ratings/recipes/"+id+"/average", "", nil), &summary)
	suite.Equal(models.RatingSummary{Average: 4, Count: 1}, summary)
}

func (suite *APITestSuite) TestSubscribe() {
	w := suite.do(http.MethodPost, "/api/subscribers/subscribe", "", map[string]string{"email": "fan@example.com"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodPost, "/api/subscribers/subscribe", "", map[string]string{"email": "FAN@example.com"})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Already subscribed", suite.decode(w, nil).CodeMessage)

	w = suite.do(http.MethodPost, "/api/subscribers/subscribe", "", map[string]string{"email": "not-an-email"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/subscribers/unsubscribe", "", map[string]string{"token": "3b241101-e2bb-4255-8caf-4136c566a962"})
	suite.Equal(http.StatusNotFound, w.Code)

	var stats models.SubscriberStats
	suite.decode(suite.do(http.MethodGet, "/api/admin/subscribers/stats", suite.adminToken, nil), &stats)
	suite.Equal(models.SubscriberStats{Total: 1, Active: 1}, stats)
}

func (suite *APITestSuite) TestUnsubscribeAndReturn() {
	var created models.SubscribeResult
	w := suite.do(http.MethodPost, "/api/subscribers/subscribe", "", map[string]string{"email": "reader@example.com"})
	suite.Require().Equal(http.StatusCreated, w.Code)
	suite.decode(w, &created)
	suite.Require().NotEmpty(created.UnsubscribeToken)

	var again models.SubscribeResult
	suite.decode(suite.do(http.MethodPost, "/api/subscribers/subscribe", "", map[string]string{"email": "reader@example.com"}), &again)
	suite.True(again.AlreadySubscribed)
	suite.Empty(again.UnsubscribeToken)

	w = suite.do(http.MethodPost, "/api/subscribers/unsubscribe", "", map[string]string{"token": created.UnsubscribeToken})
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	var back models.SubscribeResult
	w = suite.do(http.MethodPost, "/api/subscribers/subscribe", "", map[string]string{"email": "reader@example.com"})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Welcome back", suite.decode(w, &back).CodeMessage)
	suite.True(back.Reactivated)
	suite.Equal(created.Subscriber.ID, back.Subscriber.ID)
	suite.NotEmpty(back.UnsubscribeToken)
	suite.NotEqual(created.UnsubscribeToken, back.UnsubscribeToken)

	// The old token is spent.
	w = suite.do(http.MethodPost, "/api/subscribers/unsubscribe", "", map[string]string{"token": created.UnsubscribeToken})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestRoleChangesReachOpenSessions() {
	var session models.SessionResponse
	suite.decode(suite.do(http.MethodGet, "/api/auth/session", suite.memberToken, nil), &session)
	rolePath := "/api/admin/users/" + itoa(session.User.ID) + "/role"

	w := suite.do(http.MethodPut, rolePath, suite.adminToken, models.UpdateRoleRequest{Role: models.RoleAdmin})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.do(http.MethodGet, "/api/admin/recipes", suite.memberToken, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodPut, rolePath, suite.adminToken, models.UpdateRoleRequest{Role: models.RoleUser})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.do(http.MethodGet, "/api/admin/recipes", suite.memberToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	suite.decode(suite.do(http.MethodGet, "/api/auth/session", suite.memberToken, nil), &session)
	suite.Equal(models.RoleUser, session.Role)
}

func (suite *APITestSuite) TestCollectionMemberOrder() {
	var collection models.Collection
	w := suite.do(http.MethodPost, "/api/admin/collections", suite.adminToken, models.CreateCollectionRequest{Name: "Fall Menu", Published: true})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.decode(w, &collection)

	soup := suite.createRecipe("Squash Soup", true)
	tart := suite.createRecipe("Pear Tart", true)
	members := "/api/admin/collections/" + itoa(collection.ID) + "/recipes"
	for i, recipe := range []models.Recipe{soup, tart} {
		w = suite.do(http.MethodPost, members, suite.adminToken, models.AddCollectionRecipeRequest{RecipeID: recipe.ID, SortOrder: i})
		suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	}

	w = suite.do(http.MethodPut, members+"/"+itoa(soup.ID), suite.adminToken, models.UpdateMemberOrderRequest{SortOrder: 2})
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.do(http.MethodPut, members+"/"+itoa(soup.ID), suite.memberToken, models.UpdateMemberOrderRequest{SortOrder: 0})
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodPut, members+"/999", suite.adminToken, models.UpdateMemberOrderRequest{SortOrder: 0})
	suite.Equal(http.StatusNotFound, w.Code)

	var detail models.CollectionDetail
	suite.decode(suite.do(http.MethodGet, "/api/collections/slug/"+collection.Slug, "", nil), &detail)
	suite.Require().Len(detail.Recipes, 2)
	suite.Equal(tart.ID, detail.Recipes[0].RecipeID)
	suite.Equal(2, detail.Recipes[1].SortOrder)
	suite.Require().NotNil(detail.Recipes[1].Recipe)
	suite.Equal("Squash Soup", detail.Recipes[1].Recipe.Title)
}

func (suite *APITestSuite) TestSessionAndLogout() {
	var session models.SessionResponse
	suite.decode(suite.do(http.MethodGet, "/api/auth/session", suite.adminToken, nil), &session)
	suite.Equal(models.RoleAdmin, session.Role)
	suite.Equal("tay@example.com", session.User.Email)

	w := suite.do(http.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Name: "Again", Email: "guest@example.com", Password: "password123",
	})
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, "/api/auth/logout", suite.memberToken, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/auth/session", suite.memberToken, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodGet, "/api/auth/google", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
