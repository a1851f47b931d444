package repositories

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"tastings-with-tay/internal/testdb"
	"tastings-with-tay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var longAgo = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func seedRecipe(t *testing.T, db *gorm.DB, slug string, published bool, tags ...models.Tag) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		Slug:       slug,
		Title:      slug,
		Category:   models.CategoryDinner,
		Difficulty: models.DifficultyEasy,
		Published:  published,
		Tags:       tags,
	}
	require.NoError(t, NewRecipeRepository(db).Create(recipe))
	return recipe
}

func seedTag(t *testing.T, db *gorm.DB, name string, typ models.TagType) models.Tag {
	t.Helper()
	tag := models.Tag{Name: name, Slug: name, Type: typ}
	require.NoError(t, NewTagRepository(db).Create(&tag))
	return tag
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: email, Email: email, Role: models.RoleUser}
	require.NoError(t, NewUserRepository(db).Create(user))
	return user
}

// backdate pushes updated_at into the past so a later touch is observable.
func backdate(t *testing.T, db *gorm.DB, model interface{}) {
	t.Helper()
	require.NoError(t, db.Model(model).UpdateColumn("updated_at", longAgo).Error)
}

func TestRecipeListPublicOnlySeesPublished(t *testing.T) {
	db := testdb.Open(t)
	repo := NewRecipeRepository(db)

	seedRecipe(t, db, "published-one", true)
	seedRecipe(t, db, "draft-one", false)
	seedRecipe(t, db, "published-two", true)

	params := models.RecipeListParams{ListParams: models.ListParams{Limit: 20}}
	public, total, err := repo.GetList(params, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, r := range public {
		assert.True(t, r.Published)
	}

	all, total, err := repo.GetList(params, false)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, all, 3)

	published := false
	params.Published = &published
	drafts, total, err := repo.GetList(params, false)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "draft-one", drafts[0].Slug)

	// The published filter cannot widen a public read.
	public, _, err = repo.GetList(params, true)
	require.NoError(t, err)
	assert.Len(t, public, 2)
}

func TestRecipeListFilters(t *testing.T) {
	db := testdb.Open(t)
	repo := NewRecipeRepository(db)

	vegan := seedTag(t, db, "vegan", models.TagTypeRecipe)
	seedRecipe(t, db, "lentil-soup", true, vegan)
	seedRecipe(t, db, "beef-stew", true)

	page := models.ListParams{Limit: 20}

	tagged, total, err := repo.GetList(models.RecipeListParams{ListParams: page, Tag: "vegan"}, true)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, tagged, 1)
	assert.Equal(t, "lentil-soup", tagged[0].Slug)
	require.Len(t, tagged[0].Tags, 1)
	assert.Equal(t, "vegan", tagged[0].Tags[0].Slug)

	found, _, err := repo.GetList(models.RecipeListParams{ListParams: page, Search: "  STEW "}, true)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "beef-stew", found[0].Slug)

	paged, total, err := repo.GetList(models.RecipeListParams{ListParams: models.ListParams{Limit: 1, Offset: 1}}, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, paged, 1)
}

func TestRecipeUpdateReplacesTagsAndKeepsOtherFields(t *testing.T) {
	db := testdb.Open(t)
	repo := NewRecipeRepository(db)

	quick := seedTag(t, db, "quick", models.TagTypeRecipe)
	cozy := seedTag(t, db, "cozy", models.TagTypeBoth)
	recipe := seedRecipe(t, db, "ragu", false, quick)
	backdate(t, db, &models.Recipe{ID: recipe.ID})

	require.NoError(t, repo.Update(recipe.ID, nil, &[]models.Tag{cozy}))

	got, err := repo.GetByID(recipe.ID)
	require.NoError(t, err)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "cozy", got.Tags[0].Slug)
	assert.Equal(t, "ragu", got.Title)
	assert.True(t, got.UpdatedAt.After(longAgo))

	require.NoError(t, repo.Update(recipe.ID, map[string]interface{}{"published": true}, nil))
	got, err = repo.GetByID(recipe.ID)
	require.NoError(t, err)
	assert.True(t, got.Published)
	assert.Len(t, got.Tags, 1)
}

func TestRecipeDeleteRemovesDependents(t *testing.T) {
	db := testdb.Open(t)
	repo := NewRecipeRepository(db)
	user := seedUser(t, db, "reader@example.com")
	recipe := seedRecipe(t, db, "tarte-tatin", true)

	_, err := NewRecipeCommentRepository(db).Create(recipe.ID, user.ID, nil, "lovely")
	require.NoError(t, err)
	require.NoError(t, NewRatingRepository(db).Create(&models.RecipeRating{RecipeID: recipe.ID, UserID: user.ID, Rating: 5}))
	_, err = NewFavoriteRepository(db).ToggleRecipe(user.ID, recipe.ID)
	require.NoError(t, err)

	experiment := &models.Experiment{Slug: "apple-trials", Title: "Apple trials", Status: models.StatusGraduated, GraduatedRecipeID: &recipe.ID}
	require.NoError(t, NewExperimentRepository(db).Create(experiment))

	require.NoError(t, repo.Delete(recipe.ID))

	_, err = repo.GetByID(recipe.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	for _, model := range []interface{}{&models.RecipeComment{}, &models.RecipeRating{}, &models.RecipeFavorite{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "%T", model)
	}

	got, err := NewExperimentRepository(db).GetByID(experiment.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GraduatedRecipeID)
}

func TestIncrementViewCountIgnoresDrafts(t *testing.T) {
	db := testdb.Open(t)
	repo := NewRecipeRepository(db)
	live := seedRecipe(t, db, "live", true)
	draft := seedRecipe(t, db, "draft", false)

	touched, err := repo.IncrementViewCount(live.ID)
	require.NoError(t, err)
	assert.True(t, touched)
	_, err = repo.IncrementViewCount(live.ID)
	require.NoError(t, err)

	touched, err = repo.IncrementViewCount(draft.ID)
	require.NoError(t, err)
	assert.False(t, touched)

	touched, err = repo.IncrementViewCount(9999)
	require.NoError(t, err)
	assert.False(t, touched)

	got, err := repo.GetByID(live.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewCount)
}

func TestWineListFilters(t *testing.T) {
	db := testdb.Open(t)
	repo := NewWineRepository(db)

	require.NoError(t, repo.Create(&models.Wine{Slug: "barolo", Name: "Barolo", Winery: "Vietti", Country: "Italy", Type: "red", Published: true}))
	require.NoError(t, repo.Create(&models.Wine{Slug: "sancerre", Name: "Sancerre", Country: "France", Type: "white", Published: true}))
	require.NoError(t, repo.Create(&models.Wine{Slug: "draft-red", Name: "Draft", Country: "Italy", Type: "red"}))

	page := models.ListParams{Limit: 20}

	reds, total, err := repo.GetList(models.WineListParams{ListParams: page, Type: "red"}, true)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "barolo", reds[0].Slug)

	italian, _, err := repo.GetList(models.WineListParams{ListParams: page, Country: "italy"}, false)
	require.NoError(t, err)
	assert.Len(t, italian, 2)

	byWinery, _, err := repo.GetList(models.WineListParams{ListParams: page, Search: "vietti"}, true)
	require.NoError(t, err)
	require.Len(t, byWinery, 1)
	assert.Equal(t, "barolo", byWinery[0].Slug)
}

func TestExperimentEntriesTouchParent(t *testing.T) {
	db := testdb.Open(t)
	repo := NewExperimentRepository(db)

	experiment := &models.Experiment{Slug: "kombucha", Title: "Kombucha", Status: models.StatusInProgress, Published: true}
	require.NoError(t, repo.Create(experiment))
	parent := &models.Experiment{ID: experiment.ID}

	backdate(t, db, parent)
	entry := &models.ExperimentEntry{ExperimentID: experiment.ID, EntryDate: time.Now(), Type: models.EntryNote, Content: "day one"}
	require.NoError(t, repo.CreateEntry(entry))
	got, err := repo.GetByID(experiment.ID)
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(longAgo))

	backdate(t, db, parent)
	require.NoError(t, repo.UpdateEntry(entry, map[string]interface{}{"content": "day one, fizzy"}))
	got, err = repo.GetByID(experiment.ID)
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(longAgo))

	backdate(t, db, parent)
	require.NoError(t, repo.DeleteEntry(entry))
	got, err = repo.GetByID(experiment.ID)
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(longAgo))

	_, err = repo.GetEntry(entry.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestExperimentBySlugOrdersEntriesAndHidesDraftRecipe(t *testing.T) {
	db := testdb.Open(t)
	repo := NewExperimentRepository(db)
	draft := seedRecipe(t, db, "secret-recipe", false)

	experiment := &models.Experiment{Slug: "sourdough", Title: "Sourdough", Status: models.StatusGraduated, Published: true, GraduatedRecipeID: &draft.ID}
	require.NoError(t, repo.Create(experiment))

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateEntry(&models.ExperimentEntry{ExperimentID: experiment.ID, EntryDate: day.AddDate(0, 0, 2), Content: "third"}))
	require.NoError(t, repo.CreateEntry(&models.ExperimentEntry{ExperimentID: experiment.ID, EntryDate: day, Content: "first"}))
	require.NoError(t, repo.CreateEntry(&models.ExperimentEntry{ExperimentID: experiment.ID, EntryDate: day.AddDate(0, 0, 1), Content: "second"}))

	got, err := repo.GetBySlug("sourdough", true)
	require.NoError(t, err)
	require.Len(t, got.Entries, 3)
	assert.Equal(t, "first", got.Entries[0].Content)
	assert.Equal(t, "second", got.Entries[1].Content)
	assert.Equal(t, "third", got.Entries[2].Content)
	assert.Nil(t, got.GraduatedRecipe)
}

func TestGalleryReorder(t *testing.T) {
	db := testdb.Open(t)
	repo := NewGalleryRepository(db)

	var ids []uint
	for _, title := range []string{"hens", "tomatoes", "roses"} {
		image := &models.GalleryImage{Image: "/uploads/" + title + ".jpg", Title: title, Category: models.GalleryGarden, Published: true}
		require.NoError(t, repo.Create(image))
		ids = append(ids, image.ID)
	}

	require.NoError(t, repo.Reorder([]uint{ids[2], ids[0], ids[1]}))

	images, _, err := repo.GetList(models.GalleryListParams{ListParams: models.ListParams{Limit: 20}}, true)
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, "roses", images[0].Title)
	assert.Equal(t, "hens", images[1].Title)
	assert.Equal(t, "tomatoes", images[2].Title)

	err = repo.Reorder([]uint{ids[0], 4242})
	assert.True(t, errors.Is(err, models.ErrNotFound))

	// A failed reorder leaves the previous order in place.
	images, _, err = repo.GetList(models.GalleryListParams{ListParams: models.ListParams{Limit: 20}}, true)
	require.NoError(t, err)
	assert.Equal(t, "roses", images[0].Title)
}

func TestCollectionMembership(t *testing.T) {
	db := testdb.Open(t)
	repo := NewCollectionRepository(db)

	collection := &models.Collection{Slug: "sunday-suppers", Name: "Sunday suppers", Published: true}
	require.NoError(t, repo.Create(collection))
	live := seedRecipe(t, db, "roast-chicken", true)
	draft := seedRecipe(t, db, "draft-pie", false)
	later := seedRecipe(t, db, "apple-crumble", true)

	backdate(t, db, &models.Collection{ID: collection.ID})
	require.NoError(t, repo.AddRecipe(&models.CollectionRecipe{CollectionID: collection.ID, RecipeID: later.ID, SortOrder: 2}))
	require.NoError(t, repo.AddRecipe(&models.CollectionRecipe{CollectionID: collection.ID, RecipeID: live.ID, SortOrder: 1}))
	require.NoError(t, repo.AddRecipe(&models.CollectionRecipe{CollectionID: collection.ID, RecipeID: draft.ID, SortOrder: 0}))

	got, err := repo.GetByID(collection.ID)
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(longAgo))

	err = repo.AddRecipe(&models.CollectionRecipe{CollectionID: collection.ID, RecipeID: live.ID})
	assert.True(t, errors.Is(err, models.ErrConflict))

	public, err := repo.MemberRecipes(collection.ID, true)
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, "roast-chicken", public[0].Recipe.Slug)
	assert.Equal(t, 1, public[0].SortOrder)
	assert.Equal(t, "apple-crumble", public[1].Recipe.Slug)

	all, err := repo.MemberRecipes(collection.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	backdate(t, db, &models.Collection{ID: collection.ID})
	moved, err := repo.MoveRecipe(collection.ID, later.ID, 0)
	require.NoError(t, err)
	assert.True(t, moved)
	got, err = repo.GetByID(collection.ID)
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(longAgo))

	public, err = repo.MemberRecipes(collection.ID, true)
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, "apple-crumble", public[0].Recipe.Slug)

	moved, err = repo.MoveRecipe(collection.ID, 999, 3)
	require.NoError(t, err)
	assert.False(t, moved)

	removed, err := repo.RemoveRecipe(collection.ID, draft.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = repo.RemoveRecipe(collection.ID, draft.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCommentDeleteRemovesReplies(t *testing.T) {
	db := testdb.Open(t)
	repo := NewRecipeCommentRepository(db)
	user := seedUser(t, db, "cook@example.com")
	recipe := seedRecipe(t, db, "focaccia", true)

	parent, err := repo.Create(recipe.ID, user.ID, nil, "How long to proof?")
	require.NoError(t, err)
	_, err = repo.Create(recipe.ID, user.ID, &parent.ID, "Overnight in the fridge.")
	require.NoError(t, err)
	other, err := repo.Create(recipe.ID, user.ID, nil, "Great with rosemary")
	require.NoError(t, err)

	require.NoError(t, repo.Deactivate(other.ID))
	active, err := repo.ListActive(recipe.ID)
	require.NoError(t, err)
	assert.Len(t, active, 2)
	require.NotNil(t, active[0].User)
	assert.Equal(t, "cook@example.com", active[0].User.Email)

	require.NoError(t, repo.Delete(parent.ID))

	rows, total, err := repo.ListAll(models.ListParams{Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, other.ID, rows[0].ID)
	assert.False(t, rows[0].IsActive)

	count, err := repo.CountActive()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRatingSummary(t *testing.T) {
	db := testdb.Open(t)
	repo := NewRatingRepository(db)
	recipe := seedRecipe(t, db, "shakshuka", true)

	summary, err := repo.Summary(recipe.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.Average)
	assert.Zero(t, summary.Count)

	reviews := []string{"so good", "", ""}
	for i, score := range []int{5, 4, 4} {
		user := seedUser(t, db, fmt.Sprintf("rater%d@example.com", i))
		require.NoError(t, repo.Create(&models.RecipeRating{RecipeID: recipe.ID, UserID: user.ID, Rating: score, Review: reviews[i]}))
	}

	summary, err = repo.Summary(recipe.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, summary.Count)
	assert.InDelta(t, 4.333, summary.Average, 0.01)

	withText, err := repo.Reviews(recipe.ID)
	require.NoError(t, err)
	require.Len(t, withText, 1)
	assert.Equal(t, "so good", withText[0].Review)
	require.NotNil(t, withText[0].User)
}

func TestFavoriteToggle(t *testing.T) {
	db := testdb.Open(t)
	repo := NewFavoriteRepository(db)
	user := seedUser(t, db, "fan@example.com")
	recipe := seedRecipe(t, db, "tiramisu", true)

	on, err := repo.ToggleRecipe(user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, on)

	has, err := repo.HasRecipe(user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, has)

	recipes, err := repo.Recipes(user.ID)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "tiramisu", recipes[0].Slug)

	on, err = repo.ToggleRecipe(user.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, on)

	has, err = repo.HasRecipe(user.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestSubscriberStats(t *testing.T) {
	db := testdb.Open(t)
	repo := NewSubscriberRepository(db)

	require.NoError(t, repo.Create(&models.Subscriber{Email: "a@example.com", Active: true, SubscribedAt: time.Now(), UnsubscribeToken: "8f0c5a52-3a57-4a39-9d6c-1f4e2b3c4d5e"}))
	inactive := &models.Subscriber{Email: "b@example.com", Active: true, SubscribedAt: time.Now(), UnsubscribeToken: "1b2c3d4e-5f60-4718-8a9b-0c1d2e3f4a5b"}
	require.NoError(t, repo.Create(inactive))
	require.NoError(t, repo.Update(inactive.ID, map[string]interface{}{"active": false}))

	stats, err := repo.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Total)
	assert.EqualValues(t, 1, stats.Active)

	active := true
	rows, total, err := repo.GetList(models.SubscriberListParams{ListParams: models.ListParams{Limit: 20}, Active: &active})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "a@example.com", rows[0].Email)
}

func TestSessionRevoke(t *testing.T) {
	db := testdb.Open(t)
	repo := NewSessionRepository(db)
	user := seedUser(t, db, "session@example.com")

	session := &models.Session{ID: "3f1d2c4b-5a69-4e7f-8a1b-2c3d4e5f6a7b", UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.Create(session))

	got, err := repo.GetByID(session.ID)
	require.NoError(t, err)
	assert.True(t, got.Active(time.Now()))
	require.NotNil(t, got.User)

	require.NoError(t, repo.Revoke(session.ID, time.Now()))
	got, err = repo.GetByID(session.ID)
	require.NoError(t, err)
	assert.False(t, got.Active(time.Now()))
}
