package policy

import (
	"errors"
	"testing"

	"tastings-with-tay/models"

	"github.com/stretchr/testify/assert"
)

var (
	member = &Principal{UserID: 7, Role: models.RoleUser}
	admin  = &Principal{UserID: 1, Role: models.RoleAdmin}
)

func TestCheckPublicAllowsAnonymous(t *testing.T) {
	assert.NoError(t, Check(nil, Recipes, OpList))
	assert.NoError(t, Check(nil, Subscribers, OpSubscribe))
	assert.NoError(t, Check(member, Comments, OpList))
}

func TestCheckProtectedNeedsSession(t *testing.T) {
	err := Check(nil, Favorites, OpToggle)
	assert.True(t, errors.Is(err, models.ErrUnauthorized))

	var anonymous *Principal
	err = Check(anonymous, Ratings, OpRate)
	assert.True(t, errors.Is(err, models.ErrUnauthorized))

	assert.NoError(t, Check(member, Favorites, OpToggle))
	assert.NoError(t, Check(admin, Favorites, OpToggle))
}

func TestCheckAdminDistinguishesUnauthorizedFromForbidden(t *testing.T) {
	err := Check(nil, Recipes, OpCreate)
	assert.True(t, errors.Is(err, models.ErrUnauthorized))

	err = Check(member, Recipes, OpCreate)
	assert.True(t, errors.Is(err, models.ErrForbidden))

	assert.NoError(t, Check(admin, Recipes, OpCreate))
}

func TestCheckUnknownRuleIsDenied(t *testing.T) {
	err := Check(admin, Gallery, OpBySlug)
	assert.True(t, errors.Is(err, models.ErrForbidden))
}

func TestTableTiers(t *testing.T) {
	for rule, tier := range Table {
		switch rule.Operation {
		case OpAdminList, OpAdminByID, OpCreate, OpUpdate, OpReorder, OpAddEntry, OpEditEntry,
			OpDropEntry, OpGraduate, OpAddMember, OpDropMember, OpMoveMember, OpStats, OpSetRole, OpUpload,
			OpSummary, OpAdminDelete:
			if rule.Entity == Comments && rule.Operation == OpCreate {
				assert.Equal(t, Protected, tier, "%v", rule)
				continue
			}
			assert.Equal(t, Admin, tier, "%v", rule)
		case OpToggle, OpMine, OpStatus, OpSoftDelete, OpRate, OpSession, OpLogout:
			assert.Equal(t, Protected, tier, "%v", rule)
		case OpList, OpBySlug, OpFeatured, OpView, OpSubscribe, OpUnsub, OpAverage, OpReviews,
			OpRegister, OpLogin, OpGoogle:
			assert.Equal(t, Public, tier, "%v", rule)
		}
	}

	// Deleting content is admin-only everywhere except a caller's own rating.
	for rule, tier := range Table {
		if rule.Operation != OpDelete {
			continue
		}
		if rule.Entity == Ratings {
			assert.Equal(t, Protected, tier)
			continue
		}
		assert.Equal(t, Admin, tier, "%v", rule)
	}
}

func TestPrincipalSatisfies(t *testing.T) {
	var nobody *Principal
	assert.True(t, nobody.Satisfies(Public))
	assert.False(t, nobody.Satisfies(Protected))
	assert.False(t, (&Principal{}).Satisfies(Protected))
	assert.True(t, member.Satisfies(Protected))
	assert.False(t, member.Satisfies(Admin))
	assert.True(t, admin.Satisfies(Admin))
	assert.False(t, admin.Satisfies(Tier(9)))
	assert.Equal(t, "tier(9)", Tier(9).String())
}
