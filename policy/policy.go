// Package policy holds the access model of the API in one table: every
// (entity, operation) pair a route serves maps to the tier a caller needs.
package policy

import (
	"fmt"
	"time"

	"tastings-with-tay/models"
)

type Tier int

const (
	// Public procedures need no session.
	Public Tier = iota
	// Protected procedures need a valid session.
	Protected
	// Admin procedures need a session whose role is admin.
	Admin
)

func (t Tier) String() string {
	switch t {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Admin:
		return "admin"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

type Entity string

const (
	Recipes     Entity = "recipes"
	Wines       Entity = "wines"
	Experiments Entity = "experiments"
	Gallery     Entity = "gallery"
	Collections Entity = "collections"
	Tags        Entity = "tags"
	Subscribers Entity = "subscribers"
	Favorites   Entity = "favorites"
	Comments    Entity = "comments"
	Ratings     Entity = "ratings"
	Auth        Entity = "auth"
	Users       Entity = "users"
	Uploads     Entity = "uploads"
	Dashboard   Entity = "dashboard"
)

type Operation string

const (
	OpList       Operation = "list"
	OpBySlug     Operation = "bySlug"
	OpFeatured   Operation = "featured"
	OpView       Operation = "incrementView"
	OpAdminList  Operation = "adminList"
	OpAdminByID  Operation = "adminById"
	OpCreate     Operation = "create"
	OpUpdate     Operation = "update"
	OpDelete     Operation = "delete"
	OpReorder    Operation = "reorder"
	OpAddEntry   Operation = "addEntry"
	OpEditEntry  Operation = "updateEntry"
	OpDropEntry  Operation = "deleteEntry"
	OpGraduate   Operation = "graduate"
	OpAddMember  Operation = "addMember"
	OpDropMember Operation = "removeMember"
	OpMoveMember Operation = "moveMember"
	OpSubscribe  Operation = "subscribe"
	OpUnsub      Operation = "unsubscribe"
	OpStats      Operation = "stats"
	OpToggle     Operation = "toggle"
	OpMine       Operation = "mine"
	OpStatus     Operation = "status"
	OpSoftDelete Operation = "softDelete"
	OpAverage    Operation = "average"
	OpReviews    Operation = "reviews"
	OpRate       Operation = "rate"
	OpRegister   Operation = "register"
	OpLogin      Operation = "login"
	OpGoogle     Operation = "google"
	OpSession    Operation = "session"
	OpLogout     Operation = "logout"
	OpSetRole    Operation = "setRole"
	OpUpload     Operation = "upload"
	OpSummary    Operation = "summary"

	OpAdminDelete Operation = "adminDelete"
)

type Rule struct {
	Entity    Entity
	Operation Operation
}

// Table is the complete access model. Pairs absent from the table are denied.
var Table = map[Rule]Tier{
	{Recipes, OpList}:      Public,
	{Recipes, OpBySlug}:    Public,
	{Recipes, OpFeatured}:  Public,
	{Recipes, OpView}:      Public,
	{Recipes, OpAdminList}: Admin,
	{Recipes, OpAdminByID}: Admin,
	{Recipes, OpCreate}:    Admin,
	{Recipes, OpUpdate}:    Admin,
	{Recipes, OpDelete}:    Admin,

	{Wines, OpList}:      Public,
	{Wines, OpBySlug}:    Public,
	{Wines, OpFeatured}:  Public,
	{Wines, OpAdminList}: Admin,
	{Wines, OpAdminByID}: Admin,
	{Wines, OpCreate}:    Admin,
	{Wines, OpUpdate}:    Admin,
	{Wines, OpDelete}:    Admin,

	{Experiments, OpList}:      Public,
	{Experiments, OpBySlug}:    Public,
	{Experiments, OpFeatured}:  Public,
	{Experiments, OpAdminList}: Admin,
	{Experiments, OpAdminByID}: Admin,
	{Experiments, OpCreate}:    Admin,
	{Experiments, OpUpdate}:    Admin,
	{Experiments, OpDelete}:    Admin,
	{Experiments, OpAddEntry}:  Admin,
	{Experiments, OpEditEntry}: Admin,
	{Experiments, OpDropEntry}: Admin,
	{Experiments, OpGraduate}:  Admin,

	{Gallery, OpList}:      Public,
	{Gallery, OpAdminList}: Admin,
	{Gallery, OpCreate}:    Admin,
	{Gallery, OpUpdate}:    Admin,
	{Gallery, OpDelete}:    Admin,
	{Gallery, OpReorder}:   Admin,

	{Collections, OpList}:       Public,
	{Collections, OpBySlug}:     Public,
	{Collections, OpFeatured}:   Public,
	{Collections, OpAdminList}:  Admin,
	{Collections, OpAdminByID}:  Admin,
	{Collections, OpCreate}:     Admin,
	{Collections, OpUpdate}:     Admin,
	{Collections, OpDelete}:     Admin,
	{Collections, OpAddMember}:  Admin,
	{Collections, OpDropMember}: Admin,
	{Collections, OpMoveMember}: Admin,

	{Tags, OpList}:      Public,
	{Tags, OpBySlug}:    Public,
	{Tags, OpAdminList}: Admin,
	{Tags, OpAdminByID}: Admin,
	{Tags, OpCreate}:    Admin,
	{Tags, OpUpdate}:    Admin,
	{Tags, OpDelete}:    Admin,

	{Subscribers, OpSubscribe}: Public,
	{Subscribers, OpUnsub}:     Public,
	{Subscribers, OpAdminList}: Admin,
	{Subscribers, OpStats}:     Admin,
	{Subscribers, OpDelete}:    Admin,

	{Favorites, OpToggle}: Protected,
	{Favorites, OpMine}:   Protected,
	{Favorites, OpStatus}: Protected,

	{Comments, OpList}:       Public,
	{Comments, OpCreate}:     Protected,
	{Comments, OpSoftDelete}: Protected,
	{Comments, OpAdminList}:  Admin,
	{Comments, OpDelete}:     Admin,

	{Ratings, OpAverage}:     Public,
	{Ratings, OpReviews}:     Public,
	{Ratings, OpRate}:        Protected,
	{Ratings, OpMine}:        Protected,
	{Ratings, OpDelete}:      Protected,
	{Ratings, OpAdminDelete}: Admin,

	{Auth, OpRegister}: Public,
	{Auth, OpLogin}:    Public,
	{Auth, OpGoogle}:   Public,
	{Auth, OpSession}:  Protected,
	{Auth, OpLogout}:   Protected,

	{Users, OpAdminList}: Admin,
	{Users, OpSetRole}:   Admin,

	{Uploads, OpUpload}: Admin,

	{Dashboard, OpSummary}: Admin,
}

// Required returns the tier needed for a rule and whether the rule is known.
func Required(entity Entity, op Operation) (Tier, bool) {
	tier, ok := Table[Rule{entity, op}]
	return tier, ok
}

// Capability is what the gate asks of a caller.
type Capability interface {
	Satisfies(t Tier) bool
}

// Principal is the authenticated caller of a request, rebuilt from the
// session token on every call.
type Principal struct {
	UserID    uint
	Email     string
	Role      models.UserRole
	SessionID string
	ExpiresAt time.Time
}

func (p *Principal) Satisfies(t Tier) bool {
	switch t {
	case Public:
		return true
	case Protected:
		return p != nil && p.UserID != 0
	case Admin:
		return p != nil && p.UserID != 0 && p.Role == models.RoleAdmin
	default:
		return false
	}
}

// Check decides whether caller may run op on entity. A nil caller is an
// anonymous request.
func Check(caller Capability, entity Entity, op Operation) error {
	tier, ok := Required(entity, op)
	if !ok {
		return fmt.Errorf("%s.%s is not an exposed procedure: %w", entity, op, models.ErrForbidden)
	}
	if tier == Public {
		return nil
	}
	if caller == nil || !caller.Satisfies(Protected) {
		return fmt.Errorf("%s.%s requires a session: %w", entity, op, models.ErrUnauthorized)
	}
	if !caller.Satisfies(tier) {
		return fmt.Errorf("%s.%s requires %s access: %w", entity, op, tier, models.ErrForbidden)
	}
	return nil
}
