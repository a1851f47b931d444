package repositories

import (
	"time"

	"tastings-with-tay/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByGoogleSub(sub string) (*models.User, error)
	GetList(params models.ListParams) ([]models.User, int64, error)
	Update(id uint, fields map[string]interface{}) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByGoogleSub(sub string) (*models.User, error) {
	var user models.User
	err := r.db.Where("google_sub = ?", sub).First(&user).Error
	return &user, err
}

func (r *userRepository) GetList(params models.ListParams) ([]models.User, int64, error) {
	return findPage[models.User](r.db.Model(&models.User{}), params, "created_at DESC, id DESC")
}

func (r *userRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.User{ID: id}).Updates(fields).Error
}

type SessionRepository interface {
	Create(session *models.Session) error
	GetByID(id string) (*models.Session, error)
	Revoke(id string, at time.Time) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) GetByID(id string) (*models.Session, error) {
	var session models.Session
	err := r.db.Preload("User").Where("id = ?", id).First(&session).Error
	return &session, err
}

func (r *sessionRepository) Revoke(id string, at time.Time) error {
	return r.db.Model(&models.Session{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at).Error
}
