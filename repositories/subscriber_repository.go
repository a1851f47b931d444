package repositories

import (
	"tastings-with-tay/models"

	"gorm.io/gorm"
)

type SubscriberRepository interface {
	Create(subscriber *models.Subscriber) error
	GetByEmail(email string) (*models.Subscriber, error)
	GetByToken(token string) (*models.Subscriber, error)
	GetList(params models.SubscriberListParams) ([]models.Subscriber, int64, error)
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) (bool, error)
	Stats() (models.SubscriberStats, error)
}

type subscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(subscriber *models.Subscriber) error {
	return r.db.Create(subscriber).Error
}

func (r *subscriberRepository) GetByEmail(email string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	err := r.db.Where("email = ?", email).First(&subscriber).Error
	return &subscriber, err
}

func (r *subscriberRepository) GetByToken(token string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	err := r.db.Where("unsubscribe_token = ?", token).First(&subscriber).Error
	return &subscriber, err
}

func (r *subscriberRepository) GetList(params models.SubscriberListParams) ([]models.Subscriber, int64, error) {
	query := r.db.Model(&models.Subscriber{})
	if params.Active != nil {
		query = query.Where("active = ?", *params.Active)
	}
	return findPage[models.Subscriber](query, params.ListParams, "subscribed_at DESC, id DESC")
}

func (r *subscriberRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Subscriber{ID: id}).Updates(fields).Error
}

func (r *subscriberRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Subscriber{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *subscriberRepository) Stats() (models.SubscriberStats, error) {
	var stats models.SubscriberStats
	if err := r.db.Model(&models.Subscriber{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	err := r.db.Model(&models.Subscriber{}).Where("active = ?", true).Count(&stats.Active).Error
	return stats, err
}
