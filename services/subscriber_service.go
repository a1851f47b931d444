package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tastings-with-tay/models"
	"tastings-with-tay/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriberService interface {
	Subscribe(req models.SubscribeRequest) (*models.SubscribeResult, error)
	Unsubscribe(req models.UnsubscribeRequest) (*models.Subscriber, error)
	GetSubscribers(params models.SubscriberListParams) (*models.Page[models.Subscriber], error)
	GetStats() (models.SubscriberStats, error)
	DeleteSubscriber(id uint) error
}

type subscriberService struct {
	subscriberRepo repositories.SubscriberRepository
	now            func() time.Time
}

func NewSubscriberService(subscriberRepo repositories.SubscriberRepository) SubscriberService {
	return &subscriberService{
		subscriberRepo: subscriberRepo,
		now:            time.Now,
	}
}

// Subscribe adds the address, acknowledges an active one, or reactivates a
// lapsed one in place with a fresh unsubscribe token.
func (s *subscriberService) Subscribe(req models.SubscribeRequest) (*models.SubscribeResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.subscriberRepo.GetByEmail(email)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		subscriber := &models.Subscriber{
			Email:            email,
			Active:           true,
			SubscribedAt:     s.now(),
			UnsubscribeToken: uuid.NewString(),
		}
		if err := s.subscriberRepo.Create(subscriber); err != nil {
			return nil, err
		}
		return &models.SubscribeResult{
			Subscriber:       subscriber,
			UnsubscribeToken: subscriber.UnsubscribeToken,
		}, nil
	case err != nil:
		return nil, err
	case existing.Active:
		return &models.SubscribeResult{Subscriber: existing, AlreadySubscribed: true}, nil
	}

	token := uuid.NewString()
	fields := map[string]interface{}{
		"active":            true,
		"subscribed_at":     s.now(),
		"unsubscribed_at":   nil,
		"unsubscribe_token": token,
	}
	if err := s.subscriberRepo.Update(existing.ID, fields); err != nil {
		return nil, err
	}
	subscriber, err := s.subscriberRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	return &models.SubscribeResult{
		Subscriber:       subscriber,
		UnsubscribeToken: token,
		Reactivated:      true,
	}, nil
}

func (s *subscriberService) Unsubscribe(req models.UnsubscribeRequest) (*models.Subscriber, error) {
	subscriber, err := s.subscriberRepo.GetByToken(req.Token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("subscription %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if !subscriber.Active {
		return subscriber, nil
	}

	now := s.now()
	if err := s.subscriberRepo.Update(subscriber.ID, map[string]interface{}{
		"active":          false,
		"unsubscribed_at": now,
	}); err != nil {
		return nil, err
	}
	subscriber.Active = false
	subscriber.UnsubscribedAt = &now
	return subscriber, nil
}

func (s *subscriberService) GetSubscribers(params models.SubscriberListParams) (*models.Page[models.Subscriber], error) {
	params.Normalize()
	subscribers, total, err := s.subscriberRepo.GetList(params)
	if err != nil {
		return nil, err
	}
	return newPage(subscribers, total, params.ListParams), nil
}

func (s *subscriberService) GetStats() (models.SubscriberStats, error) {
	return s.subscriberRepo.Stats()
}

func (s *subscriberService) DeleteSubscriber(id uint) error {
	removed, err := s.subscriberRepo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("subscriber %w", models.ErrNotFound)
	}
	return nil
}
