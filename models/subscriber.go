package models

import "time"

type Subscriber struct {
	ID               uint       `json:"id" gorm:"primarykey"`
	Email            string     `json:"email" gorm:"uniqueIndex;not null"`
	Active           bool       `json:"active" gorm:"default:true;index"`
	SubscribedAt     time.Time  `json:"subscribed_at"`
	UnsubscribedAt   *time.Time `json:"unsubscribed_at"`
	UnsubscribeToken string     `json:"-" gorm:"uniqueIndex;size:36"`
}

// SubscribeResult acknowledges a subscribe call. The unsubscribe token is
// only handed out when this call minted it.
type SubscribeResult struct {
	Subscriber        *Subscriber `json:"subscriber"`
	UnsubscribeToken  string      `json:"unsubscribe_token,omitempty"`
	AlreadySubscribed bool        `json:"already_subscribed"`
	Reactivated       bool        `json:"reactivated"`
}

type SubscriberStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}
