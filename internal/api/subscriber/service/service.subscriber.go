// Package subscribersvc manages newsletter subscribers.
package subscribersvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "fullsco_api/internal/api/base/service"
	"fullsco_api/internal/api/subscriber/models"
	"fullsco_api/internal/global"
)

// SubscriberService manages newsletter subscribers.
//
// Emails are normalized before insert so the unique email constraint treats
// " A@x.io" and "a@x.io" as the same subscriber; a second subscribe answers 409.
type SubscriberService struct {
	*basesvc.CrudService[models.Subscriber]
}

// NewSubscriberService opens the subscribers collection, newest first.
func NewSubscriberService(stores *basesvc.StoreProvider) (*SubscriberService, error) {
	store, err := basesvc.Open[models.Subscriber](stores, global.MongoDB_ColNames.Subscribers)
	if err != nil {
		return nil, fmt.Errorf("open subscribers: %w", err)
	}
	return &SubscriberService{
		CrudService: basesvc.NewCrudService(store, basesvc.CrudConfig[models.Subscriber]{
			Resource:     "Subscriber",
			UniqueField:  "email",
			DefaultSort:  bson.D{{Key: "createdAt", Value: -1}},
			BeforeCreate: normalizeEmail,
		}),
	}, nil
}

// normalizeEmail runs before every create
func normalizeEmail(_ context.Context, sub *models.Subscriber) error {
	sub.Email = NormalizeEmail(sub.Email)
	return nil
}

// NormalizeEmail trims and lowercases an address so duplicates compare equal
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
