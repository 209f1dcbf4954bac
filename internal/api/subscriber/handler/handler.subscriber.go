// Package subscriberhdl serves /subscribers.
package subscriberhdl

import (
	basehdl "fullsco_api/internal/api/base/handler"
	subscriberdto "fullsco_api/internal/api/subscriber/dto"
	"fullsco_api/internal/api/subscriber/models"
	subscribersvc "fullsco_api/internal/api/subscriber/service"
)

// NewSubscriberHandler serves /subscribers.
//
// Subscribers are created and removed but never edited, so the update input
// carries no fields and the router mounts no PUT or PATCH route.
func NewSubscriberHandler(base *basehdl.BaseHandler, service *subscribersvc.SubscriberService) *basehdl.CrudHandler[models.Subscriber, subscriberdto.SubscribeInput, subscriberdto.NoUpdateInput] {
	return basehdl.NewCrudHandler[models.Subscriber, subscriberdto.SubscribeInput, subscriberdto.NoUpdateInput](base, service.CrudService,
		func(in *subscriberdto.SubscribeInput) models.Subscriber {
			return models.Subscriber{Email: in.Email}
		})
}
