// Package router registers /subscribers.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "fullsco_api/internal/api/router"
	subscriberhdl "fullsco_api/internal/api/subscriber/handler"
	subscribersvc "fullsco_api/internal/api/subscriber/service"
	"fullsco_api/internal/global"
)

// Register mounts the subscriber routes on v1. Subscriptions cannot be edited.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	service, err := subscribersvc.NewSubscriberService(r.Stores())
	if err != nil {
		return fmt.Errorf("create subscriber service: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/subscribers", subscriberhdl.NewSubscriberHandler(r.NewBaseHandler("subscriber", global.MongoDB_ColNames.Subscribers), service), apirouter.AppendOnlyConfig)
	return nil
}
