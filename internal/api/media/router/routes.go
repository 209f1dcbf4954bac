// Package router registers /media.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	mediahdl "fullsco_api/internal/api/media/handler"
	mediasvc "fullsco_api/internal/api/media/service"
	apirouter "fullsco_api/internal/api/router"
	"fullsco_api/internal/global"
)

// Register mounts the media routes on v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	service, err := mediasvc.NewMediaService(r.Stores(), r.Deps().UploadDir)
	if err != nil {
		return fmt.Errorf("create media service: %w", err)
	}
	h := mediahdl.NewMediaHandler(r.NewBaseHandler("media", global.MongoDB_ColNames.MediaFiles), service)

	apirouter.RegisterRouteWithMiddleware(v1, "/media", fiber.MethodPost, "/upload", nil, h.Upload)
	apirouter.RegisterRouteWithMiddleware(v1, "/media", fiber.MethodPost, "/bulk-delete", nil, h.BulkDelete)
	r.RegisterCRUDRoutes(v1, "/media", h, apirouter.ReadWriteConfig)
	return nil
}
