// Package settingshdl serves /site-settings and /seo-settings.
package settingshdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "fullsco_api/internal/api/base/handler"
	settingsdto "fullsco_api/internal/api/settings/dto"
	"fullsco_api/internal/api/settings/models"
	settingssvc "fullsco_api/internal/api/settings/service"
	"fullsco_api/internal/common"
	"fullsco_api/internal/logger"
	"fullsco_api/internal/utility"
)

// SiteSettingsHandler serves /site-settings
type SiteSettingsHandler struct {
	*basehdl.BaseHandler
	Service *settingssvc.SiteSettingsService
}

// NewSiteSettingsHandler builds the handler on service
func NewSiteSettingsHandler(base *basehdl.BaseHandler, service *settingssvc.SiteSettingsService) *SiteSettingsHandler {
	return &SiteSettingsHandler{BaseHandler: base, Service: service}
}

// Get serves GET /site-settings; data is null until the settings are first saved
func (h *SiteSettingsHandler) Get(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx, cancel := h.Context(c)
		defer cancel()

		data, err := h.Service.Get(ctx)
		return h.HandleResponse(c, data, err)
	})
}

// Update serves PUT /site-settings
func (h *SiteSettingsHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input settingsdto.SiteSettingsInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.Error(c, err)
		}
		patch, err := utility.ToMap(&input)
		if err != nil {
			return h.Error(c, common.ErrInvalidFormat)
		}

		ctx, cancel := h.Context(c)
		defer cancel()

		data, err := h.Service.Update(ctx, patch)
		if err != nil {
			return h.Error(c, err)
		}
		logger.LogCRUD("update", "Site settings", data.ID.Hex(), c, nil)
		return h.Success(c, common.StatusOK, common.MsgUpdated, data)
	})
}

// SeoSettingsHandler serves /seo-settings
type SeoSettingsHandler struct {
	*basehdl.CrudHandler[models.SeoSettings, settingsdto.SeoSettingsCreateInput, settingsdto.SeoSettingsUpdateInput]
	SeoService *settingssvc.SeoSettingsService
}

// NewSeoSettingsHandler builds the handler on service
func NewSeoSettingsHandler(base *basehdl.BaseHandler, service *settingssvc.SeoSettingsService) *SeoSettingsHandler {
	hdl := &SeoSettingsHandler{
		SeoService: service,
	}
	hdl.CrudHandler = basehdl.NewCrudHandler[models.SeoSettings, settingsdto.SeoSettingsCreateInput, settingsdto.SeoSettingsUpdateInput](base, service.CrudService,
		func(in *settingsdto.SeoSettingsCreateInput) models.SeoSettings {
			return models.SeoSettings{
				PagePath:        in.PagePath,
				MetaTitle:       in.MetaTitle,
				MetaDescription: in.MetaDescription,
				OgImage:         in.OgImage,
				Keywords:        in.Keywords,
			}
		})
	return hdl
}

// GetByPath serves GET /seo-settings/path?path=/about
func (h *SeoSettingsHandler) GetByPath(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		path := c.Query("path")
		if path == "" {
			return h.Error(c, common.NewValidationError("", common.FieldError{Field: "path", Tag: "required", Message: "is required"}))
		}

		ctx, cancel := h.Context(c)
		defer cancel()

		data, err := h.SeoService.GetByPath(ctx, path)
		return h.HandleResponse(c, data, err)
	})
}

// UpsertByPath serves PUT /seo-settings/path
func (h *SeoSettingsHandler) UpsertByPath(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input settingsdto.SeoSettingsPathInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.Error(c, err)
		}
		patch, err := utility.ToMap(&input)
		if err != nil {
			return h.Error(c, common.ErrInvalidFormat)
		}

		ctx, cancel := h.Context(c)
		defer cancel()

		data, err := h.SeoService.UpsertByPath(ctx, input.PagePath, patch)
		if err != nil {
			return h.Error(c, err)
		}
		logger.LogCRUD("upsert", h.SeoService.Resource(), data.ID.Hex(), c, map[string]any{"pagePath": input.PagePath})
		return h.Success(c, common.StatusOK, common.MsgUpdated, data)
	})
}
