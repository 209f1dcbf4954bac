// Package mediahdl serves the media library and file uploads.
package mediahdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "fullsco_api/internal/api/base/handler"
	mediadto "fullsco_api/internal/api/media/dto"
	"fullsco_api/internal/api/media/models"
	mediasvc "fullsco_api/internal/api/media/service"
	"fullsco_api/internal/common"
	"fullsco_api/internal/global"
	"fullsco_api/internal/logger"
)

const defaultMimeType = "application/octet-stream"

// MediaHandler serves /media
type MediaHandler struct {
	*basehdl.CrudHandler[models.MediaFile, mediadto.MediaCreateInput, mediadto.MediaUpdateInput]
	MediaService *mediasvc.MediaService
}

// NewMediaHandler builds the handler on service
func NewMediaHandler(base *basehdl.BaseHandler, service *mediasvc.MediaService) *MediaHandler {
	hdl := &MediaHandler{
		MediaService: service,
	}
	hdl.CrudHandler = basehdl.NewCrudHandler[models.MediaFile, mediadto.MediaCreateInput, mediadto.MediaUpdateInput](base, service.CrudService,
		func(in *mediadto.MediaCreateInput) models.MediaFile {
			return models.MediaFile{
				Filename:   in.Filename,
				URL:        in.URL,
				Type:       in.Type,
				Size:       in.Size,
				AltText:    in.AltText,
				Title:      in.Title,
				UploadedBy: in.UploadedBy,
				IsActive:   in.IsActive == nil || *in.IsActive,
			}
		})
	return hdl
}

// Upload serves POST /media/upload: a multipart form with the file under "file" and
// optional altText and title fields
func (h *MediaHandler) Upload(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		fh, err := c.FormFile("file")
		if err != nil {
			return h.Error(c, common.NewValidationError("A file is required", common.FieldError{
				Field:   "file",
				Tag:     "required",
				Message: "file is required",
			}))
		}

		input := mediadto.UploadInput{
			AltText: c.FormValue("altText"),
			Title:   c.FormValue("title"),
		}
		if err := global.ValidateStruct(&input); err != nil {
			return h.Error(c, err)
		}

		name := mediasvc.StoredName(fh.Filename)
		if err := c.SaveFile(fh, h.MediaService.Path(name)); err != nil {
			return h.Error(c, common.NewError(common.ErrCodeInternalServer, "Could not store the file", common.StatusInternalServerError, err))
		}

		mime := fh.Header.Get(fiber.HeaderContentType)
		if mime == "" {
			mime = defaultMimeType
		}

		ctx, cancel := h.Context(c)
		defer cancel()

		created, err := h.MediaService.Create(ctx, models.MediaFile{
			Filename: name,
			URL:      mediasvc.URL(name),
			Type:     mime,
			Size:     fh.Size,
			AltText:  input.AltText,
			Title:    input.Title,
			IsActive: true,
		})
		if err != nil {
			if rmErr := h.MediaService.RemoveFile(name); rmErr != nil {
				h.Log(c).WithError(rmErr).Warn("Could not remove orphaned upload")
			}
			return h.Error(c, err)
		}

		logger.LogCRUD("upload", h.MediaService.Resource(), created.ID.Hex(), c, map[string]any{
			"original": fh.Filename,
			"size":     fh.Size,
			"type":     mime,
		})
		return h.Success(c, common.StatusCreated, common.MsgCreated, created)
	})
}

// Delete serves DELETE /media/:id, removing the stored file with the record
func (h *MediaHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx, cancel := h.Context(c)
		defer cancel()

		id := c.Params("id")
		deleted, err := h.MediaService.Remove(ctx, id)
		if err != nil {
			return h.Error(c, err)
		}
		if !deleted {
			return h.Error(c, common.NewNotFoundError(h.MediaService.Resource()))
		}

		logger.LogCRUD("delete", h.MediaService.Resource(), id, c, nil)
		return h.Success(c, common.StatusOK, common.MsgDeleted, nil)
	})
}

// BulkDelete serves POST /media/bulk-delete and answers with the number of records removed
func (h *MediaHandler) BulkDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input mediadto.BulkDeleteInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.Error(c, err)
		}

		ctx, cancel := h.Context(c)
		defer cancel()

		deleted, err := h.MediaService.BulkRemove(ctx, input.IDs)
		if err != nil {
			return h.Error(c, err)
		}

		logger.LogAction("bulk_delete", c, map[string]any{
			"resource":  h.MediaService.Resource(),
			"requested": len(input.IDs),
			"deleted":   deleted,
		})
		return h.Success(c, common.StatusOK, common.MsgDeleted, fiber.Map{"deleted": deleted})
	})
}
