package basehdl

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	basesvc "fullsco_api/internal/api/base/service"
	"fullsco_api/internal/common"
	"fullsco_api/internal/logger"
	"fullsco_api/internal/utility"
)

// CrudHandler serves the uniform REST surface of one entity.
// T is the stored model, CreateInput and UpdateInput the request DTOs.
type CrudHandler[T any, CreateInput any, UpdateInput any] struct {
	*BaseHandler
	Service *basesvc.CrudService[T]

	// ToModel converts a validated create DTO to the model
	ToModel func(input *CreateInput) T
	// UpdatePatch converts a validated update DTO to the fields to $set.
	// Defaults to the DTO's non-nil fields by bson name.
	UpdatePatch func(input *UpdateInput) (map[string]any, error)
	// Clearable names the optional fields an update may clear by sending null or "".
	// A cleared field is removed from the record.
	Clearable []string
}

// NewCrudHandler builds a handler for service
func NewCrudHandler[T any, CreateInput any, UpdateInput any](base *BaseHandler, service *basesvc.CrudService[T], toModel func(*CreateInput) T) *CrudHandler[T, CreateInput, UpdateInput] {
	return &CrudHandler[T, CreateInput, UpdateInput]{
		BaseHandler: base,
		Service:     service,
		ToModel:     toModel,
	}
}

// List returns every record, filtered by the query string
func (h *CrudHandler[T, CreateInput, UpdateInput]) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx, cancel := h.Context(c)
		defer cancel()

		data, err := h.Service.List(ctx, c.Queries())
		return h.HandleResponse(c, data, err)
	})
}

// GetById returns one record by id
func (h *CrudHandler[T, CreateInput, UpdateInput]) GetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx, cancel := h.Context(c)
		defer cancel()

		data, err := h.Service.GetById(ctx, c.Params("id"))
		return h.HandleResponse(c, data, err)
	})
}

// GetBySlug returns one record by exact slug
func (h *CrudHandler[T, CreateInput, UpdateInput]) GetBySlug(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx, cancel := h.Context(c)
		defer cancel()

		data, err := h.Service.GetBySlug(ctx, c.Params("slug"))
		return h.HandleResponse(c, data, err)
	})
}

// Create validates the body and inserts it. Invalid input never reaches the store.
func (h *CrudHandler[T, CreateInput, UpdateInput]) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.Error(c, err)
		}

		ctx, cancel := h.Context(c)
		defer cancel()

		created, err := h.Service.Create(ctx, h.ToModel(&input))
		if err != nil {
			return h.Error(c, err)
		}

		logger.LogCRUD("create", h.Service.Resource(), DocumentID(created), c, nil)
		return h.Success(c, common.StatusCreated, common.MsgCreated, created)
	})
}

// Update validates the body and merges its present fields into the record
func (h *CrudHandler[T, CreateInput, UpdateInput]) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input UpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.Error(c, err)
		}

		patch, err := h.patch(c, &input)
		if err != nil {
			return h.Error(c, err)
		}

		ctx, cancel := h.Context(c)
		defer cancel()

		id := c.Params("id")
		updated, err := h.Service.Update(ctx, id, patch)
		if err != nil {
			return h.Error(c, err)
		}

		logger.LogCRUD("update", h.Service.Resource(), id, c, map[string]any{"fields": patchKeys(patch)})
		return h.Success(c, common.StatusOK, common.MsgUpdated, updated)
	})
}

// Delete removes a record; a missing record is a 404
func (h *CrudHandler[T, CreateInput, UpdateInput]) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx, cancel := h.Context(c)
		defer cancel()

		id := c.Params("id")
		deleted, err := h.Service.Delete(ctx, id)
		if err != nil {
			return h.Error(c, err)
		}
		if !deleted {
			return h.Error(c, common.NewNotFoundError(h.Service.Resource()))
		}

		logger.LogCRUD("delete", h.Service.Resource(), id, c, nil)
		return h.Success(c, common.StatusOK, common.MsgDeleted, nil)
	})
}

func (h *CrudHandler[T, CreateInput, UpdateInput]) patch(c fiber.Ctx, input *UpdateInput) (map[string]any, error) {
	var patch map[string]any
	var err error
	if h.UpdatePatch != nil {
		patch, err = h.UpdatePatch(input)
		if err != nil {
			return nil, err
		}
	} else {
		patch, err = utility.ToMap(input)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
	}
	if len(h.Clearable) > 0 {
		clearFields(c.Body(), patch, h.Clearable)
	}
	return patch, nil
}

// clearFields marks with nil every clearable field the body sets to null or ""
func clearFields(body []byte, patch map[string]any, fields []string) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return
	}
	for _, field := range fields {
		value, ok := raw[field]
		if !ok {
			continue
		}
		value = bytes.TrimSpace(value)
		if bytes.Equal(value, []byte("null")) || bytes.Equal(value, []byte(`""`)) {
			patch[field] = nil
		}
	}
}

// DocumentID returns the hex _id of a model, or "" when it has none
func DocumentID(model any) string {
	doc, err := utility.ToMap(model)
	if err != nil {
		return ""
	}
	if id, ok := doc["_id"]; ok {
		if oid, ok := id.(interface{ Hex() string }); ok {
			return oid.Hex()
		}
	}
	return ""
}

func patchKeys(patch map[string]any) []string {
	keys := make([]string, 0, len(patch))
	for k := range patch {
		keys = append(keys, k)
	}
	return keys
}
