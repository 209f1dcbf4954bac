package contenthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "fullsco_api/internal/api/base/handler"
	contentdto "fullsco_api/internal/api/content/dto"
	"fullsco_api/internal/api/content/models"
	contentsvc "fullsco_api/internal/api/content/service"
	"fullsco_api/internal/common"
	"fullsco_api/internal/utility"
)

// StatisticHandler serves /statistics: the CRUD routes plus a lookup by type
// used by the home page counters.
type StatisticHandler struct {
	*basehdl.CrudHandler[models.Statistic, contentdto.StatisticCreateInput, contentdto.StatisticUpdateInput]
	StatisticService *contentsvc.StatisticService
}

// NewStatisticHandler builds the handler on service. Numbers inside the free-form
// data object are stored as numbers on create and update.
func NewStatisticHandler(base *basehdl.BaseHandler, service *contentsvc.StatisticService) *StatisticHandler {
	hdl := &StatisticHandler{
		StatisticService: service,
	}
	hdl.CrudHandler = basehdl.NewCrudHandler[models.Statistic, contentdto.StatisticCreateInput, contentdto.StatisticUpdateInput](base, service.CrudService,
		func(in *contentdto.StatisticCreateInput) models.Statistic {
			return models.Statistic{
				Type:  in.Type,
				Data:  utility.NormalizeJSONNumbers(in.Data),
				Order: in.Order,
			}
		})
	hdl.UpdatePatch = statisticPatch
	return hdl
}

// statisticPatch stores JSON numbers inside data as numbers, not strings
func statisticPatch(in *contentdto.StatisticUpdateInput) (map[string]any, error) {
	in.Data = utility.NormalizeJSONNumbers(in.Data)
	patch, err := utility.ToMap(in)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}
	return patch, nil
}

// GetByType serves GET /statistics/type/:type.
//
// It answers the first statistic of that type in display order, or 404 when
// none exists.
func (h *StatisticHandler) GetByType(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx, cancel := h.Context(c)
		defer cancel()

		data, err := h.StatisticService.GetByType(ctx, c.Params("type"))
		return h.HandleResponse(c, data, err)
	})
}
