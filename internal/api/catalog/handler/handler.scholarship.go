// Package cataloghdl serves scholarships, categories, countries and levels.
package cataloghdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "fullsco_api/internal/api/base/handler"
	catalogdto "fullsco_api/internal/api/catalog/dto"
	"fullsco_api/internal/api/catalog/models"
	catalogsvc "fullsco_api/internal/api/catalog/service"
	"fullsco_api/internal/common"
	"fullsco_api/internal/utility"
)

// ScholarshipHandler serves /scholarships: the CRUD routes, the featured list
// and the view counter.
type ScholarshipHandler struct {
	*basehdl.CrudHandler[models.Scholarship, catalogdto.ScholarshipCreateInput, catalogdto.ScholarshipUpdateInput]
	ScholarshipService *catalogsvc.ScholarshipService
}

// NewScholarshipHandler builds the handler on service
func NewScholarshipHandler(base *basehdl.BaseHandler, service *catalogsvc.ScholarshipService) *ScholarshipHandler {
	hdl := &ScholarshipHandler{
		ScholarshipService: service,
	}
	hdl.CrudHandler = basehdl.NewCrudHandler[models.Scholarship, catalogdto.ScholarshipCreateInput, catalogdto.ScholarshipUpdateInput](base, service.CrudService, scholarshipFromInput)
	hdl.UpdatePatch = scholarshipPatch
	hdl.Clearable = []string{"startDate", "endDate", "countryId", "levelId", "categoryId"}
	return hdl
}

func scholarshipFromInput(in *catalogdto.ScholarshipCreateInput) models.Scholarship {
	// dates were checked by the validator
	start, _ := utility.ParseDatePtr(&in.StartDate)
	end, _ := utility.ParseDatePtr(&in.EndDate)
	return models.Scholarship{
		Title:           in.Title,
		Slug:            in.Slug,
		Description:     in.Description,
		Content:         in.Content,
		Deadline:        in.Deadline,
		Amount:          in.Amount,
		Currency:        in.Currency,
		University:      in.University,
		Department:      in.Department,
		Website:         in.Website,
		StartDate:       start,
		EndDate:         end,
		IsFullyFunded:   in.IsFullyFunded,
		IsFeatured:      in.IsFeatured,
		IsPublished:     in.IsPublished,
		SeoTitle:        in.SeoTitle,
		SeoDescription:  in.SeoDescription,
		SeoKeywords:     in.SeoKeywords,
		FocusKeyword:    in.FocusKeyword,
		CountryID:       in.CountryID,
		LevelID:         in.LevelID,
		CategoryID:      in.CategoryID,
		Requirements:    in.Requirements,
		ApplicationLink: in.ApplicationLink,
		ImageURL:        in.ImageURL,
	}
}

// scholarshipPatch converts the present fields, turning date strings into dates.
// An empty date string clears the date; so does null, through Clearable.
func scholarshipPatch(in *catalogdto.ScholarshipUpdateInput) (map[string]any, error) {
	patch, err := utility.ToMap(in)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}
	for field, value := range map[string]*string{"startDate": in.StartDate, "endDate": in.EndDate} {
		if value == nil {
			continue
		}
		t, err := utility.ParseDatePtr(value)
		if err != nil {
			return nil, common.NewValidationError("", common.FieldError{Field: field, Tag: "date", Message: err.Error()})
		}
		if t == nil {
			patch[field] = nil
		} else {
			patch[field] = *t
		}
	}
	return patch, nil
}

// Featured serves GET /scholarships/featured
func (h *ScholarshipHandler) Featured(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx, cancel := h.Context(c)
		defer cancel()

		data, err := h.ScholarshipService.Featured(ctx)
		return h.HandleResponse(c, data, err)
	})
}

// IncrementViews serves POST /scholarships/:id/views and answers the record
// with its new count.
func (h *ScholarshipHandler) IncrementViews(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx, cancel := h.Context(c)
		defer cancel()

		data, err := h.ScholarshipService.IncrementViews(ctx, c.Params("id"))
		return h.HandleResponse(c, data, err)
	})
}
