package cataloghdl

import (
	basehdl "fullsco_api/internal/api/base/handler"
	catalogdto "fullsco_api/internal/api/catalog/dto"
	"fullsco_api/internal/api/catalog/models"
	catalogsvc "fullsco_api/internal/api/catalog/service"
)

// NewCategoryHandler serves /categories with the generic CRUD routes.
// The slug is derived from the name when the client omits it, and a
// duplicate slug answers 409.
func NewCategoryHandler(base *basehdl.BaseHandler, service *catalogsvc.CategoryService) *basehdl.CrudHandler[models.Category, catalogdto.TermCreateInput, catalogdto.TermUpdateInput] {
	return basehdl.NewCrudHandler[models.Category, catalogdto.TermCreateInput, catalogdto.TermUpdateInput](base, service.CrudService,
		func(in *catalogdto.TermCreateInput) models.Category {
			return models.Category{Name: in.Name, Slug: in.Slug, Description: in.Description}
		})
}

// NewCountryHandler serves /countries. Countries carry an optional flagUrl
// on top of the name and slug shared by every term.
func NewCountryHandler(base *basehdl.BaseHandler, service *catalogsvc.CountryService) *basehdl.CrudHandler[models.Country, catalogdto.CountryCreateInput, catalogdto.CountryUpdateInput] {
	return basehdl.NewCrudHandler[models.Country, catalogdto.CountryCreateInput, catalogdto.CountryUpdateInput](base, service.CrudService,
		func(in *catalogdto.CountryCreateInput) models.Country {
			return models.Country{Name: in.Name, Slug: in.Slug, FlagURL: in.FlagURL}
		})
}

// NewLevelHandler serves /levels, the study levels a scholarship is filed under.
func NewLevelHandler(base *basehdl.BaseHandler, service *catalogsvc.LevelService) *basehdl.CrudHandler[models.Level, catalogdto.TermCreateInput, catalogdto.TermUpdateInput] {
	return basehdl.NewCrudHandler[models.Level, catalogdto.TermCreateInput, catalogdto.TermUpdateInput](base, service.CrudService,
		func(in *catalogdto.TermCreateInput) models.Level {
			return models.Level{Name: in.Name, Slug: in.Slug, Description: in.Description}
		})
}
