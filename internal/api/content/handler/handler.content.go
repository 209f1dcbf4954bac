// Package contenthdl serves pages, success stories, partners and statistics.
package contenthdl

import (
	basehdl "fullsco_api/internal/api/base/handler"
	contentdto "fullsco_api/internal/api/content/dto"
	"fullsco_api/internal/api/content/models"
	contentsvc "fullsco_api/internal/api/content/service"
)

// boolOr returns *b, or def when the field was omitted
func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// NewPageHandler serves /pages. isPublished defaults to true on create.
func NewPageHandler(base *basehdl.BaseHandler, service *contentsvc.PageService) *basehdl.CrudHandler[models.Page, contentdto.PageCreateInput, contentdto.PageUpdateInput] {
	return basehdl.NewCrudHandler[models.Page, contentdto.PageCreateInput, contentdto.PageUpdateInput](base, service.CrudService,
		func(in *contentdto.PageCreateInput) models.Page {
			return models.Page{
				Title:           in.Title,
				Slug:            in.Slug,
				Content:         in.Content,
				Excerpt:         in.Excerpt,
				MetaTitle:       in.MetaTitle,
				MetaDescription: in.MetaDescription,
				MetaKeywords:    in.MetaKeywords,
				IsPublished:     boolOr(in.IsPublished, true),
			}
		})
}

// NewSuccessStoryHandler serves /success-stories.
//
// scholarshipId may be cleared on update by sending null or "".
func NewSuccessStoryHandler(base *basehdl.BaseHandler, service *contentsvc.SuccessStoryService) *basehdl.CrudHandler[models.SuccessStory, contentdto.SuccessStoryCreateInput, contentdto.SuccessStoryUpdateInput] {
	hdl := basehdl.NewCrudHandler[models.SuccessStory, contentdto.SuccessStoryCreateInput, contentdto.SuccessStoryUpdateInput](base, service.CrudService,
		func(in *contentdto.SuccessStoryCreateInput) models.SuccessStory {
			return models.SuccessStory{
				Name:            in.Name,
				Title:           in.Title,
				Slug:            in.Slug,
				Content:         in.Content,
				StudentName:     in.StudentName,
				University:      in.University,
				Country:         in.Country,
				Degree:          in.Degree,
				GraduationYear:  in.GraduationYear,
				ScholarshipName: in.ScholarshipName,
				ScholarshipID:   in.ScholarshipID,
				ThumbnailURL:    in.ThumbnailURL,
				ImageURL:        in.ImageURL,
				IsPublished:     boolOr(in.IsPublished, true),
			}
		})
	hdl.Clearable = []string{"scholarshipId"}
	return hdl
}

// NewPartnerHandler serves /partners
func NewPartnerHandler(base *basehdl.BaseHandler, service *contentsvc.PartnerService) *basehdl.CrudHandler[models.Partner, contentdto.PartnerCreateInput, contentdto.PartnerUpdateInput] {
	return basehdl.NewCrudHandler[models.Partner, contentdto.PartnerCreateInput, contentdto.PartnerUpdateInput](base, service.CrudService,
		func(in *contentdto.PartnerCreateInput) models.Partner {
			return models.Partner{
				Name:        in.Name,
				LogoURL:     in.LogoURL,
				Website:     in.Website,
				Description: in.Description,
				IsActive:    boolOr(in.IsActive, true),
			}
		})
}
