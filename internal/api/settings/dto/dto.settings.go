// Package settingsdto holds the request bodies of site and SEO settings.
package settingsdto

// SiteSettingsInput is the body of PUT /site-settings. Only present fields change.
type SiteSettingsInput struct {
	SiteName    *string `json:"siteName,omitempty" bson:"siteName,omitempty" validate:"omitempty,max=200,no_xss"`
	Tagline     *string `json:"tagline,omitempty" bson:"tagline,omitempty" validate:"omitempty,max=300"`
	Description *string `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=2000"`
	Favicon     *string `json:"favicon,omitempty" bson:"favicon,omitempty" validate:"omitempty,max=500"`
	Logo        *string `json:"logo,omitempty" bson:"logo,omitempty" validate:"omitempty,max=500"`
	LogoDark    *string `json:"logoDark,omitempty" bson:"logoDark,omitempty" validate:"omitempty,max=500"`

	Email     *string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,max=50"`
	Whatsapp  *string `json:"whatsapp,omitempty" bson:"whatsapp,omitempty" validate:"omitempty,max=50"`
	Address   *string `json:"address,omitempty" bson:"address,omitempty" validate:"omitempty,max=500"`
	Facebook  *string `json:"facebook,omitempty" bson:"facebook,omitempty" validate:"omitempty,max=500"`
	Twitter   *string `json:"twitter,omitempty" bson:"twitter,omitempty" validate:"omitempty,max=500"`
	Instagram *string `json:"instagram,omitempty" bson:"instagram,omitempty" validate:"omitempty,max=500"`
	Youtube   *string `json:"youtube,omitempty" bson:"youtube,omitempty" validate:"omitempty,max=500"`
	Linkedin  *string `json:"linkedin,omitempty" bson:"linkedin,omitempty" validate:"omitempty,max=500"`

	PrimaryColor    *string `json:"primaryColor,omitempty" bson:"primaryColor,omitempty" validate:"omitempty,max=50"`
	SecondaryColor  *string `json:"secondaryColor,omitempty" bson:"secondaryColor,omitempty" validate:"omitempty,max=50"`
	AccentColor     *string `json:"accentColor,omitempty" bson:"accentColor,omitempty" validate:"omitempty,max=50"`
	EnableDarkMode  *bool   `json:"enableDarkMode,omitempty" bson:"enableDarkMode,omitempty"`
	RTLDirection    *bool   `json:"rtlDirection,omitempty" bson:"rtlDirection,omitempty"`
	DefaultLanguage *string `json:"defaultLanguage,omitempty" bson:"defaultLanguage,omitempty" validate:"omitempty,max=10"`

	HeroTitle       *string `json:"heroTitle,omitempty" bson:"heroTitle,omitempty" validate:"omitempty,max=300"`
	HeroSubtitle    *string `json:"heroSubtitle,omitempty" bson:"heroSubtitle,omitempty" validate:"omitempty,max=300"`
	HeroDescription *string `json:"heroDescription,omitempty" bson:"heroDescription,omitempty" validate:"omitempty,max=2000"`
	HeroButtonText  *string `json:"heroButtonText,omitempty" bson:"heroButtonText,omitempty" validate:"omitempty,max=100"`

	EnableNewsletter        *bool   `json:"enableNewsletter,omitempty" bson:"enableNewsletter,omitempty"`
	EnableScholarshipSearch *bool   `json:"enableScholarshipSearch,omitempty" bson:"enableScholarshipSearch,omitempty"`
	FooterText              *string `json:"footerText,omitempty" bson:"footerText,omitempty" validate:"omitempty,max=2000"`

	ShowHeroSection          *bool `json:"showHeroSection,omitempty" bson:"showHeroSection,omitempty"`
	ShowStatsSection         *bool `json:"showStatsSection,omitempty" bson:"showStatsSection,omitempty"`
	ShowFeaturedScholarships *bool `json:"showFeaturedScholarships,omitempty" bson:"showFeaturedScholarships,omitempty"`
	ShowSearchSection        *bool `json:"showSearchSection,omitempty" bson:"showSearchSection,omitempty"`
	ShowCategoriesSection    *bool `json:"showCategoriesSection,omitempty" bson:"showCategoriesSection,omitempty"`
	ShowCountriesSection     *bool `json:"showCountriesSection,omitempty" bson:"showCountriesSection,omitempty"`
	ShowLatestScholarships   *bool `json:"showLatestScholarships,omitempty" bson:"showLatestScholarships,omitempty"`
	ShowPartnersSection      *bool `json:"showPartnersSection,omitempty" bson:"showPartnersSection,omitempty"`
	ShowTestimonialsSection  *bool `json:"showTestimonialsSection,omitempty" bson:"showTestimonialsSection,omitempty"`
	ShowNewsletterSection    *bool `json:"showNewsletterSection,omitempty" bson:"showNewsletterSection,omitempty"`
	ShowArticlesSection      *bool `json:"showArticlesSection,omitempty" bson:"showArticlesSection,omitempty"`
}

// SeoSettingsCreateInput is the body of POST /seo-settings
type SeoSettingsCreateInput struct {
	PagePath        string `json:"pagePath" validate:"required,max=500,startswith=/"`
	MetaTitle       string `json:"metaTitle,omitempty" validate:"omitempty,max=300"`
	MetaDescription string `json:"metaDescription,omitempty" validate:"omitempty,max=500"`
	OgImage         string `json:"ogImage,omitempty" validate:"omitempty,max=500"`
	Keywords        string `json:"keywords,omitempty" validate:"omitempty,max=500"`
}

// SeoSettingsUpdateInput is the body of PUT/PATCH /seo-settings/:id
type SeoSettingsUpdateInput struct {
	PagePath        *string `json:"pagePath,omitempty" bson:"pagePath,omitempty" validate:"omitempty,max=500,startswith=/"`
	MetaTitle       *string `json:"metaTitle,omitempty" bson:"metaTitle,omitempty" validate:"omitempty,max=300"`
	MetaDescription *string `json:"metaDescription,omitempty" bson:"metaDescription,omitempty" validate:"omitempty,max=500"`
	OgImage         *string `json:"ogImage,omitempty" bson:"ogImage,omitempty" validate:"omitempty,max=500"`
	Keywords        *string `json:"keywords,omitempty" bson:"keywords,omitempty" validate:"omitempty,max=500"`
}

// SeoSettingsPathInput is the body of PUT /seo-settings/path, an upsert keyed by pagePath
type SeoSettingsPathInput struct {
	PagePath        string  `json:"pagePath" bson:"-" validate:"required,max=500,startswith=/"`
	MetaTitle       *string `json:"metaTitle,omitempty" bson:"metaTitle,omitempty" validate:"omitempty,max=300"`
	MetaDescription *string `json:"metaDescription,omitempty" bson:"metaDescription,omitempty" validate:"omitempty,max=500"`
	OgImage         *string `json:"ogImage,omitempty" bson:"ogImage,omitempty" validate:"omitempty,max=500"`
	Keywords        *string `json:"keywords,omitempty" bson:"keywords,omitempty" validate:"omitempty,max=500"`
}
