package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteSettingsDefaultName is stored when the first save omits siteName
const SiteSettingsDefaultName = "Default Site Name"

// SiteSettings is the single site-wide configuration document
type SiteSettings struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// ===== IDENTITY =====
	SiteName    string `json:"siteName" bson:"siteName" default:"Default Site Name"`
	Tagline     string `json:"tagline,omitempty" bson:"tagline,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Favicon     string `json:"favicon,omitempty" bson:"favicon,omitempty"`
	Logo        string `json:"logo,omitempty" bson:"logo,omitempty"`
	LogoDark    string `json:"logoDark,omitempty" bson:"logoDark,omitempty"`

	// ===== CONTACT =====
	Email     string `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	Whatsapp  string `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	Address   string `json:"address,omitempty" bson:"address,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Youtube   string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	Linkedin  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`

	// ===== THEME =====
	PrimaryColor    string `json:"primaryColor,omitempty" bson:"primaryColor,omitempty"`
	SecondaryColor  string `json:"secondaryColor,omitempty" bson:"secondaryColor,omitempty"`
	AccentColor     string `json:"accentColor,omitempty" bson:"accentColor,omitempty"`
	EnableDarkMode  bool   `json:"enableDarkMode" bson:"enableDarkMode"`
	RTLDirection    bool   `json:"rtlDirection" bson:"rtlDirection"`
	DefaultLanguage string `json:"defaultLanguage,omitempty" bson:"defaultLanguage,omitempty"`

	// ===== HERO =====
	HeroTitle       string `json:"heroTitle,omitempty" bson:"heroTitle,omitempty"`
	HeroSubtitle    string `json:"heroSubtitle,omitempty" bson:"heroSubtitle,omitempty"`
	HeroDescription string `json:"heroDescription,omitempty" bson:"heroDescription,omitempty"`
	HeroButtonText  string `json:"heroButtonText,omitempty" bson:"heroButtonText,omitempty"`

	// ===== FEATURES =====
	EnableNewsletter        bool   `json:"enableNewsletter" bson:"enableNewsletter"`
	EnableScholarshipSearch bool   `json:"enableScholarshipSearch" bson:"enableScholarshipSearch"`
	FooterText              string `json:"footerText,omitempty" bson:"footerText,omitempty"`

	// ===== HOME PAGE SECTIONS =====
	ShowHeroSection          bool `json:"showHeroSection" bson:"showHeroSection"`
	ShowStatsSection         bool `json:"showStatsSection" bson:"showStatsSection"`
	ShowFeaturedScholarships bool `json:"showFeaturedScholarships" bson:"showFeaturedScholarships"`
	ShowSearchSection        bool `json:"showSearchSection" bson:"showSearchSection"`
	ShowCategoriesSection    bool `json:"showCategoriesSection" bson:"showCategoriesSection"`
	ShowCountriesSection     bool `json:"showCountriesSection" bson:"showCountriesSection"`
	ShowLatestScholarships   bool `json:"showLatestScholarships" bson:"showLatestScholarships"`
	ShowPartnersSection      bool `json:"showPartnersSection" bson:"showPartnersSection"`
	ShowTestimonialsSection  bool `json:"showTestimonialsSection" bson:"showTestimonialsSection"`
	ShowNewsletterSection    bool `json:"showNewsletterSection" bson:"showNewsletterSection"`
	ShowArticlesSection      bool `json:"showArticlesSection" bson:"showArticlesSection"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// SeoSettings holds the meta tags of one page path
type SeoSettings struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PagePath        string             `json:"pagePath" bson:"pagePath" index:"unique"`
	MetaTitle       string             `json:"metaTitle,omitempty" bson:"metaTitle,omitempty"`
	MetaDescription string             `json:"metaDescription,omitempty" bson:"metaDescription,omitempty"`
	OgImage         string             `json:"ogImage,omitempty" bson:"ogImage,omitempty"`
	Keywords        string             `json:"keywords,omitempty" bson:"keywords,omitempty"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}
