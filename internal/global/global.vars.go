// Package global holds process-wide values that are fixed after startup.
package global

import (
	"github.com/go-playground/validator/v10"

	"fullsco_api/config"
)

// MongoDB_Schema_Collections lists the collection names
type MongoDB_Schema_Collections struct {
	Scholarships   string
	Categories     string
	Countries      string
	Levels         string
	Pages          string
	Menus          string
	MenuItems      string
	Partners       string
	Subscribers    string
	Statistics     string
	SiteSettings   string
	SeoSettings    string
	SuccessStories string
	MediaFiles     string
}

var (
	// Validate is the shared validator, see InitValidator
	Validate *validator.Validate

	// ServerConfig is set once by cmd/server
	ServerConfig *config.Configuration

	// MongoDB_ColNames holds the collection names
	MongoDB_ColNames = MongoDB_Schema_Collections{
		Scholarships:   "scholarships",
		Categories:     "categories",
		Countries:      "countries",
		Levels:         "levels",
		Pages:          "pages",
		Menus:          "menus",
		MenuItems:      "menu_items",
		Partners:       "partners",
		Subscribers:    "subscribers",
		Statistics:     "statistics",
		SiteSettings:   "site_settings",
		SeoSettings:    "seo_settings",
		SuccessStories: "success_stories",
		MediaFiles:     "media_files",
	}
)
