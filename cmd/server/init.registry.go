package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"fullsco_api/config"
	basesvc "fullsco_api/internal/api/base/service"
	catalogmodels "fullsco_api/internal/api/catalog/models"
	contentmodels "fullsco_api/internal/api/content/models"
	mediamodels "fullsco_api/internal/api/media/models"
	menumodels "fullsco_api/internal/api/menu/models"
	settingsmodels "fullsco_api/internal/api/settings/models"
	subscribermodels "fullsco_api/internal/api/subscriber/models"
	"fullsco_api/internal/database"
	"fullsco_api/internal/global"
	"fullsco_api/internal/logger"
)

const indexTimeout = 30 * time.Second

// InitRegistry builds the store provider every domain opens its collections from.
// The returned func releases the database connection.
func InitRegistry(cfg *config.Configuration) (*basesvc.StoreProvider, func(), error) {
	log := logger.WithModule("init")

	if cfg.IsMemoryStore() {
		log.Warn("Using the in-memory store, data is lost on restart")
		return basesvc.NewMemoryStoreProvider(), func() {}, nil
	}

	client, err := database.GetInstance(cfg)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = database.CloseInstance(client) }

	db := client.Database(cfg.MongoDB_DBName)
	if cfg.MongoDB_EnsureIndexes {
		if err := initIndexes(db); err != nil {
			closeFn()
			return nil, nil, err
		}
		log.Info("Ensured collection indexes")
	}

	log.WithField("database", cfg.MongoDB_DBName).Info("Initialized collection registry")
	return basesvc.NewMongoStoreProvider(db), closeFn, nil
}

// initIndexes creates the indexes declared on the models
func initIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	names := global.MongoDB_ColNames
	models := []struct {
		collection string
		model      any
	}{
		{names.Scholarships, catalogmodels.Scholarship{}},
		{names.Categories, catalogmodels.Category{}},
		{names.Countries, catalogmodels.Country{}},
		{names.Levels, catalogmodels.Level{}},
		{names.Pages, contentmodels.Page{}},
		{names.SuccessStories, contentmodels.SuccessStory{}},
		{names.Partners, contentmodels.Partner{}},
		{names.Statistics, contentmodels.Statistic{}},
		{names.Menus, menumodels.Menu{}},
		{names.MenuItems, menumodels.MenuItem{}},
		{names.SiteSettings, settingsmodels.SiteSettings{}},
		{names.SeoSettings, settingsmodels.SeoSettings{}},
		{names.Subscribers, subscribermodels.Subscriber{}},
		{names.MediaFiles, mediamodels.MediaFile{}},
	}
	for _, m := range models {
		if err := database.CreateIndexes(ctx, db.Collection(m.collection), m.model); err != nil {
			return err
		}
	}
	return nil
}
