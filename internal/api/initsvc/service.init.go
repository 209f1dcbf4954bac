// Package initsvc seeds default data at boot: site settings, levels, menus and statistics.
// Every step runs only when its collection is empty and goes through the domain services,
// so seeded records obey the same rules as records created over the API.
package initsvc

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	basesvc "fullsco_api/internal/api/base/service"
	catalogmodels "fullsco_api/internal/api/catalog/models"
	catalogsvc "fullsco_api/internal/api/catalog/service"
	contentmodels "fullsco_api/internal/api/content/models"
	contentsvc "fullsco_api/internal/api/content/service"
	menumodels "fullsco_api/internal/api/menu/models"
	menusvc "fullsco_api/internal/api/menu/service"
	settingssvc "fullsco_api/internal/api/settings/service"
	"fullsco_api/internal/logger"
)

// SeedData is the content of the seed file
type SeedData struct {
	SiteSettings map[string]any `yaml:"siteSettings"`
	Levels       []SeedLevel     `yaml:"levels"`
	Menus        []SeedMenu      `yaml:"menus"`
	Statistics   []SeedStatistic `yaml:"statistics"`
}

// SeedLevel is one academic level
type SeedLevel struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
}

// SeedMenu is a menu with its item tree
type SeedMenu struct {
	Title    string         `yaml:"title"`
	Slug     string         `yaml:"slug"`
	Location string         `yaml:"location"`
	Items    []SeedMenuItem `yaml:"items"`
}

// SeedMenuItem is a menu item; Children become items whose parent is this one
type SeedMenuItem struct {
	Label    string         `yaml:"label"`
	URL      string         `yaml:"url"`
	Order    int            `yaml:"order"`
	Icon     string         `yaml:"icon"`
	Children []SeedMenuItem `yaml:"children"`
}

// SeedStatistic is one statistic block
type SeedStatistic struct {
	Type  string `yaml:"type"`
	Order int    `yaml:"order"`
	Data  any    `yaml:"data"`
}

// LoadSeedFile reads and parses a seed file
func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &data, nil
}

// InitService writes seed data through the domain services
type InitService struct {
	siteSettingsService *settingssvc.SiteSettingsService
	levelService        *catalogsvc.LevelService
	menuService         *menusvc.MenuService
	menuItemService     *menusvc.MenuItemService
	statisticService    *contentsvc.StatisticService
}

// NewInitService builds the services the seed steps use
func NewInitService(stores *basesvc.StoreProvider) (*InitService, error) {
	siteSettingsService, err := settingssvc.NewSiteSettingsService(stores)
	if err != nil {
		return nil, fmt.Errorf("failed to create site settings service: %w", err)
	}
	levelService, err := catalogsvc.NewLevelService(stores)
	if err != nil {
		return nil, fmt.Errorf("failed to create level service: %w", err)
	}
	menuService, err := menusvc.NewMenuService(stores)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu service: %w", err)
	}
	menuItemService, err := menusvc.NewMenuItemService(stores)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item service: %w", err)
	}
	statisticService, err := contentsvc.NewStatisticService(stores)
	if err != nil {
		return nil, fmt.Errorf("failed to create statistic service: %w", err)
	}

	return &InitService{
		siteSettingsService: siteSettingsService,
		levelService:        levelService,
		menuService:         menuService,
		menuItemService:     menuItemService,
		statisticService:    statisticService,
	}, nil
}

// InitAll runs every seed step in order and stops at the first failure
func (h *InitService) InitAll(ctx context.Context, data *SeedData) error {
	steps := []struct {
		name string
		run  func(context.Context, *SeedData) error
	}{
		{"site settings", h.InitSiteSettings},
		{"levels", h.InitLevels},
		{"menus", h.InitMenus},
		{"statistics", h.InitStatistics},
	}
	for _, step := range steps {
		if err := step.run(ctx, data); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}
	return nil
}

// InitSiteSettings stores the default site settings unless settings were already saved
func (h *InitService) InitSiteSettings(ctx context.Context, data *SeedData) error {
	log := logger.WithModule("init")
	if len(data.SiteSettings) == 0 {
		return nil
	}
	existing, err := h.siteSettingsService.Get(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Debug("[INIT] Site settings already exist, skipping")
		return nil
	}

	patch := make(map[string]any, len(data.SiteSettings))
	for k, v := range data.SiteSettings {
		patch[k] = v
	}
	if _, err := h.siteSettingsService.Update(ctx, patch); err != nil {
		return err
	}
	log.Info("[INIT] Site settings created")
	return nil
}

// InitLevels creates the academic levels when none exist
func (h *InitService) InitLevels(ctx context.Context, data *SeedData) error {
	log := logger.WithModule("init")
	empty, err := isEmpty(ctx, h.levelService.Store())
	if err != nil || !empty {
		return err
	}

	for _, lv := range data.Levels {
		if _, err := h.levelService.Create(ctx, catalogmodels.Level{
			Name:        lv.Name,
			Slug:        lv.Slug,
			Description: lv.Description,
		}); err != nil {
			return fmt.Errorf("level %q: %w", lv.Name, err)
		}
	}
	log.WithField("count", len(data.Levels)).Info("[INIT] Levels created")
	return nil
}

// InitMenus creates the menus and their item trees when no menu exists
func (h *InitService) InitMenus(ctx context.Context, data *SeedData) error {
	log := logger.WithModule("init")
	empty, err := isEmpty(ctx, h.menuService.Store())
	if err != nil || !empty {
		return err
	}

	for _, m := range data.Menus {
		menu, err := h.menuService.Create(ctx, menumodels.Menu{
			Title:    m.Title,
			Slug:     m.Slug,
			Location: m.Location,
			IsActive: true,
		})
		if err != nil {
			return fmt.Errorf("menu %q: %w", m.Title, err)
		}
		count, err := h.createItems(ctx, menu.ID.Hex(), nil, m.Items)
		if err != nil {
			return fmt.Errorf("menu %q: %w", m.Title, err)
		}
		log.WithFields(map[string]any{"menu": menu.Slug, "items": count}).Info("[INIT] Menu created")
	}
	return nil
}

// createItems creates items under parentID, depth first, and returns how many were created
func (h *InitService) createItems(ctx context.Context, menuID string, parentID *string, items []SeedMenuItem) (int, error) {
	count := 0
	for _, it := range items {
		created, err := h.menuItemService.Create(ctx, menumodels.MenuItem{
			MenuID:   menuID,
			ParentID: parentID,
			Label:    it.Label,
			URL:      it.URL,
			Order:    it.Order,
			Icon:     it.Icon,
			IsActive: true,
		})
		if err != nil {
			return count, fmt.Errorf("item %q: %w", it.Label, err)
		}
		count++

		id := created.ID.Hex()
		n, err := h.createItems(ctx, menuID, &id, it.Children)
		count += n
		if err != nil {
			return count, err
		}
	}
	return count, nil
}

// InitStatistics creates the statistic blocks when none exist
func (h *InitService) InitStatistics(ctx context.Context, data *SeedData) error {
	log := logger.WithModule("init")
	empty, err := isEmpty(ctx, h.statisticService.Store())
	if err != nil || !empty {
		return err
	}

	for _, st := range data.Statistics {
		if _, err := h.statisticService.Create(ctx, contentmodels.Statistic{
			Type:  st.Type,
			Data:  st.Data,
			Order: st.Order,
		}); err != nil {
			return fmt.Errorf("statistic %q: %w", st.Type, err)
		}
	}
	log.WithField("count", len(data.Statistics)).Info("[INIT] Statistics created")
	return nil
}

type counter interface {
	CountDocuments(ctx context.Context, filter any) (int64, error)
}

func isEmpty(ctx context.Context, store counter) (bool, error) {
	n, err := store.CountDocuments(ctx, nil)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
