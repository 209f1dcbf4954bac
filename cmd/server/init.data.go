package main

import (
	"context"
	"errors"
	"os"

	"fullsco_api/config"
	basesvc "fullsco_api/internal/api/base/service"
	"fullsco_api/internal/api/initsvc"
	"fullsco_api/internal/logger"
)

// InitDefaultData seeds the collections from the seed file. A missing file is not an error.
func InitDefaultData(ctx context.Context, stores *basesvc.StoreProvider, cfg *config.Configuration) error {
	log := logger.WithModule("init")
	if cfg.SeedFile == "" {
		log.Info("[INIT] Seeding disabled")
		return nil
	}

	path := config.ResolvePath(cfg.SeedFile)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.WithField("file", path).Warn("[INIT] Seed file not found, skipping")
		return nil
	}

	data, err := initsvc.LoadSeedFile(path)
	if err != nil {
		return err
	}

	initService, err := initsvc.NewInitService(stores)
	if err != nil {
		return err
	}

	log.WithField("file", path).Info("[INIT] Starting InitDefaultData...")
	if err := initService.InitAll(ctx, data); err != nil {
		return err
	}
	log.Info("[INIT] Default data ready")
	return nil
}
