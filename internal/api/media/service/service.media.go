// Package mediasvc manages the media library: file records and the files on disk.
package mediasvc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/sync/errgroup"

	basesvc "fullsco_api/internal/api/base/service"
	"fullsco_api/internal/api/media/models"
	"fullsco_api/internal/common"
	"fullsco_api/internal/global"
	"fullsco_api/internal/logger"
	"fullsco_api/internal/utility"
)

const (
	// URLPrefix is where UploadDir is served
	URLPrefix = "/uploads/"

	// bulkDeleteWorkers bounds concurrent removals in BulkRemove
	bulkDeleteWorkers = 4
)

// MediaService manages media records and their files in uploadDir
type MediaService struct {
	*basesvc.CrudService[models.MediaFile]
	uploadDir string
}

// NewMediaService opens the media collection and creates uploadDir if needed
func NewMediaService(stores *basesvc.StoreProvider, uploadDir string) (*MediaService, error) {
	store, err := basesvc.Open[models.MediaFile](stores, global.MongoDB_ColNames.MediaFiles)
	if err != nil {
		return nil, fmt.Errorf("open media files: %w", err)
	}
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", uploadDir, err)
	}
	return &MediaService{
		CrudService: basesvc.NewCrudService(store, basesvc.CrudConfig[models.MediaFile]{
			Resource:    "Media file",
			DefaultSort: bson.D{{Key: "createdAt", Value: -1}},
			Filters: map[string]basesvc.FilterKind{
				"type":     basesvc.FilterPrefix,
				"isActive": basesvc.FilterBool,
			},
		}),
		uploadDir: uploadDir,
	}, nil
}

// UploadDir returns the directory files are stored in
func (s *MediaService) UploadDir() string {
	return s.uploadDir
}

// StoredName returns a fresh unique file name keeping the extension of original
func StoredName(original string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	if len(ext) > 10 || strings.ContainsAny(ext, `/\ `) {
		ext = ""
	}
	return uuid.NewString() + ext
}

// Path returns where filename is stored on disk
func (s *MediaService) Path(filename string) string {
	return filepath.Join(s.uploadDir, filepath.Base(filename))
}

// URL returns the public url of filename
func URL(filename string) string {
	return URLPrefix + filepath.Base(filename)
}

// RemoveFile deletes filename from disk; a missing file is not an error
func (s *MediaService) RemoveFile(filename string) error {
	if filename == "" {
		return nil
	}
	if err := os.Remove(s.Path(filename)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Remove deletes the record and then its file, unless another record still points at the same
// file. It reports false when the record does not exist. A file that cannot be removed is
// logged; the record stays deleted.
func (s *MediaService) Remove(ctx context.Context, id string) (bool, error) {
	file, err := s.GetById(ctx, id)
	if err != nil {
		if common.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	deleted, err := s.Store().DeleteById(ctx, file.ID)
	if err != nil || !deleted {
		return deleted, err
	}
	if !strings.HasPrefix(file.URL, URLPrefix) {
		return true, nil
	}

	log := logger.WithCollection(s.Store().Name()).WithField("filename", file.Filename)
	shared, err := s.Store().DocumentExists(ctx, bson.M{"filename": file.Filename})
	if err != nil {
		// the orphan sweep removes the file later if nothing references it
		log.WithError(err).Warn("Could not check other references to media file")
		return true, nil
	}
	if shared {
		log.Debug("Media file still referenced, kept on disk")
		return true, nil
	}
	if err := s.RemoveFile(file.Filename); err != nil {
		log.WithError(err).Warn("Could not remove media file from disk")
	}
	return true, nil
}

// BulkRemove removes every id concurrently and returns how many records were deleted.
// All ids are checked before anything is removed.
func (s *MediaService) BulkRemove(ctx context.Context, ids []string) (int, error) {
	for _, id := range utility.Unique(ids) {
		if _, err := utility.ParseObjectID(id); err != nil {
			return 0, err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkDeleteWorkers)
	var deleted atomic.Int64
	for _, id := range utility.Unique(ids) {
		g.Go(func() error {
			ok, err := s.Remove(gctx, id)
			if err != nil {
				return fmt.Errorf("remove %s: %w", id, err)
			}
			if ok {
				deleted.Add(1)
			}
			return nil
		})
	}
	err := g.Wait()
	return int(deleted.Load()), err
}

// SweepOrphans removes files in uploadDir that no record points to. Files younger than grace
// are kept so an upload still being recorded is never touched.
func (s *MediaService) SweepOrphans(ctx context.Context, grace time.Duration) (int, error) {
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		return 0, fmt.Errorf("read upload dir: %w", err)
	}

	cutoff := time.Now().Add(-grace)
	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		known, err := s.Store().DocumentExists(ctx, bson.M{"filename": entry.Name()})
		if err != nil {
			return removed, err
		}
		if known {
			continue
		}
		if err := s.RemoveFile(entry.Name()); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
