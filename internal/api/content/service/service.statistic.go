package contentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "fullsco_api/internal/api/base/service"
	"fullsco_api/internal/api/content/models"
	"fullsco_api/internal/common"
	"fullsco_api/internal/global"
)

// StatisticService manages the home page counters. Records are listed by
// their order field and can be filtered by type.
type StatisticService struct {
	*basesvc.CrudService[models.Statistic]
}

// NewStatisticService opens the statistics collection
func NewStatisticService(stores *basesvc.StoreProvider) (*StatisticService, error) {
	store, err := basesvc.Open[models.Statistic](stores, global.MongoDB_ColNames.Statistics)
	if err != nil {
		return nil, fmt.Errorf("open statistics: %w", err)
	}
	return &StatisticService{
		CrudService: basesvc.NewCrudService(store, basesvc.CrudConfig[models.Statistic]{
			Resource:    "Statistic",
			DefaultSort: bson.D{{Key: "order", Value: 1}},
			Filters: map[string]basesvc.FilterKind{
				"type": basesvc.FilterExact,
			},
		}),
	}, nil
}

// GetByType returns the first statistic of the given type in display order.
//
// Returns:
//   - a not found error naming Statistic when no record has that type
//   - any store error unchanged
func (s *StatisticService) GetByType(ctx context.Context, statType string) (models.Statistic, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "order", Value: 1}})
	stat, err := s.Store().FindOne(ctx, bson.M{"type": statType}, opts)
	if err != nil {
		if common.IsNotFound(err) {
			return stat, common.NewNotFoundError("Statistic")
		}
		return stat, err
	}
	return stat, nil
}
