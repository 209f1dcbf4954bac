package subscribersvc

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	basesvc "fullsco_api/internal/api/base/service"
	"fullsco_api/internal/api/subscriber/models"
	"fullsco_api/internal/common"
	"fullsco_api/internal/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init(&logger.LogConfig{Level: "error", Format: "text", Output: "stdout"})
	code := m.Run()
	logger.Close()
	os.Exit(code)
}

func TestSubscribeNormalizesAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	svc, err := NewSubscriberService(basesvc.NewMemoryStoreProvider())
	require.NoError(t, err)

	sub, err := svc.Create(ctx, models.Subscriber{Email: "  Student@Example.COM "})
	require.NoError(t, err)
	assert.Equal(t, "student@example.com", sub.Email)

	_, err = svc.Create(ctx, models.Subscriber{Email: "student@example.com"})
	assert.ErrorIs(t, err, common.ErrDuplicate)

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	deleted, err := svc.Delete(ctx, sub.ID.Hex())
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.Create(ctx, models.Subscriber{Email: "student@example.com"})
	assert.NoError(t, err, "an unsubscribed address can subscribe again")
}
