package basesvc

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fullsco_api/internal/common"
	"fullsco_api/internal/logger"
)

type testItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Slug      string             `bson:"slug"`
	Kind      string             `bson:"kind,omitempty"`
	Active    bool               `bson:"active"`
	Views     int64              `bson:"views"`
	Label     string             `bson:"label,omitempty" default:"none"`
	OwnerID   string             `bson:"ownerId,omitempty"`
	CreatedAt int64              `bson:"createdAt"`
	UpdatedAt int64              `bson:"updatedAt"`
}

func TestMain(m *testing.M) {
	_ = logger.Init(&logger.LogConfig{Level: "error", Format: "text", Output: "stdout"})
	code := m.Run()
	logger.Close()
	os.Exit(code)
}

func newMemoryStore(t *testing.T) BaseServiceMongo[testItem] {
	t.Helper()
	store, err := Open[testItem](NewMemoryStoreProvider(), "items")
	require.NoError(t, err)
	return store
}

func TestMemoryStoreInsertAndFind(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		created, err := store.InsertOne(ctx, testItem{Name: name, Slug: name, Active: name != "bravo"})
		require.NoError(t, err)
		assert.False(t, created.ID.IsZero())
		assert.NotZero(t, created.CreatedAt)
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
		assert.Equal(t, "none", created.Label)
	}

	all, err := store.Find(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "charlie", all[0].Name, "insertion order without sort")

	sorted, err := store.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}).SetLimit(2))
	require.NoError(t, err)
	require.Len(t, sorted, 2)
	assert.Equal(t, "alpha", sorted[0].Name)
	assert.Equal(t, "bravo", sorted[1].Name)

	active, err := store.Find(ctx, bson.M{"active": true}, nil)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	notAlpha, err := store.Find(ctx, bson.M{"name": bson.M{"$ne": "alpha"}}, nil)
	require.NoError(t, err)
	assert.Len(t, notAlpha, 2)

	_, err = store.Find(ctx, bson.M{"name": bson.M{"$in": []string{"alpha"}}}, nil)
	assert.Error(t, err, "operators the services never issue are rejected")

	prefixed, err := store.Find(ctx, bson.M{"name": bson.M{"$regex": "^BR", "$options": "i"}}, nil)
	require.NoError(t, err)
	require.Len(t, prefixed, 1)
	assert.Equal(t, "bravo", prefixed[0].Name)

	missing, err := store.Find(ctx, bson.M{"kind": nil}, nil)
	require.NoError(t, err)
	assert.Len(t, missing, 3, "null matches a missing field")

	_, err = store.FindOne(ctx, bson.M{"name": "nobody"}, nil)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryStoreUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	created, err := store.InsertOne(ctx, testItem{Name: "item", Slug: "item", Kind: "a"})
	require.NoError(t, err)

	updated, err := store.UpdateById(ctx, created.ID, &UpdateData{
		Inc:   map[string]any{"views": 1},
		Unset: map[string]any{"kind": ""},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Views)
	assert.Empty(t, updated.Kind)
	assert.Equal(t, "item", updated.Name)
	assert.GreaterOrEqual(t, updated.UpdatedAt, created.UpdatedAt)

	updated, err = store.UpdateById(ctx, created.ID, bson.M{"name": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, int64(1), updated.Views)

	_, err = store.UpdateById(ctx, primitive.NewObjectID(), bson.M{"name": "x"})
	assert.ErrorIs(t, err, common.ErrNotFound)

	deleted, err := store.DeleteById(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.DeleteById(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryStoreUpsert(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	first, err := store.Upsert(ctx, bson.M{"slug": "home"}, bson.M{"name": "Home"})
	require.NoError(t, err)
	assert.Equal(t, "home", first.Slug, "equality fields of the filter seed the new document")
	assert.Equal(t, "none", first.Label, "defaults apply on insert")
	assert.NotZero(t, first.CreatedAt)

	second, err := store.Upsert(ctx, bson.M{"slug": "home"}, bson.M{"name": "Home page", "label": "main"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Home page", second.Name)
	assert.Equal(t, "main", second.Label)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	count, err := store.CountDocuments(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryStoreDeleteMany(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	for _, kind := range []string{"a", "b", "a"} {
		_, err := store.InsertOne(ctx, testItem{Name: kind, Kind: kind})
		require.NoError(t, err)
	}

	n, err := store.DeleteMany(ctx, bson.M{"kind": "a"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	exists, err := store.DocumentExists(ctx, bson.M{"kind": "b"})
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestToUpdateData(t *testing.T) {
	u, err := ToUpdateData(bson.M{"$set": bson.M{"a": 1}, "$inc": bson.M{"n": 2}})
	require.NoError(t, err)
	assert.Equal(t, 1, u.Set["a"])
	assert.Equal(t, 2, u.Inc["n"])

	u, err = ToUpdateData(map[string]any{"a": "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", u.Set["a"])
	assert.Nil(t, u.Inc)
}

func TestOpenReturnsSameStorePerCollection(t *testing.T) {
	p := NewMemoryStoreProvider()

	a, err := Open[testItem](p, "items")
	require.NoError(t, err)
	b, err := Open[testItem](p, "items")
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = Open[struct{ Name string }](p, "items")
	assert.Error(t, err, "a collection keeps its model type")

	assert.True(t, p.IsMemory())
	assert.NoError(t, p.Ping(context.Background()))
	assert.Equal(t, []string{"items"}, p.Collections())
}
