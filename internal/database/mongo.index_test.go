package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type indexedModel struct {
	Slug     string `bson:"slug" index:"unique"`
	Email    string `bson:"email,omitempty" index:"unique,sparse"`
	Order    int    `bson:"order" index:"single:1"`
	MenuID   string `bson:"menuId" index:"compound:menu_order"`
	Position int    `bson:"position" index:"compound:menu_order"`
	Title    string `bson:"title"`
	Ignored  string `bson:"-" index:"unique"`
}

func TestIndexSpecs(t *testing.T) {
	specs := IndexSpecs(&indexedModel{})
	require.Len(t, specs, 4)

	assert.Equal(t, IndexSpec{Name: "slug_unique", Keys: bson.D{{Key: "slug", Value: 1}}, Unique: true}, specs[0])
	assert.Equal(t, IndexSpec{Name: "email_unique", Keys: bson.D{{Key: "email", Value: 1}}, Unique: true, Sparse: true}, specs[1])
	assert.Equal(t, IndexSpec{Name: "order_single", Keys: bson.D{{Key: "order", Value: 1}}}, specs[2])
	assert.Equal(t, "menu_order", specs[3].Name)
	assert.Equal(t, bson.D{{Key: "menuId", Value: 1}, {Key: "position", Value: 1}}, specs[3].Keys)
	assert.False(t, specs[3].Unique)
}

func TestSameIndex(t *testing.T) {
	spec := IndexSpec{Name: "slug_unique", Keys: bson.D{{Key: "slug", Value: 1}}, Unique: true}
	assert.True(t, sameIndex(bson.M{"unique": true, "key": bson.M{"slug": int32(1)}}, spec))
	assert.False(t, sameIndex(bson.M{"key": bson.M{"slug": int32(1)}}, spec))
	assert.False(t, sameIndex(bson.M{"unique": true, "key": bson.M{"title": int32(1)}}, spec))
}
