package menusvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fullsco_api/internal/api/menu/models"
)

func item(label string, order int, parent *models.MenuItem) models.MenuItem {
	it := models.MenuItem{ID: primitive.NewObjectID(), Label: label, Order: order}
	if parent != nil {
		id := parent.ID.Hex()
		it.ParentID = &id
	}
	return it
}

func labels(nodes []models.MenuItemNode) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Label)
	}
	return out
}

func TestBuildTreeShape(t *testing.T) {
	one := item("1", 1, nil)
	two := item("2", 2, nil)
	three := item("3", 1, &one)

	tree := BuildTree([]models.MenuItem{one, two, three}, nil)
	require.Len(t, tree, 2)
	assert.Equal(t, []string{"1", "2"}, labels(tree))
	assert.Equal(t, []string{"3"}, labels(tree[0].Children))
	assert.Empty(t, tree[1].Children)
	assert.NotNil(t, tree[1].Children, "leaves render an empty children list")
}

func TestBuildTreeKeepsInputOrder(t *testing.T) {
	root := item("root", 1, nil)
	b := item("b", 1, &root)
	a := item("a", 2, &root)
	c := item("c", 3, &root)

	tree := BuildTree([]models.MenuItem{root, b, a, c}, nil)
	require.Len(t, tree, 1)
	assert.Equal(t, []string{"b", "a", "c"}, labels(tree[0].Children))
}

func TestBuildTreeExcludesOrphans(t *testing.T) {
	root := item("root", 1, nil)
	ghost := models.MenuItem{ID: primitive.NewObjectID()}
	orphan := item("orphan", 1, &ghost)
	orphanChild := item("orphan-child", 1, &orphan)

	tree := BuildTree([]models.MenuItem{root, orphan, orphanChild}, nil)
	require.Len(t, tree, 1)
	assert.Equal(t, "root", tree[0].Label)
	assert.Empty(t, tree[0].Children)
}

func TestBuildTreeFromSubtree(t *testing.T) {
	root := item("root", 1, nil)
	child := item("child", 1, &root)
	grandchild := item("grandchild", 1, &child)

	rootID := root.ID.Hex()
	tree := BuildTree([]models.MenuItem{root, child, grandchild}, &rootID)
	require.Len(t, tree, 1)
	assert.Equal(t, "child", tree[0].Label)
	assert.Equal(t, []string{"grandchild"}, labels(tree[0].Children))
}

func TestBuildTreeSurvivesStoredCycle(t *testing.T) {
	a := item("a", 1, nil)
	b := item("b", 1, &a)
	aID := b.ID.Hex()
	a.ParentID = &aID // a <-> b, neither reachable from the roots

	tree := BuildTree([]models.MenuItem{a, b}, nil)
	assert.Empty(t, tree)
}
