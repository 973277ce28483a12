package cart

import (
	"testing"

	"itinero/models"

	"github.com/stretchr/testify/assert"
)

func item(id string, price int64) models.CartItem {
	return models.CartItem{ItineraryID: id, Title: "Trip " + id, Price: price}
}

func TestApply_Add(t *testing.T) {
	c := Apply(Cart{}, Op{Kind: OpAdd, Item: item("it-1", 5000)})

	assert.Len(t, c.Items, 1)
	assert.True(t, Contains(c, "it-1"))
}

func TestApply_AddIsIdempotentPerItinerary(t *testing.T) {
	c := Apply(Cart{}, Op{Kind: OpAdd, Item: item("it-1", 5000)})
	c = Apply(c, Op{Kind: OpAdd, Item: item("it-1", 5000)})

	assert.Len(t, c.Items, 1)
}

func TestApply_AddWithoutIDIsNoop(t *testing.T) {
	c := Apply(Cart{}, Op{Kind: OpAdd})
	assert.Empty(t, c.Items)
}

func TestApply_Remove(t *testing.T) {
	c := Apply(Cart{}, Op{Kind: OpAdd, Item: item("it-1", 5000)})
	c = Apply(c, Op{Kind: OpAdd, Item: item("it-2", 3000)})
	c = Apply(c, Op{Kind: OpRemove, ItineraryID: "it-1"})

	assert.Len(t, c.Items, 1)
	assert.False(t, Contains(c, "it-1"))
	assert.True(t, Contains(c, "it-2"))
}

func TestApply_Clear(t *testing.T) {
	c := Apply(Cart{}, Op{Kind: OpAdd, Item: item("it-1", 5000)})
	c = Apply(c, Op{Kind: OpClear})

	assert.Empty(t, c.Items)
	assert.NotNil(t, c.Items)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	original := Apply(Cart{}, Op{Kind: OpAdd, Item: item("it-1", 5000)})
	_ = Apply(original, Op{Kind: OpAdd, Item: item("it-2", 3000)})
	_ = Apply(original, Op{Kind: OpRemove, ItineraryID: "it-1"})

	assert.Len(t, original.Items, 1)
	assert.Equal(t, "it-1", original.Items[0].ItineraryID)
}

func TestTotal(t *testing.T) {
	c := Apply(Cart{}, Op{Kind: OpAdd, Item: item("it-1", 5000)})
	c = Apply(c, Op{Kind: OpAdd, Item: item("it-2", 2550)})

	assert.Equal(t, int64(7550), Total(c))
	assert.Equal(t, int64(0), Total(Cart{}))
}
