package services_test

import (
	"testing"

	"thanhha/internal/models"
	"thanhha/internal/services"

	"github.com/stretchr/testify/assert"
)

var (
	productA = models.Product{ID: "prod-a", Name: "Rượu Táo Mèo", Category: "Trái Cây Rừng", Price: 320000}
	productB = models.Product{ID: "prod-b", Name: "Rượu Sâm Ngọc Linh", Category: "Sâm & Nấm", Price: 1250000}
)

func TestCartService_AddItemMergesLines(t *testing.T) {
	carts := services.NewCartService()

	carts.AddItem("sess-1", productA, 2)
	carts.AddItem("sess-1", productA, 3)

	snap := carts.Snapshot("sess-1")
	assert.Len(t, snap.Lines, 1, "repeated adds must merge into one line")
	assert.Equal(t, 5, snap.Lines[0].Quantity)
	assert.Equal(t, 5, snap.TotalItems)
	assert.Equal(t, int64(5*320000), snap.TotalPrice)
}

func TestCartService_AddItemClampsQuantity(t *testing.T) {
	carts := services.NewCartService()

	carts.AddItem("sess-1", productA, 0)
	carts.AddItem("sess-2", productA, -4)

	assert.Equal(t, 1, carts.Snapshot("sess-1").TotalItems)
	assert.Equal(t, 1, carts.Snapshot("sess-2").TotalItems)
}

func TestCartService_InsertionOrderSurvivesRemoval(t *testing.T) {
	carts := services.NewCartService()
	productC := models.Product{ID: "prod-c", Name: "Rượu Ba Kích Tím", Price: 480000}

	carts.AddItem("sess-1", productA, 1)
	carts.AddItem("sess-1", productB, 1)
	carts.AddItem("sess-1", productC, 1)
	carts.RemoveItem("sess-1", productB.ID)

	snap := carts.Snapshot("sess-1")
	assert.Len(t, snap.Lines, 2)
	assert.Equal(t, productA.ID, snap.Lines[0].Product.ID)
	assert.Equal(t, productC.ID, snap.Lines[1].Product.ID)

	// The index must still be consistent: adjust the surviving tail line.
	carts.UpdateQuantity("sess-1", productC.ID, 2)
	snap = carts.Snapshot("sess-1")
	assert.Equal(t, 3, snap.Lines[1].Quantity)
}

func TestCartService_UpdateQuantityRemovesAtZero(t *testing.T) {
	carts := services.NewCartService()

	carts.AddItem("sess-1", productA, 2)
	carts.UpdateQuantity("sess-1", productA.ID, -2)

	snap := carts.Snapshot("sess-1")
	assert.Empty(t, snap.Lines, "a line driven to zero must be removed, not kept at quantity 0")
	assert.Equal(t, 0, snap.TotalItems)
	assert.Equal(t, int64(0), snap.TotalPrice)
}

func TestCartService_UpdateQuantityUnknownProductIsNoop(t *testing.T) {
	carts := services.NewCartService()

	carts.AddItem("sess-1", productA, 1)
	carts.UpdateQuantity("sess-1", "nope", -1)
	carts.UpdateQuantity("other-session", productA.ID, -1)

	assert.Equal(t, 1, carts.Snapshot("sess-1").TotalItems)
}

func TestCartService_RemoveItemUnknownProductIsNoop(t *testing.T) {
	carts := services.NewCartService()

	carts.AddItem("sess-1", productA, 1)
	carts.RemoveItem("sess-1", "nope")

	assert.Equal(t, 1, carts.Snapshot("sess-1").TotalItems)
}

func TestCartService_TotalsTrackMutationSequences(t *testing.T) {
	carts := services.NewCartService()

	carts.AddItem("sess-1", productA, 2)            // 2 x 320000
	carts.AddItem("sess-1", productB, 1)            // 1 x 1250000
	carts.UpdateQuantity("sess-1", productA.ID, 1)  // 3 x 320000
	carts.UpdateQuantity("sess-1", productB.ID, -1) // removed
	carts.AddItem("sess-1", productB, 2)            // re-added at the end

	snap := carts.Snapshot("sess-1")
	assert.Equal(t, 5, snap.TotalItems)
	assert.Equal(t, int64(3*320000+2*1250000), snap.TotalPrice)
	assert.Equal(t, productB.ID, snap.Lines[1].Product.ID, "re-added line goes to the end")
}

func TestCartService_ClearEmptiesOnlyThatSession(t *testing.T) {
	carts := services.NewCartService()

	carts.AddItem("sess-1", productA, 2)
	carts.AddItem("sess-2", productB, 1)
	carts.Clear("sess-1")

	assert.True(t, carts.Snapshot("sess-1").IsEmpty())
	assert.Equal(t, 1, carts.Snapshot("sess-2").TotalItems)

	// Cleared carts accept new items again.
	carts.AddItem("sess-1", productB, 1)
	assert.Equal(t, 1, carts.Snapshot("sess-1").TotalItems)
}

func TestCartService_SnapshotIsACopy(t *testing.T) {
	carts := services.NewCartService()

	carts.AddItem("sess-1", productA, 1)
	snap := carts.Snapshot("sess-1")
	snap.Lines[0].Quantity = 99

	assert.Equal(t, 1, carts.Snapshot("sess-1").Lines[0].Quantity)
}
