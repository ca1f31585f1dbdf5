package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kavyamurthy/paintsight/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	data := Dataset{
		Products: []models.Product{{ID: "P001", ColorName: "Ocean Blue", Price: 500}},
		Shops:    []models.Shop{{ID: "BLR001", Name: "Test Shop", City: "Bengaluru"}},
		Orders: []models.Order{{
			ID:         "ORD-1",
			Timestamp:  "2025-05-01T10:00:00Z",
			ShopID:     "BLR001",
			Total:      500,
			Tax:        90, // legacy 18% GST snapshot, preserved verbatim
			GrandTotal: 590,
		}},
	}
	raw, err := json.Marshal(data)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Len(t, loaded.Products, 1)
	assert.Len(t, loaded.Orders, 1)
	assert.Equal(t, 90.0, loaded.Orders[0].Tax)

	product, ok := loaded.Product("P001")
	require.True(t, ok)
	assert.Equal(t, "Ocean Blue", product.ColorName)

	_, ok = loaded.Product("missing")
	assert.False(t, ok)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = LoadFromFile(path)
	assert.Error(t, err)
}

func TestFactoryGenerate(t *testing.T) {
	asOf := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	data := NewFactory(42).Generate(200, asOf)

	assert.Len(t, data.Products, len(paintColors)*3)
	assert.Len(t, data.Shops, len(bengaluruShops))
	assert.Len(t, data.Orders, 200)

	for _, order := range data.Orders {
		require.NotEmpty(t, order.Items)
		assert.LessOrEqual(t, len(order.Items), 3)

		parsed, ok := order.Time()
		require.True(t, ok)
		assert.True(t, parsed.Before(asOf.AddDate(0, 0, 1)))
		assert.True(t, parsed.After(asOf.AddDate(-1, 0, -1)))

		// totals derive from the 10% POS tax
		assert.InDelta(t, order.Total*models.POSTaxRate, order.Tax, 0.001)
		assert.InDelta(t, order.Total+order.Tax, order.GrandTotal, 0.001)
	}
}

func TestFactoryIsSeedDeterministic(t *testing.T) {
	asOf := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	first := NewFactory(7).Generate(50, asOf)
	second := NewFactory(7).Generate(50, asOf)

	assert.Equal(t, first.Products, second.Products)
	require.Equal(t, len(first.Orders), len(second.Orders))
	for i := range first.Orders {
		// order ids are cuids and differ between runs; everything else repeats
		assert.Equal(t, first.Orders[i].Timestamp, second.Orders[i].Timestamp)
		assert.Equal(t, first.Orders[i].Items, second.Orders[i].Items)
		assert.Equal(t, first.Orders[i].CustomerName, second.Orders[i].CustomerName)
		assert.Equal(t, first.Orders[i].GrandTotal, second.Orders[i].GrandTotal)
	}
}
