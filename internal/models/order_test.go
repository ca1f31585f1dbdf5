package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []OrderItem {
	return []OrderItem{
		{Product: Product{ID: "P001", ColorName: "Ocean Blue", Price: 500}, Quantity: 2, Subtotal: 1000},
		{Product: Product{ID: "P002", ColorName: "Pure White", Price: 250}, Quantity: 1, Subtotal: 250},
	}
}

func TestOrderTotals(t *testing.T) {
	items := sampleItems()

	assert.Equal(t, 1250.0, Subtotal(items))
	assert.Equal(t, 125.0, SaleTax(items))
	assert.Equal(t, 1375.0, OrderGrandTotal(items))
}

func TestNewOrderSnapshotsTotals(t *testing.T) {
	placedAt := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)
	order := NewOrder("ORD-1", "SP1", "BLR001", PaymentMethodCash, "Kavya", "+91-9000000001", sampleItems(), placedAt)

	assert.Equal(t, 1250.0, order.Total)
	assert.Equal(t, 125.0, order.Tax)
	assert.Equal(t, 1375.0, order.GrandTotal)
	assert.Equal(t, "2025-03-15T14:30:00Z", order.Timestamp)
	assert.Equal(t, 3, order.TotalItems())
	assert.False(t, order.IsEmpty())
}

func TestStoredTotalsAreNotRecomputed(t *testing.T) {
	// converted history rows carry 18% GST; their snapshots must survive as-is
	order := Order{
		Items:      sampleItems(),
		Total:      1250,
		Tax:        225, // 18% GST from the legacy system
		GrandTotal: 1475,
	}

	assert.Equal(t, 225.0, order.Tax)
	assert.NotEqual(t, SaleTax(order.Items), order.Tax)
}

func TestOrderTimeLayouts(t *testing.T) {
	cases := []struct {
		timestamp string
		wantHour  int
	}{
		{"2025-03-15T14:30:00Z", 14},
		{"2025-03-15T14:30:00+05:30", 14},
		{"2025-03-15T09:05:00", 9},
		{"2025-03-15", 0},
	}
	for _, tc := range cases {
		order := Order{Timestamp: tc.timestamp}
		parsed, ok := order.Time()
		require.True(t, ok, "timestamp %q should parse", tc.timestamp)
		assert.Equal(t, tc.wantHour, parsed.Hour())
	}

	order := Order{Timestamp: "15/03/2025"}
	_, ok := order.Time()
	assert.False(t, ok)
}

func TestColorCode(t *testing.T) {
	assert.Equal(t, "#0077BE", ColorCode("Ocean Blue"))
	assert.Equal(t, "#000000", ColorCode(""))

	// unknown names hash to a stable pseudo-color
	first := ColorCode("Galactic Mauve")
	second := ColorCode("Galactic Mauve")
	assert.Equal(t, first, second)
	assert.Regexp(t, `^#[0-9A-F]{6}$`, first)
	assert.NotEqual(t, ColorCode("Galactic Teal"), first)
}
