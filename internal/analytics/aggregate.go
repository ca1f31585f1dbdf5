package analytics

import (
	"sort"

	"github.com/kavyamurthy/paintsight/internal/models"
)

// WeightedKey is a key with its accumulated weight (count, quantity, spend).
type WeightedKey struct {
	Key    string
	Weight float64
}

// Counter accumulates weights per key while remembering the order keys were
// first seen, so Top can break ties by first encounter instead of map order.
type Counter struct {
	weights map[string]float64
	seen    []string
}

func NewCounter() *Counter {
	return &Counter{weights: make(map[string]float64)}
}

func (c *Counter) Add(key string, delta float64) {
	if _, ok := c.weights[key]; !ok {
		c.seen = append(c.seen, key)
	}
	c.weights[key] += delta
}

func (c *Counter) Get(key string) float64 {
	return c.weights[key]
}

func (c *Counter) Len() int {
	return len(c.seen)
}

// Top returns the n heaviest keys in descending weight order. Ties keep
// first-encountered order; n <= 0 or n > Len returns everything.
func (c *Counter) Top(n int) []WeightedKey {
	ranked := make([]WeightedKey, 0, len(c.seen))
	for _, key := range c.seen {
		ranked = append(ranked, WeightedKey{Key: key, Weight: c.weights[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Weight > ranked[j].Weight
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// GroupOrders buckets orders by key, preserving input order within buckets.
func GroupOrders(orders []models.Order, key func(models.Order) string) map[string][]models.Order {
	groups := make(map[string][]models.Order)
	for _, order := range orders {
		k := key(order)
		groups[k] = append(groups[k], order)
	}
	return groups
}

// SumOrders folds a numeric extraction over a set of orders.
func SumOrders(orders []models.Order, value func(models.Order) float64) float64 {
	var sum float64
	for _, order := range orders {
		sum += value(order)
	}
	return sum
}

// Revenue is the grand-total sum of a set of orders.
func Revenue(orders []models.Order) float64 {
	return SumOrders(orders, func(o models.Order) float64 { return o.GrandTotal })
}

// SafeDiv divides guarding the zero denominator. Ratios feed straight into
// sort comparators and rendered tables, so 0 beats NaN/Inf.
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
