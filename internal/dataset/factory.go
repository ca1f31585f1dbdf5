package dataset

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/kavyamurthy/paintsight/internal/models"
	"github.com/lucsky/cuid"
)

// Factory generates a seeded synthetic paint-retail dataset for demo runs
// and load testing. Same seed, same catalog and order contents; only the
// cuid order ids vary between runs.
type Factory struct {
	fake faker.Faker
	rng  *rand.Rand
}

var paintColors = []string{
	"Pure White", "Ocean Blue", "Forest Green", "Sunset Orange", "Royal Purple",
	"Light Grey", "Beige", "Teal", "Charcoal", "Cream", "Olive", "Ivory",
	"Royal Blue", "Pearl White", "Monsoon Grey", "Coastal Green", "Desert Beige",
}

var paintBrands = []string{"Asian Paints", "Berger Paints", "Birla Paints", "Nippon Paints", "Dulux"}

var paintTextures = []string{"Matte", "Gloss", "Satin", "Semi-Gloss"}

var qualityPriceRanges = map[string][2]float64{
	models.QualityEconomy:  {100, 300},
	models.QualityStandard: {300, 800},
	models.QualityPremium:  {800, 2000},
}

var bengaluruShops = []models.Shop{
	{ID: "BLR001", Name: "Asian Paints Showroom - Koramangala", Address: "Koramangala 5th Block, Bengaluru, Karnataka", Phone: "+91-9876543210", OwnerID: "owner-BLR001", City: "Bengaluru"},
	{ID: "BLR002", Name: "Berger Paints Exclusive - Indiranagar", Address: "100 Feet Road, Indiranagar, Bengaluru, Karnataka", Phone: "+91-9876543211", OwnerID: "owner-BLR002", City: "Bengaluru"},
	{ID: "BLR003", Name: "Birla Paints Center - Whitefield", Address: "ITPL Main Road, Whitefield, Bengaluru, Karnataka", Phone: "+91-9876543212", OwnerID: "owner-BLR003", City: "Bengaluru"},
	{ID: "BLR004", Name: "Nippon Paints Gallery - Jayanagar", Address: "4th Block, Jayanagar, Bengaluru, Karnataka", Phone: "+91-9876543213", OwnerID: "owner-BLR004", City: "Bengaluru"},
	{ID: "BLR005", Name: "Paint World - HSR Layout", Address: "Sector 1, HSR Layout, Bengaluru, Karnataka", Phone: "+91-9876543214", OwnerID: "owner-BLR005", City: "Bengaluru"},
	{ID: "BLR006", Name: "Color Galaxy - Malleshwaram", Address: "8th Cross, Malleshwaram, Bengaluru, Karnataka", Phone: "+91-9876543215", OwnerID: "owner-BLR006", City: "Bengaluru"},
}

// festival months carry extra demand (Holi, Diwali)
var festivalBoostMonths = map[time.Month]float64{
	time.March:    1.5,
	time.April:    1.3,
	time.October:  1.6,
	time.November: 1.8,
}

func NewFactory(seed int64) *Factory {
	return &Factory{
		fake: faker.NewWithSeed(rand.NewSource(seed)),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Generate builds a catalog, the shop directory and orderCount orders over
// the trailing year ending at asOf.
func (f *Factory) Generate(orderCount int, asOf time.Time) *Dataset {
	products := f.generateProducts()
	customers := f.generateCustomerNames(25)

	orders := make([]models.Order, 0, orderCount)
	for i := 0; i < orderCount; i++ {
		orders = append(orders, f.generateOrder(products, customers, asOf))
	}

	return New(products, bengaluruShops, orders)
}

func (f *Factory) generateProducts() []models.Product {
	var products []models.Product
	id := 1
	for _, colorName := range paintColors {
		for _, quality := range []string{models.QualityPremium, models.QualityStandard, models.QualityEconomy} {
			priceRange := qualityPriceRanges[quality]
			products = append(products, models.Product{
				ID:               fmt.Sprintf("P%03d", id),
				ColorName:        colorName,
				ColorCode:        models.ColorCode(colorName),
				ManufacturedDate: "2024-01-15",
				ExpiryDate:       "2026-01-15",
				Price:            f.fake.Float64(2, int(priceRange[0]), int(priceRange[1])),
				Quality:          quality,
				Quantity:         f.rng.Intn(200) + 50,
				Texture:          paintTextures[f.rng.Intn(len(paintTextures))],
				Batch:            fmt.Sprintf("B2024-%03d", id),
				Plant:            "Bengaluru Plant",
				Brand:            paintBrands[f.rng.Intn(len(paintBrands))],
			})
			id++
		}
	}
	return products
}

func (f *Factory) generateCustomerNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = f.fake.Person().Name()
	}
	return names
}

func (f *Factory) generateOrder(products []models.Product, customers []string, asOf time.Time) models.Order {
	placedAt := f.randomOrderTime(asOf)

	itemCount := 1 + f.rng.Intn(3)
	items := make([]models.OrderItem, 0, itemCount)
	picked := make(map[string]bool, itemCount)
	for len(items) < itemCount {
		product := products[f.rng.Intn(len(products))]
		if picked[product.ID] {
			continue
		}
		picked[product.ID] = true
		quantity := 1 + f.rng.Intn(4)
		items = append(items, models.OrderItem{
			Product:  product,
			Quantity: quantity,
			Subtotal: product.Price * float64(quantity),
		})
	}

	// roughly a third of sales are anonymous walk-ins
	customerName, customerPhone := "", ""
	if f.rng.Float64() > 0.33 {
		customerName = customers[f.rng.Intn(len(customers))]
		customerPhone = fmt.Sprintf("+91-9%09d", f.rng.Intn(1000000000))
	}

	paymentMethod := models.PaymentMethodCash
	if f.rng.Float64() > 0.5 {
		paymentMethod = models.PaymentMethodOnline
	}

	shop := bengaluruShops[f.rng.Intn(len(bengaluruShops))]
	salesperson := fmt.Sprintf("SP%d", f.rng.Intn(10)+1)

	return models.NewOrder("ORD-"+cuid.Slug(), salesperson, shop.ID, paymentMethod, customerName, customerPhone, items, placedAt)
}

// randomOrderTime skews order volume towards festival months and the
// afternoon/evening slots, so generated datasets produce non-flat heatmaps.
func (f *Factory) randomOrderTime(asOf time.Time) time.Time {
	for {
		daysBack := f.rng.Intn(365)
		day := asOf.AddDate(0, 0, -daysBack)
		accept := 0.5
		if boost, ok := festivalBoostMonths[day.Month()]; ok {
			accept *= boost
		}
		if f.rng.Float64() > accept {
			continue
		}
		hour := f.weightedHour()
		return time.Date(day.Year(), day.Month(), day.Day(), hour, f.rng.Intn(60), f.rng.Intn(60), 0, time.UTC)
	}
}

func (f *Factory) weightedHour() int {
	// afternoon and evening dominate; a sliver of orders lands outside the
	// 6-21h analysis window on purpose
	r := f.rng.Float64()
	switch {
	case r < 0.05:
		return f.rng.Intn(6) // night owls and data-entry stragglers
	case r < 0.15:
		return 6 + f.rng.Intn(3)
	case r < 0.35:
		return 9 + f.rng.Intn(3)
	case r < 0.65:
		return 12 + f.rng.Intn(3)
	case r < 0.90:
		return 15 + f.rng.Intn(3)
	default:
		return 18 + f.rng.Intn(3)
	}
}
