package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kavyamurthy/paintsight/internal/models"
)

// Dataset is the immutable input to every analytics pass: the product
// catalog, the shop directory and the append-only order history. Engines
// receive it explicitly — nothing module-scoped, nothing mutable.
type Dataset struct {
	Products []models.Product `json:"products"`
	Shops    []models.Shop    `json:"shops"`
	Orders   []models.Order   `json:"orders"`

	productsByID map[string]models.Product
}

func New(products []models.Product, shops []models.Shop, orders []models.Order) *Dataset {
	d := &Dataset{Products: products, Shops: shops, Orders: orders}
	d.reindex()
	return d
}

func (d *Dataset) reindex() {
	d.productsByID = make(map[string]models.Product, len(d.Products))
	for _, product := range d.Products {
		d.productsByID[product.ID] = product
	}
}

// Product looks a catalog entry up by id.
func (d *Dataset) Product(id string) (models.Product, bool) {
	product, ok := d.productsByID[id]
	return product, ok
}

// LoadFromFile reads a JSON dataset export. Stored order totals are trusted
// as written — the converted sales history carries 18% GST in its tax
// fields and those snapshots are never recomputed.
func LoadFromFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading dataset file: %w", err)
	}

	var d Dataset
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("error parsing dataset file %s: %w", path, err)
	}
	d.reindex()
	return &d, nil
}
