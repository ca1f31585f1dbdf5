package analytics

import (
	"errors"
	"sort"

	"github.com/kavyamurthy/paintsight/internal/models"
)

// ErrProductNotFound reports a prediction request for a product id missing
// from the catalog. Distinct from a known product with no recorded
// co-occurrences, which yields an empty "Weak" prediction, not an error.
var ErrProductNotFound = errors.New("product not found")

// CoOccurrenceMatrix maps productID → productID → co-purchase count.
// Symmetric by construction.
type CoOccurrenceMatrix map[string]map[string]int

type ProductAssociation struct {
	ProductID         string  `json:"product_id"`
	ProductName       string  `json:"product_name"`
	ColorName         string  `json:"color_name"`
	ColorCode         string  `json:"color_code"`
	Brand             string  `json:"brand"`
	CoOccurrenceCount int     `json:"co_occurrence_count"`
	Confidence        float64 `json:"confidence"` // 0-1
	Lift              float64 `json:"lift"`       // >1 means positive association
	Support           float64 `json:"support"`
}

type PurchasePrediction struct {
	CurrentProduct      models.Product       `json:"current_product"`
	Recommendations     []ProductAssociation `json:"recommendations"`
	TotalAnalyzedOrders int                  `json:"total_analyzed_orders"`
	PredictionStrength  string               `json:"prediction_strength"`
}

type ProductBundle struct {
	Products     []models.Product `json:"products"`
	Frequency    int              `json:"frequency"`
	TotalRevenue float64          `json:"total_revenue"` // combined list price
}

type PredictionInsights struct {
	TotalPatterns      float64       `json:"total_patterns"`
	StrongAssociations float64       `json:"strong_associations"`
	AverageConfidence  float64       `json:"average_confidence"`
	TopBundle          *ProductBundle `json:"top_bundle,omitempty"`
}

const (
	// associations below this confidence are noise, not signal
	DefaultMinConfidence = 0.10
	DefaultMinSupport    = 0.05

	cartBoostFactor = 0.3
)

// BasketEngine precomputes the co-occurrence matrix and per-product order
// counts for one immutable dataset. Rebuild it whenever the data refreshes;
// there is no incremental update path.
//
// Matrix construction is O(orders × items²), fine while baskets stay small.
// TODO: switch to counting distinct pairs per order if basket sizes grow past
// a handful of lines.
type BasketEngine struct {
	orders        []models.Order
	catalog       map[string]models.Product
	matrix        CoOccurrenceMatrix
	ordersWith    map[string]int
	minConfidence float64
}

func NewBasketEngine(products []models.Product, orders []models.Order, minConfidence float64) *BasketEngine {
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}
	catalog := make(map[string]models.Product, len(products))
	for _, product := range products {
		catalog[product.ID] = product
	}

	matrix := make(CoOccurrenceMatrix, len(products))
	for _, product := range products {
		matrix[product.ID] = make(map[string]int)
	}

	ordersWith := make(map[string]int)
	for _, order := range orders {
		ids := make([]string, 0, len(order.Items))
		seen := make(map[string]bool, len(order.Items))
		for _, item := range order.Items {
			ids = append(ids, item.Product.ID)
			if !seen[item.Product.ID] {
				seen[item.Product.ID] = true
				ordersWith[item.Product.ID]++
			}
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				if row, ok := matrix[ids[i]]; ok {
					row[ids[j]]++
				}
				if row, ok := matrix[ids[j]]; ok {
					row[ids[i]]++
				}
			}
		}
	}

	return &BasketEngine{
		orders:        orders,
		catalog:       catalog,
		matrix:        matrix,
		ordersWith:    ordersWith,
		minConfidence: minConfidence,
	}
}

func (e *BasketEngine) Matrix() CoOccurrenceMatrix {
	return e.matrix
}

// AssociationMetrics computes support, confidence(A→B) and lift for an
// ordered pair. All three guard zero denominators and return 0.
func (e *BasketEngine) AssociationMetrics(productA, productB string) (confidence, lift, support float64) {
	totalOrders := len(e.orders)
	coOccurrence := 0
	if row, ok := e.matrix[productA]; ok {
		coOccurrence = row[productB]
	}

	ordersWithA := e.ordersWith[productA]
	ordersWithB := e.ordersWith[productB]

	support = SafeDiv(float64(coOccurrence), float64(totalOrders))
	confidence = SafeDiv(float64(coOccurrence), float64(ordersWithA))
	expected := SafeDiv(float64(ordersWithA)*float64(ordersWithB), float64(totalOrders))
	lift = SafeDiv(float64(coOccurrence), expected)
	return confidence, lift, support
}

// PredictNextPurchase ranks co-purchase candidates for a single product.
// Returns ErrProductNotFound for an unknown id; a known product with no
// associations yields an empty recommendation list with strength "Weak".
func (e *BasketEngine) PredictNextPurchase(productID string) (PurchasePrediction, error) {
	current, ok := e.catalog[productID]
	if !ok {
		return PurchasePrediction{}, ErrProductNotFound
	}

	prediction := PurchasePrediction{
		CurrentProduct:      current,
		TotalAnalyzedOrders: len(e.orders),
		PredictionStrength:  "Weak",
	}

	associations := e.matrix[productID]
	if len(associations) == 0 {
		return prediction, nil
	}

	ids := make([]string, 0, len(associations))
	for id := range associations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		product, ok := e.catalog[id]
		if !ok {
			continue
		}
		confidence, lift, support := e.AssociationMetrics(productID, id)
		if confidence <= e.minConfidence {
			continue
		}
		prediction.Recommendations = append(prediction.Recommendations, ProductAssociation{
			ProductID:         product.ID,
			ProductName:       product.ColorName,
			ColorName:         product.ColorName,
			ColorCode:         product.ColorCode,
			Brand:             product.Brand,
			CoOccurrenceCount: associations[id],
			Confidence:        confidence,
			Lift:              lift,
			Support:           support,
		})
	}

	sort.SliceStable(prediction.Recommendations, func(i, j int) bool {
		return prediction.Recommendations[i].Confidence > prediction.Recommendations[j].Confidence
	})

	if len(prediction.Recommendations) > 0 {
		switch max := prediction.Recommendations[0].Confidence; {
		case max >= 0.7:
			prediction.PredictionStrength = "Very Strong"
		case max >= 0.5:
			prediction.PredictionStrength = "Strong"
		case max >= 0.3:
			prediction.PredictionStrength = "Moderate"
		}
	}

	if len(prediction.Recommendations) > 8 {
		prediction.Recommendations = prediction.Recommendations[:8]
	}
	return prediction, nil
}

// PredictForCart merges per-item predictions for a whole basket. Repeat
// recommendations get a confidence boost (capped at 1.0) and their
// co-occurrence counts summed; items already in the cart are never
// recommended back.
func (e *BasketEngine) PredictForCart(productIDs []string) ([]ProductAssociation, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	inCart := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		inCart[id] = true
	}

	merged := make(map[string]*ProductAssociation)
	var order []string

	for _, id := range productIDs {
		prediction, err := e.PredictNextPurchase(id)
		if err != nil {
			return nil, err
		}
		for _, rec := range prediction.Recommendations {
			if inCart[rec.ProductID] {
				continue
			}
			if existing, ok := merged[rec.ProductID]; ok {
				existing.Confidence += rec.Confidence * cartBoostFactor
				if existing.Confidence > 1.0 {
					existing.Confidence = 1.0
				}
				existing.CoOccurrenceCount += rec.CoOccurrenceCount
			} else {
				copied := rec
				merged[rec.ProductID] = &copied
				order = append(order, rec.ProductID)
			}
		}
	}

	results := make([]ProductAssociation, 0, len(order))
	for _, id := range order {
		results = append(results, *merged[id])
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})
	if len(results) > 6 {
		results = results[:6]
	}
	return results, nil
}

// FrequentBundles enumerates 2-item combinations across all multi-line
// orders and keeps pairs seen in at least totalOrders × minSupport orders.
func (e *BasketEngine) FrequentBundles(minSupport float64) []ProductBundle {
	if minSupport <= 0 {
		minSupport = DefaultMinSupport
	}

	pairCounts := NewCounter()
	pairIDs := make(map[string][2]string)

	for _, order := range e.orders {
		if len(order.Items) < 2 {
			continue
		}
		ids := make([]string, 0, len(order.Items))
		for _, item := range order.Items {
			ids = append(ids, item.Product.ID)
		}
		sort.Strings(ids)
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				key := ids[i] + "_" + ids[j]
				pairCounts.Add(key, 1)
				pairIDs[key] = [2]string{ids[i], ids[j]}
			}
		}
	}

	minCount := float64(len(e.orders)) * minSupport
	var bundles []ProductBundle
	for _, ranked := range pairCounts.Top(0) {
		if ranked.Weight < minCount {
			continue
		}
		pair := pairIDs[ranked.Key]
		first, okA := e.catalog[pair[0]]
		second, okB := e.catalog[pair[1]]
		if !okA || !okB {
			continue
		}
		bundles = append(bundles, ProductBundle{
			Products:     []models.Product{first, second},
			Frequency:    int(ranked.Weight),
			TotalRevenue: first.Price + second.Price,
		})
	}

	if len(bundles) > 10 {
		bundles = bundles[:10]
	}
	return bundles
}

// BrandAffinity finds what customers of a brand also buy: the named
// customers who purchased the brand at least once, then every other-brand
// product those customers bought, ranked by purchase count. Walk-in sales
// carry no customer key and are excluded here.
func (e *BasketEngine) BrandAffinity(brand string) []models.Product {
	brandCustomers := make(map[string]bool)
	for _, order := range e.orders {
		if order.CustomerName == "" {
			continue
		}
		for _, item := range order.Items {
			if item.Product.Brand == brand {
				brandCustomers[order.CustomerName] = true
				break
			}
		}
	}

	otherProducts := NewCounter()
	for _, order := range e.orders {
		if order.CustomerName == "" || !brandCustomers[order.CustomerName] {
			continue
		}
		for _, item := range order.Items {
			if item.Product.Brand != brand {
				otherProducts.Add(item.Product.ID, 1)
			}
		}
	}

	recommendations := make([]models.Product, 0, 6)
	for _, ranked := range otherProducts.Top(6) {
		if product, ok := e.catalog[ranked.Key]; ok {
			recommendations = append(recommendations, product)
		}
	}
	return recommendations
}

// Insights summarizes the association landscape. Pair totals divide by two
// because the matrix stores each pair in both directions.
func (e *BasketEngine) Insights() PredictionInsights {
	var totalPatterns, strongAssociations float64
	var totalConfidence float64
	confidenceCount := 0

	for productID, associations := range e.matrix {
		for associatedID := range associations {
			totalPatterns++
			confidence, _, _ := e.AssociationMetrics(productID, associatedID)
			if confidence > 0.5 {
				strongAssociations++
			}
			if confidence > e.minConfidence {
				totalConfidence += confidence
				confidenceCount++
			}
		}
	}

	insights := PredictionInsights{
		TotalPatterns:      totalPatterns / 2,
		StrongAssociations: strongAssociations / 2,
		AverageConfidence:  SafeDiv(totalConfidence, float64(confidenceCount)),
	}
	if bundles := e.FrequentBundles(DefaultMinSupport); len(bundles) > 0 {
		insights.TopBundle = &bundles[0]
	}
	return insights
}
