package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kavyamurthy/paintsight/internal/analytics"
	"github.com/kavyamurthy/paintsight/internal/dataset"
	"github.com/kavyamurthy/paintsight/internal/models"
	"github.com/kavyamurthy/paintsight/internal/output"
	"github.com/kavyamurthy/paintsight/internal/repositories"
	"github.com/kavyamurthy/paintsight/internal/repositories/postgres"
	"github.com/schollz/progressbar/v3"
)

// Analyzer runs every analysis pass over one immutable dataset and streams
// the report records to the configured sink.
type Analyzer struct {
	cfg  *models.Config
	data *dataset.Dataset
	sink output.OutputDestination
}

func NewAnalyzer(cfg *models.Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// flattened export records; the nested report structs stay JSON-only

type predictionRecord struct {
	SourceProductID    string `json:"source_product_id"`
	SourceColorName    string `json:"source_color_name"`
	PredictionStrength string `json:"prediction_strength"`
	analytics.ProductAssociation
}

type bundleRecord struct {
	Bundle       string  `json:"bundle"`
	Frequency    int     `json:"frequency"`
	TotalRevenue float64 `json:"total_revenue"`
}

type affinityRecord struct {
	SourceBrand string `json:"source_brand"`
	models.Product
}

type cityColorRecord struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Year  int    `json:"year"`
	analytics.ColorPrediction
}

func (a *Analyzer) Run(ctx context.Context) error {
	data, err := a.loadDataset(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	a.data = data

	a.sink = output.Destination(a.cfg)
	defer func() {
		if err := a.sink.Close(); err != nil {
			log.Printf("Error closing output: %v", err)
		}
	}()

	log.Printf("Analyzing %d orders across %d products and %d shops",
		len(data.Orders), len(data.Products), len(data.Shops))

	if err := a.runSegmentation(); err != nil {
		return err
	}
	if err := a.runHeatmap(); err != nil {
		return err
	}
	if err := a.runBasketAnalysis(); err != nil {
		return err
	}
	if err := a.runCityForecast(); err != nil {
		return err
	}
	if err := a.runOverview(); err != nil {
		return err
	}

	log.Printf("Analysis complete")
	return nil
}

func (a *Analyzer) loadDataset(ctx context.Context) (*dataset.Dataset, error) {
	if a.cfg.PostgresEnabled {
		return a.loadFromPostgres(ctx)
	}
	if a.cfg.DataFile != "" {
		return dataset.LoadFromFile(a.cfg.DataFile)
	}

	orderCount := a.cfg.GenerateOrders
	if orderCount <= 0 {
		orderCount = 500
	}
	log.Printf("No data file configured, generating %d orders with seed %d", orderCount, a.cfg.Seed)
	factory := dataset.NewFactory(int64(a.cfg.Seed))
	return factory.Generate(orderCount, a.cfg.Now()), nil
}

// loadFromPostgres reads the dataset from the POS database. When the config
// also asks for generated orders, the tables are reseeded first.
func (a *Analyzer) loadFromPostgres(ctx context.Context) (*dataset.Dataset, error) {
	pool, err := pgxpool.New(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	shopRepo := postgres.NewShopRepository(pool)

	if a.cfg.GenerateOrders > 0 {
		if err := a.seedPostgres(ctx, productRepo, orderRepo, shopRepo); err != nil {
			return nil, err
		}
	}

	productsByID, err := productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	ids := make([]string, 0, len(productsByID))
	for id := range productsByID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, *productsByID[id])
	}

	shopPtrs, err := shopRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shops: %w", err)
	}
	shops := make([]models.Shop, 0, len(shopPtrs))
	for _, s := range shopPtrs {
		shops = append(shops, *s)
	}

	orderPtrs, err := orderRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	orders := make([]models.Order, 0, len(orderPtrs))
	for _, o := range orderPtrs {
		orders = append(orders, *o)
	}

	return dataset.New(products, shops, orders), nil
}

func (a *Analyzer) seedPostgres(ctx context.Context, productRepo repositories.ProductRepository, orderRepo repositories.OrderRepository, shopRepo repositories.ShopRepository) error {
	factory := dataset.NewFactory(int64(a.cfg.Seed))
	data := factory.Generate(a.cfg.GenerateOrders, a.cfg.Now())

	for _, wipe := range []func(context.Context) error{orderRepo.DeleteAll, productRepo.DeleteAll, shopRepo.DeleteAll} {
		if err := wipe(ctx); err != nil {
			return fmt.Errorf("failed to truncate tables: %w", err)
		}
	}

	products := make([]*models.Product, len(data.Products))
	for i := range data.Products {
		products[i] = &data.Products[i]
	}
	if err := productRepo.BulkCreate(ctx, products); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	shops := make([]*models.Shop, len(data.Shops))
	for i := range data.Shops {
		shops[i] = &data.Shops[i]
	}
	if err := shopRepo.BulkCreate(ctx, shops); err != nil {
		return fmt.Errorf("failed to seed shops: %w", err)
	}

	orders := make([]*models.Order, len(data.Orders))
	for i := range data.Orders {
		orders[i] = &data.Orders[i]
	}
	if err := orderRepo.BulkCreate(ctx, orders); err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}

	count, err := orderRepo.Count(ctx)
	if err != nil {
		return err
	}
	log.Printf("Seeded postgres with %d orders", count)
	return nil
}

func (a *Analyzer) emit(topic string, record interface{}) error {
	msg, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", topic, err)
	}
	if err := a.sink.WriteMessage(topic, msg); err != nil {
		return fmt.Errorf("failed to write %s record: %w", topic, err)
	}
	return nil
}

func (a *Analyzer) runSegmentation() error {
	profiles := analytics.AnalyzeCustomers(a.data.Orders, a.cfg.Now(), a.cfg.DormantDays)

	bar := progressbar.Default(int64(len(profiles)), "customer profiles")
	for _, profile := range profiles {
		if err := a.emit(output.TopicCustomerProfiles, profile); err != nil {
			return err
		}
		bar.Add(1)
	}

	return a.emit(output.TopicCustomerSummary, analytics.SummarizeCustomers(profiles))
}

func (a *Analyzer) runHeatmap() error {
	heatmap := analytics.BuildBehaviorHeatmap(a.data.Orders)

	for _, slot := range heatmap.TimeSlots {
		if err := a.emit(output.TopicTimeSlots, slot); err != nil {
			return err
		}
	}
	for _, day := range heatmap.DaysOfWeek {
		if err := a.emit(output.TopicDaysOfWeek, day); err != nil {
			return err
		}
	}
	for _, month := range heatmap.Seasonal {
		if err := a.emit(output.TopicSeasonal, month); err != nil {
			return err
		}
	}
	return a.emit(output.TopicHeatmapInsights, heatmap.Insights)
}

func (a *Analyzer) runBasketAnalysis() error {
	engine := analytics.NewBasketEngine(a.data.Products, a.data.Orders, a.cfg.MinConfidence)

	// focused run for one product, otherwise the whole catalog
	productIDs := make([]string, 0, len(a.data.Products))
	if a.cfg.ProductID != "" {
		productIDs = append(productIDs, a.cfg.ProductID)
	} else {
		for _, product := range a.data.Products {
			productIDs = append(productIDs, product.ID)
		}
	}

	bar := progressbar.Default(int64(len(productIDs)), "purchase predictions")
	for _, productID := range productIDs {
		prediction, err := engine.PredictNextPurchase(productID)
		if err != nil {
			return fmt.Errorf("prediction failed for product %s: %w", productID, err)
		}
		for _, rec := range prediction.Recommendations {
			record := predictionRecord{
				SourceProductID:    prediction.CurrentProduct.ID,
				SourceColorName:    prediction.CurrentProduct.ColorName,
				PredictionStrength: prediction.PredictionStrength,
				ProductAssociation: rec,
			}
			if err := a.emit(output.TopicPurchasePrediction, record); err != nil {
				return err
			}
		}
		bar.Add(1)
	}

	if a.cfg.CartIDs != "" {
		cartIDs := strings.Split(a.cfg.CartIDs, ",")
		for i := range cartIDs {
			cartIDs[i] = strings.TrimSpace(cartIDs[i])
		}
		recommendations, err := engine.PredictForCart(cartIDs)
		if err != nil {
			return fmt.Errorf("cart prediction failed: %w", err)
		}
		for _, rec := range recommendations {
			if err := a.emit(output.TopicCartPredictions, rec); err != nil {
				return err
			}
		}
	}

	for _, bundle := range engine.FrequentBundles(a.cfg.MinSupport) {
		names := make([]string, len(bundle.Products))
		for i, product := range bundle.Products {
			names[i] = product.ColorName
		}
		record := bundleRecord{
			Bundle:       strings.Join(names, " + "),
			Frequency:    bundle.Frequency,
			TotalRevenue: bundle.TotalRevenue,
		}
		if err := a.emit(output.TopicProductBundles, record); err != nil {
			return err
		}
	}

	if a.cfg.Brand != "" {
		for _, product := range engine.BrandAffinity(a.cfg.Brand) {
			record := affinityRecord{SourceBrand: a.cfg.Brand, Product: product}
			if err := a.emit(output.TopicBrandAffinity, record); err != nil {
				return err
			}
		}
	}

	return a.emit(output.TopicPredictionInsights, engine.Insights())
}

func (a *Analyzer) runCityForecast() error {
	now := a.cfg.Now()
	targetMonth, targetYear := a.cfg.TargetMonth, a.cfg.TargetYear
	if targetMonth < 1 || targetMonth > 12 {
		next := now.AddDate(0, 1, 0)
		targetMonth = int(next.Month())
		targetYear = next.Year()
	}
	if targetYear == 0 {
		targetYear = now.Year()
	}

	predictions := analytics.PredictCitySales(a.data.Orders, a.data.Shops, targetMonth, targetYear, now)
	for _, city := range predictions {
		for _, color := range city.ColorPredictions {
			record := cityColorRecord{
				City:            city.City,
				Month:           city.Month,
				Year:            city.Year,
				ColorPrediction: color,
			}
			if err := a.emit(output.TopicCityPredictions, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *Analyzer) runOverview() error {
	if err := a.emit(output.TopicBusinessOverview, analytics.AnalyzeBusiness(a.data.Orders)); err != nil {
		return err
	}

	// every shop in this chain stocks the shared catalog
	for _, shop := range a.data.Shops {
		summary := analytics.SummarizeInventory(shop.ID, a.data.Products)
		if err := a.emit(output.TopicInventorySummary, summary); err != nil {
			return err
		}
	}
	return nil
}
