package output

import "fmt"

// Report topics. Each analysis emits one record stream; file sinks write a
// file per topic, the kafka sink produces to a topic of the same name.
const (
	TopicCustomerProfiles   = "customer_profiles"
	TopicCustomerSummary    = "customer_summary"
	TopicTimeSlots          = "time_slots"
	TopicDaysOfWeek         = "days_of_week"
	TopicSeasonal           = "seasonal"
	TopicHeatmapInsights    = "heatmap_insights"
	TopicPurchasePrediction = "purchase_predictions"
	TopicCartPredictions    = "cart_predictions"
	TopicProductBundles     = "product_bundles"
	TopicBrandAffinity      = "brand_affinity"
	TopicCityPredictions    = "city_predictions"
	TopicPredictionInsights = "prediction_insights"
	TopicBusinessOverview   = "business_overview"
	TopicInventorySummary   = "inventory_summary"
)

// Parquet schemas for the JSONWriter, one per topic. Columns cover the
// top-level scalar fields of each record; nested detail lists (favorite
// colors, order history, top products) stay JSON-only.
var parquetSchemas = map[string]string{
	TopicCustomerProfiles: `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[
		{"Tag":"name=customer_name, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=customer_phone, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=total_orders, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=total_spent, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=average_order_value, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=first_purchase, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=last_purchase, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=purchase_frequency, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=segment, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=payment_preference, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"}
	]}`,
	TopicCustomerSummary: `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[
		{"Tag":"name=total_customers, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=vip_customers, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=premium_customers, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=regular_customers, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=new_customers, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=dormant_customers, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=total_revenue, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=average_customer_value, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=total_orders, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=top_customer_name, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=top_customer_spent, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=top_customer_orders, type=INT64, repetitiontype=OPTIONAL"}
	]}`,
	TopicTimeSlots: `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[
		{"Tag":"name=time_slot, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=hour, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=total_orders, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=total_revenue, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=avg_order_value, type=DOUBLE, repetitiontype=OPTIONAL"}
	]}`,
	TopicDaysOfWeek: `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[
		{"Tag":"name=day, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=day_index, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=total_orders, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=total_revenue, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=peak_hour, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=average_basket_size, type=DOUBLE, repetitiontype=OPTIONAL"}
	]}`,
	TopicSeasonal: `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[
		{"Tag":"name=month, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=month_index, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=total_orders, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=total_revenue, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=festival_boost, type=DOUBLE, repetitiontype=OPTIONAL"}
	]}`,
	TopicHeatmapInsights: `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[
		{"Tag":"name=peak_time, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=peak_day, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=slowest_time, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=slowest_day, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=premium_buying_time, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=budget_buying_time, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"}
	]}`,
	TopicPurchasePrediction: `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[
		{"Tag":"name=source_product_id, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=source_color_name, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=prediction_strength, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=product_id, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=product_name, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=color_name, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=color_code, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=brand, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=co_occurrence_count, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=confidence, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=lift, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=support, type=DOUBLE, repetitiontype=OPTIONAL"}
	]}`,
	TopicCartPredictions: `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[
		{"Tag":"name=product_id, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=product_name, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=color_name, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=color_code, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=brand, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=co_occurrence_count, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=confidence, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=lift, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=support, type=DOUBLE, repetitiontype=OPTIONAL"}
	]}`,
	TopicProductBundles: `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[
		{"Tag":"name=bundle, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=frequency, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=total_revenue, type=DOUBLE, repetitiontype=OPTIONAL"}
	]}`,
	TopicBrandAffinity: `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[
		{"Tag":"name=source_brand, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=id, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=color_name, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=color_code, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=price, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=quality, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=brand, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"}
	]}`,
	TopicCityPredictions: `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[
		{"Tag":"name=city, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=month, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=year, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=color_name, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=color_code, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=predicted_quantity, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=confidence, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=trend, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"}
	]}`,
	TopicPredictionInsights: `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[
		{"Tag":"name=total_patterns, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=strong_associations, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=average_confidence, type=DOUBLE, repetitiontype=OPTIONAL"}
	]}`,
	TopicBusinessOverview: `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[
		{"Tag":"name=total_revenue, type=DOUBLE, repetitiontype=OPTIONAL"},
		{"Tag":"name=total_orders, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=average_order_value, type=DOUBLE, repetitiontype=OPTIONAL"}
	]}`,
	TopicInventorySummary: `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[
		{"Tag":"name=shop_id, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},
		{"Tag":"name=total_products, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=low_stock_items, type=INT64, repetitiontype=OPTIONAL"},
		{"Tag":"name=total_value, type=DOUBLE, repetitiontype=OPTIONAL"}
	]}`,
}

// GetSchema returns the parquet JSON schema for a report topic.
func GetSchema(topic string) (string, error) {
	sc, ok := parquetSchemas[topic]
	if !ok {
		return "", fmt.Errorf("unknown report topic: %s", topic)
	}
	return sc, nil
}
