package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kavyamurthy/paintsight/internal/analyzer"
	"github.com/kavyamurthy/paintsight/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "paintsight",
	Short: "Sales analytics for paint retail shops",
	Long:  `paintsight analyzes paint shop order history: customer segmentation, behavioral heatmaps, market-basket purchase predictions and city-level demand forecasts, emitted as report streams to files, Kafka or the console.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		a := analyzer.NewAnalyzer(cfg)
		if err := a.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().Int("seed", 42, "Random seed for generated datasets")
	rootCmd.Flags().String("data-file", "", "JSON dataset export to analyze")
	rootCmd.Flags().Int("generate-orders", 0, "Generate a synthetic dataset with this many orders")
	rootCmd.Flags().String("as-of-date", "", "Reference time for recency metrics (RFC3339, defaults to now)")
	rootCmd.Flags().Float64("min-confidence", 0.10, "Minimum association confidence")
	rootCmd.Flags().Float64("min-support", 0.05, "Minimum bundle support")
	rootCmd.Flags().Float64("dormant-days", 180, "Days without a purchase before a customer counts as dormant")
	rootCmd.Flags().String("product-id", "", "Limit purchase predictions to one product")
	rootCmd.Flags().String("cart-ids", "", "Comma separated product ids for cart recommendations")
	rootCmd.Flags().String("brand", "", "Brand for the affinity report")
	rootCmd.Flags().Int("target-month", 0, "Forecast month 1-12 (defaults to next month)")
	rootCmd.Flags().Int("target-year", 0, "Forecast year (defaults to current)")
	rootCmd.Flags().String("output-path", "", "Base path for file output")
	rootCmd.Flags().String("output-folder", "reports", "Folder under the output path")
	rootCmd.Flags().String("output-format", "json", "Output format: json, csv or parquet")
	rootCmd.Flags().String("output-destination", "local", "Output destination: local or cloud")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().Bool("postgres-enabled", false, "Read the dataset from postgres")
	rootCmd.Flags().String("database-url", "", "Postgres connection string")

	// config keys use underscores, flags use dashes
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
