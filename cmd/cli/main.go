package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SarthakPDalvi/quant-research/internal/analysis"
	"github.com/SarthakPDalvi/quant-research/internal/config"
	"github.com/SarthakPDalvi/quant-research/internal/data"
	"github.com/SarthakPDalvi/quant-research/internal/model"
	"github.com/SarthakPDalvi/quant-research/internal/pricing"
	"github.com/SarthakPDalvi/quant-research/internal/valuation"
)

var (
	pricesPath string
	configPath string
	outPath    string

	hubs      []string
	apiKey    string
	apiURL    string
	startDate string
	endDate   string
	frequency string

	logger *logrus.Logger
)

func main() {
	logger = logrus.New()

	rootCmd := &cobra.Command{
		Use:   "quant-research",
		Short: "Gas storage valuation toolkit",
		Long:  "Values injection/withdrawal schedules against natural gas price histories and ranks candidate trading strategies",
	}

	valueCmd := &cobra.Command{
		Use:   "value",
		Short: "Value the configured strategy's schedule",
		RunE:  runValue,
	}
	valueCmd.Flags().StringVar(&pricesPath, "prices", "Nat_Gas.csv", "price history CSV (Dates,Prices)")
	valueCmd.Flags().StringVar(&configPath, "config", "run.yaml", "run configuration YAML")
	valueCmd.Flags().StringVar(&outPath, "out", "", "optional ledger CSV output path")

	rankCmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank the configured candidate strategies by net value",
		RunE:  runRank,
	}
	rankCmd.Flags().StringVar(&pricesPath, "prices", "Nat_Gas.csv", "price history CSV (Dates,Prices)")
	rankCmd.Flags().StringVar(&configPath, "config", "run.yaml", "run configuration YAML")

	potentialCmd := &cobra.Command{
		Use:   "potential",
		Short: "Rank hubs by storage potential, from a JSON price file or the price API",
		RunE:  runPotential,
	}
	potentialCmd.Flags().StringVar(&pricesPath, "prices", "prices.json", "price history JSON")
	potentialCmd.Flags().StringSliceVar(&hubs, "hub", nil, "fetch these hubs from the price API instead of --prices (repeatable)")
	potentialCmd.Flags().StringVar(&apiKey, "api-key", os.Getenv("PRICE_API_KEY"), "price API key (default $PRICE_API_KEY)")
	potentialCmd.Flags().StringVar(&apiURL, "api-url", "", "price API base URL (default hosted endpoint)")
	potentialCmd.Flags().StringVar(&startDate, "start", "", "history start, YYYY-MM-DD (required with --hub)")
	potentialCmd.Flags().StringVar(&endDate, "end", "", "history end, YYYY-MM-DD (required with --hub)")
	potentialCmd.Flags().StringVar(&frequency, "frequency", "monthly", "history frequency: daily or monthly")

	rootCmd.AddCommand(valueCmd, rankCmd, potentialCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadInputs() (*config.Config, model.StorageContract, *pricing.Series, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, model.StorageContract{}, nil, fmt.Errorf("load config: %w", err)
	}
	contract, err := cfg.Contract.ToModel()
	if err != nil {
		return nil, model.StorageContract{}, nil, err
	}
	series, err := pricing.LoadCSV(pricesPath)
	if err != nil {
		return nil, model.StorageContract{}, nil, fmt.Errorf("load prices: %w", err)
	}
	return cfg, contract, series, nil
}

func runValue(cmd *cobra.Command, args []string) error {
	cfg, contract, series, err := loadInputs()
	if err != nil {
		return err
	}

	builder, err := config.BuildStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	schedule, err := builder.Build(contract, series)
	if err != nil {
		return fmt.Errorf("build %s schedule: %w", builder.Name(), err)
	}

	result, err := valuation.Evaluate(schedule, contract, series)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"strategy": builder.Name(),
		"events":   len(result.Ledger),
	}).Info("valuation complete")

	fmt.Printf("Net value:           $%.2f\n", result.NetValue)
	fmt.Printf("Injection cost:      $%.2f\n", result.TotalInjectionCost)
	fmt.Printf("Withdrawal revenue:  $%.2f\n", result.TotalWithdrawalRevenue)
	fmt.Printf("Storage cost:        $%.2f\n", result.TotalStorageCost)
	fmt.Printf("Unit profit:         $%.4f\n", result.AverageUnitProfit)

	if outPath != "" {
		if err := valuation.WriteLedgerCSV(outPath, result.Ledger); err != nil {
			return fmt.Errorf("write ledger: %w", err)
		}
		fmt.Printf("Ledger written to %s\n", outPath)
	}
	return nil
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg, contract, series, err := loadInputs()
	if err != nil {
		return err
	}

	strategies := append([]config.StrategyConfig{cfg.Strategy}, cfg.Candidates...)
	candidates := make([]model.TradeSchedule, 0, len(strategies))
	names := make([]string, 0, len(strategies))
	for _, sc := range strategies {
		builder, err := config.BuildStrategy(sc)
		if err != nil {
			return err
		}
		schedule, err := builder.Build(contract, series)
		if err != nil {
			return fmt.Errorf("build %s schedule: %w", builder.Name(), err)
		}
		candidates = append(candidates, schedule)
		names = append(names, sc.Name)
	}

	ranked, rejected := valuation.Rank(candidates, contract, series, valuation.RankOptions{})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "rank\tstrategy\tnet_value\tstorage_cost\tunit_profit")
	for i, r := range ranked {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\t%.4f\n",
			i+1, names[r.Index], r.Result.NetValue, r.Result.TotalStorageCost, r.Result.AverageUnitProfit)
	}
	w.Flush()

	for _, rej := range rejected {
		logger.WithFields(logrus.Fields{
			"strategy": names[rej.Index],
			"reason":   rej.Err.Error(),
		}).Warn("candidate rejected")
	}
	return nil
}

func runPotential(cmd *cobra.Command, args []string) error {
	var resp *model.PriceHistoryResponse
	var err error
	if len(hubs) > 0 {
		resp, err = fetchHubPrices(cmd.Context())
	} else {
		resp, err = data.LoadPricesJSON(pricesPath)
	}
	if err != nil {
		return fmt.Errorf("load prices: %w", err)
	}

	ranked := analysis.RankHubs(data.GroupByHub(resp))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "hub\tcount\tmin\tmax\tspread_p95_p05\tintrinsic_value")
	for _, r := range ranked {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\n",
			r.Hub, r.Count, r.MinPrice, r.MaxPrice, r.SpreadP95P05, r.IntrinsicValue)
	}
	return w.Flush()
}

// fetchHubPrices pulls each --hub's history from the price API and merges
// them into one response for ranking.
func fetchHubPrices(ctx context.Context) (*model.PriceHistoryResponse, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("--start must be YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("--end must be YYYY-MM-DD")
	}

	client := data.NewPriceAPIClient(apiKey, apiURL, logger)
	merged := &model.PriceHistoryResponse{}
	for _, hub := range hubs {
		resp, err := client.QuerySeries(ctx, data.QuerySeriesParams{
			Hub:       hub,
			StartDate: start,
			EndDate:   end,
			Frequency: frequency,
		})
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", hub, err)
		}
		for _, pt := range resp.Data {
			if pt.Hub == "" {
				pt.Hub = hub
			}
			merged.Data = append(merged.Data, pt)
		}
	}
	return merged, nil
}
