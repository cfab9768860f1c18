package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"indexmodel/internal/app"
	"indexmodel/internal/config"
	"indexmodel/internal/domain"
	"indexmodel/internal/logger"
	"indexmodel/internal/repository"
	"indexmodel/internal/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type Dependencies struct {
	Config     *config.Config
	IndexModel *app.IndexModel
	Logger     *zap.SugaredLogger
}

func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	layouts := []string{}
	if cfg.Prices.DateLayout != "" {
		layouts = append(layouts, cfg.Prices.DateLayout)
	}
	priceRepository, err := repository.LoadPriceRepositoryFromFile(cfg.Prices.Path, layouts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load prices: %w", err)
	}

	indexLevelRepository := repository.NewNoopIndexLevelRepository()
	if cfg.Store.DSN != "" {
		indexLevelRepository, err = repository.NewIndexLevelRepository(cfg.Store.Driver, cfg.Store.DSN)
		if err != nil {
			return nil, err
		}
	}

	return &Dependencies{
		Config:     cfg,
		IndexModel: app.NewIndexModel(priceRepository, indexLevelRepository),
		Logger:     logger.New(),
	}, nil
}

func CloseDependencies(deps *Dependencies) {
	if err := deps.IndexModel.IndexLevelRepository.Close(); err != nil {
		deps.Logger.Errorw("failed to close index level store", "error", err)
	}
	_ = deps.Logger.Sync()
}

type runFlags struct {
	configPath     string
	pricesPath     string
	start          string
	end            string
	out            string
	rebalancesPath string
	storeDriver    string
	storeDSN       string
}

// loadConfig applies flags on top of the config file
func (f runFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("prices") {
		cfg.Prices.Path = f.pricesPath
	}
	if flags.Changed("start") {
		cfg.Index.Start = f.start
	}
	if flags.Changed("end") {
		cfg.Index.End = f.end
	}
	if flags.Changed("out") {
		cfg.Export.Path = f.out
	}
	if flags.Changed("rebalances") {
		cfg.Export.RebalancesPath = f.rebalancesPath
	}
	if flags.Changed("store-driver") {
		cfg.Store.Driver = f.storeDriver
	}
	if flags.Changed("store-dsn") {
		cfg.Store.DSN = f.storeDSN
	}
	return cfg, cfg.Validate()
}

func NewRootCommand() *cobra.Command {
	flags := runFlags{}

	root := &cobra.Command{
		Use:           "index",
		Short:         "Compute a top-3 price weighted equity index from daily prices",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "yaml config file")
	root.PersistentFlags().StringVar(&flags.pricesPath, "prices", config.DefaultPricesPath, "price csv, date column first then one column per ticker")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Compute the index level series and export it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			return runIndex(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	runCmd.Flags().StringVar(&flags.start, "start", config.DefaultStart, "first index date")
	runCmd.Flags().StringVar(&flags.end, "end", config.DefaultEnd, "last index date")
	runCmd.Flags().StringVar(&flags.out, "out", config.DefaultExportPath, "index level csv")
	runCmd.Flags().StringVar(&flags.rebalancesPath, "rebalances", "", "optional rebalance log csv")
	runCmd.Flags().StringVar(&flags.storeDriver, "store-driver", config.DefaultDriver, "sqlite or postgres")
	runCmd.Flags().StringVar(&flags.storeDSN, "store-dsn", "", "store completed runs in this database")

	var (
		date  string
		value float64
	)
	selectCmd := &cobra.Command{
		Use:   "select",
		Short: "Print the holdings the index would buy on a date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			return selectConstituents(cmd.Context(), cfg, date, value, cmd.OutOrStdout())
		},
	}
	selectCmd.Flags().StringVar(&date, "date", "", "rebalance date")
	selectCmd.Flags().Float64Var(&value, "value", domain.BaseIndexLevel, "index value to invest")
	_ = selectCmd.MarkFlagRequired("date")

	root.AddCommand(runCmd, selectCmd)
	return root
}

func runIndex(ctx context.Context, cfg *config.Config, out io.Writer) error {
	start, err := util.ParseDate(cfg.Index.Start)
	if err != nil {
		return err
	}
	end, err := util.ParseDate(cfg.Index.End)
	if err != nil {
		return err
	}

	deps, err := InitializeDependencies(cfg)
	if err != nil {
		return err
	}
	defer CloseDependencies(deps)

	profile, endProfile := domain.NewProfile()
	ctx = domain.NewCtxWithProfile(logger.WithContext(ctx, deps.Logger), profile)

	m := deps.IndexModel
	if err := m.Run(ctx, start, end); err != nil {
		return err
	}
	if err := m.Export(cfg.Export.Path); err != nil {
		return err
	}
	if cfg.Export.RebalancesPath != "" {
		if err := m.ExportRebalances(cfg.Export.RebalancesPath); err != nil {
			return err
		}
	}
	endProfile()

	run, err := m.IndexRun()
	if err != nil {
		return err
	}
	summary := map[string]any{
		"indexRunID": run.IndexRunID.String(),
		"days":       len(run.Series),
		"rebalances": len(run.Rebalances),
		"export":     cfg.Export.Path,
	}
	if last, ok := run.Series.Last(); ok {
		summary["finalLevel"] = last.Level
	}
	if metrics, err := m.Metrics(); err == nil {
		summary["metrics"] = metrics.Rounded(4)
	} else {
		deps.Logger.Warnw("skipping metrics", "error", err)
	}
	deps.Logger.Infow("index run complete", "timings", profile.Durations())

	return pprint(out, summary)
}

func selectConstituents(ctx context.Context, cfg *config.Config, date string, value float64, out io.Writer) error {
	d, err := util.ParseDate(date)
	if err != nil {
		return err
	}
	deps, err := InitializeDependencies(cfg)
	if err != nil {
		return err
	}
	defer CloseDependencies(deps)

	holdings, err := deps.IndexModel.Select(logger.WithContext(ctx, deps.Logger), d, value)
	if err != nil {
		return err
	}
	return pprint(out, map[string]any{
		"date":         util.FormatDate(holdings.Date),
		"shares":       holdings.ShareMap(),
		"constituents": holdings.Constituents,
	})
}

func pprint(out io.Writer, i any) error {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(bytes))
	return err
}
