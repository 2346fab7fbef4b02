package importer

import (
	"context"
	"strings"

	"github.com/capitolwatch/backend/internal/db"
	"github.com/capitolwatch/backend/internal/normalize"
	"github.com/capitolwatch/backend/internal/resolver"
	"github.com/capitolwatch/backend/internal/sources"
	"github.com/capitolwatch/backend/internal/util"
	"github.com/capitolwatch/backend/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type StockSource interface {
	FetchHouseDisclosures(ctx context.Context) ([]sources.StockDisclosure, error)
	FetchSenateDisclosures(ctx context.Context) ([]sources.StockDisclosure, error)
}

type StockTransactionStore interface {
	CreateStockTransaction(ctx context.Context, arg db.CreateStockTransactionParams) (db.StockTransaction, error)
}

// StockImporter pulls periodic transaction reports from both chamber
// disclosure feeds. The potential_conflict flag seeded here is the
// large-trade screen only; real conflict detection happens at read time.
type StockImporter struct {
	source   StockSource
	resolver PoliticianResolver
	store    StockTransactionStore
}

func NewStockImporter(source StockSource, res PoliticianResolver, store StockTransactionStore) *StockImporter {
	return &StockImporter{
		source:   source,
		resolver: res,
		store:    store,
	}
}

func (i *StockImporter) Run(ctx context.Context) (Result, error) {
	var house, senate []sources.StockDisclosure

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		house, err = i.source.FetchHouseDisclosures(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		senate, err = i.source.FetchSenateDisclosures(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	var result Result
	result.add(i.importDisclosures(ctx, resolver.SourceHouseFD, house))
	result.add(i.importDisclosures(ctx, resolver.SourceSenateFD, senate))
	return result, nil
}

// tradeType maps the disclosure wording onto the BUY/SELL vocabulary
// the rest of the system uses. Unknown wording passes through uppercased.
func tradeType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "purchase", "buy":
		return "BUY"
	case "sale", "sell", "sale (full)", "sale (partial)":
		return "SELL"
	default:
		return strings.ToUpper(strings.TrimSpace(raw))
	}
}

func (i *StockImporter) importDisclosures(ctx context.Context, source string, disclosures []sources.StockDisclosure) Result {
	var result Result
	for _, raw := range disclosures {
		result.Processed++

		date, ok := parseDate(raw.TransactionDate)
		if !ok {
			logger.Warn("[StockImporter] Skipping disclosure with unparseable date", "source", source, "filer_id", raw.FilerID, "date", raw.TransactionDate)
			continue
		}

		firstName, lastName := normalize.SplitName(raw.FilerName)
		politicianID, err := i.resolver.Resolve(ctx, source, raw.FilerID, resolver.Candidate{
			FirstName: firstName,
			LastName:  lastName,
			State:     normalize.State(raw.State),
			Party:     normalize.Party(raw.Party),
		})
		if err != nil {
			logger.Error("[StockImporter] Failed to resolve filer", "source", source, "filer_id", raw.FilerID, "err", err)
			continue
		}

		stockName := util.SanitizePostgresText(raw.StockName)
		if symbol := util.SanitizePostgresText(raw.StockSymbol); symbol != "" {
			stockName = symbol
		}
		amount := normalize.Amount(raw.Amount)

		var relatedBill *string
		if cleaned := util.SanitizePostgresText(raw.RelatedBill); cleaned != "" {
			relatedBill = &cleaned
		}
		_, err = i.store.CreateStockTransaction(ctx, db.CreateStockTransactionParams{
			PoliticianID:      politicianID,
			StockName:         stockName,
			TradeDate:         date,
			TradeType:         tradeType(raw.TransactionType),
			Amount:            amount.String(),
			RelatedBill:       relatedBill,
			PotentialConflict: normalize.LargeTradeFlag(amount),
		})
		if err != nil {
			logger.Error("[StockImporter] Failed to insert stock transaction", "politician_id", politicianID, "err", err)
			continue
		}
		result.Inserted++
	}
	return result
}
