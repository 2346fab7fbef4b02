package sources

import (
	"context"

	"github.com/capitolwatch/backend/internal/util"
)

// StockDisclosure is a raw periodic transaction report entry from a
// financial disclosure feed. Chamber tells the importer which alias
// source the filer ID belongs to.
type StockDisclosure struct {
	FilerID         string `json:"filer_id"`
	FilerName       string `json:"filer_name"`
	Party           string `json:"party"`
	State           string `json:"state"`
	StockName       string `json:"stock_name"`
	StockSymbol     string `json:"stock_symbol"`
	TransactionType string `json:"transaction_type"`
	Amount          string `json:"amount"`
	TransactionDate string `json:"transaction_date"`
	RelatedBill     string `json:"related_bill"`
}

type StockClient struct {
	house  Client
	senate Client
}

func NewStockClient() *StockClient {
	return &StockClient{
		house: newClient(
			util.GetEnvString("HOUSE_DISCLOSURE_API_URL", "https://disclosures-clerk.house.gov/api"),
			"",
		),
		senate: newClient(
			util.GetEnvString("SENATE_DISCLOSURE_API_URL", "https://efdsearch.senate.gov/api"),
			"",
		),
	}
}

func (c *StockClient) FetchHouseDisclosures(ctx context.Context) ([]StockDisclosure, error) {
	var payload struct {
		Transactions []StockDisclosure `json:"transactions"`
	}
	if err := c.house.getJSON(ctx, c.house.baseURL+"/financial-disclosures/ptr", &payload); err != nil {
		return nil, err
	}
	return payload.Transactions, nil
}

func (c *StockClient) FetchSenateDisclosures(ctx context.Context) ([]StockDisclosure, error) {
	var payload struct {
		Transactions []StockDisclosure `json:"transactions"`
	}
	if err := c.senate.getJSON(ctx, c.senate.baseURL+"/financial-disclosures/ptr", &payload); err != nil {
		return nil, err
	}
	return payload.Transactions, nil
}
