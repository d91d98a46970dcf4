package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// CSVProvider implements TradeProvider for plain CSV trade exports.
// Broker-specific statement dialects are out of scope; this reads only the
// neutral interchange format described by TradeCSVFormat.
type CSVProvider struct {
	format TradeCSVFormat
}

// NewCSVProvider creates a CSV trade provider with the default format.
func NewCSVProvider() *CSVProvider {
	return &CSVProvider{format: DefaultTradeCSVFormat}
}

// NewCSVProviderWithFormat creates a CSV trade provider with a custom format.
func NewCSVProviderWithFormat(format TradeCSVFormat) *CSVProvider {
	return &CSVProvider{format: format}
}

// GetName returns the name of the trade provider.
func (p *CSVProvider) GetName() string {
	return "CSV Provider"
}

// LoadTrades loads historical trades from a CSV file. Malformed rows are
// logged and skipped rather than failing the whole load; the result is
// sorted by entry date.
func (p *CSVProvider) LoadTrades(source string) ([]types.HistoricalTrade, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("could not open trades file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return []types.HistoricalTrade{}, nil
		}
		return nil, err
	}

	var trades []types.HistoricalTrade
	lineNum := 1
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("error reading CSV at line %d: %w", lineNum, err)
		}
		lineNum++

		trade, err := p.parseRecord(record)
		if err != nil {
			log.Printf("⚠️ Skipping line %d: %v", lineNum, err)
			continue
		}
		trades = append(trades, trade)
	}

	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].EntryDate.Before(trades[j].EntryDate)
	})
	return trades, nil
}

func (p *CSVProvider) parseRecord(record []string) (types.HistoricalTrade, error) {
	var trade types.HistoricalTrade
	f := p.format

	if len(record) < f.MinColumns {
		return trade, fmt.Errorf("insufficient columns (expected %d, got %d)", f.MinColumns, len(record))
	}

	entryDate, err := time.Parse(f.DateFormat, record[f.EntryDateCol])
	if err != nil {
		return trade, fmt.Errorf("invalid entry date %q: %w", record[f.EntryDateCol], err)
	}

	direction := types.Direction(strings.ToLower(strings.TrimSpace(record[f.DirectionCol])))
	if direction != types.DirectionLong && direction != types.DirectionShort {
		return trade, fmt.Errorf("invalid direction %q", record[f.DirectionCol])
	}

	parseFloat := func(col int, name string) (float64, error) {
		v, err := strconv.ParseFloat(record[col], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", name, record[col], err)
		}
		return v, nil
	}
	parseInt := func(col int, name string) (int64, error) {
		v, err := strconv.ParseInt(record[col], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", name, record[col], err)
		}
		return v, nil
	}

	entryPrice, err := parseFloat(f.EntryPriceCol, "entry price")
	if err != nil {
		return trade, err
	}
	exitPrice, err := parseFloat(f.ExitPriceCol, "exit price")
	if err != nil {
		return trade, err
	}

	var stopLoss *float64
	if raw := strings.TrimSpace(record[f.StopLossCol]); raw != "" {
		sl, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return trade, fmt.Errorf("invalid stop loss %q: %w", raw, err)
		}
		stopLoss = &sl
	}

	positionSize, err := parseInt(f.PositionSizeCol, "position size")
	if err != nil {
		return trade, err
	}
	pnlCents, err := parseInt(f.PnlCentsCol, "pnl cents")
	if err != nil {
		return trade, err
	}
	tickSize, err := parseFloat(f.TickSizeCol, "tick size")
	if err != nil {
		return trade, err
	}
	tickValueCents, err := parseInt(f.TickValueCentsCol, "tick value cents")
	if err != nil {
		return trade, err
	}
	commissionCents, err := parseInt(f.CommissionCentsCol, "commission cents")
	if err != nil {
		return trade, err
	}
	feesCents, err := parseInt(f.FeesCentsCol, "fees cents")
	if err != nil {
		return trade, err
	}
	contractsExecuted, err := parseInt(f.ContractsExecutedCol, "contracts executed")
	if err != nil {
		return trade, err
	}

	return types.HistoricalTrade{
		Asset:             strings.TrimSpace(record[f.AssetCol]),
		Direction:         direction,
		EntryDate:         entryDate,
		EntryPrice:        entryPrice,
		ExitPrice:         exitPrice,
		StopLoss:          stopLoss,
		PositionSize:      int(positionSize),
		PnlCents:          pnlCents,
		TickSize:          tickSize,
		TickValueCents:    tickValueCents,
		CommissionCents:   commissionCents,
		FeesCents:         feesCents,
		ContractsExecuted: int(contractsExecuted),
	}, nil
}

// ValidateTrades checks the integrity of a loaded trade slice.
func (p *CSVProvider) ValidateTrades(trades []types.HistoricalTrade) error {
	return ValidateTimeSequence(trades)
}

// ValidateTimeSequence ensures trades are in chronological entry-date order.
func ValidateTimeSequence(trades []types.HistoricalTrade) error {
	for i := 1; i < len(trades); i++ {
		if trades[i].EntryDate.Before(trades[i-1].EntryDate) {
			return fmt.Errorf("trades out of order at index %d: %s before %s",
				i, trades[i].EntryDate.Format(time.RFC3339), trades[i-1].EntryDate.Format(time.RFC3339))
		}
	}
	return nil
}
