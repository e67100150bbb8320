package valuation

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"date",
		"action",
		"volume",
		"price",
		"purchase_cost",
		"sale_revenue",
		"handling_cost",
		"storage_cost",
		"inventory_start",
		"inventory_end",
		"cash_flow",
		"cum_cash_flow",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Index),
			fmtDate(r.Date),
			string(r.Action),
			fmtFloat(r.Volume),
			fmtFloat(r.Price),
			fmtFloat(r.PurchaseCost),
			fmtFloat(r.SaleRevenue),
			fmtFloat(r.HandlingCost),
			fmtFloat(r.StorageCost),
			fmtFloat(r.InventoryStart),
			fmtFloat(r.InventoryEnd),
			fmtFloat(r.CashFlow),
			fmtFloat(r.CumCashFlow),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
