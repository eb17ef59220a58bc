package sim

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteSeriesCSV(path string, series []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"hour",
		"price",
		"token_a_balance",
		"token_b_balance",
		"token_a_weight",
		"token_b_weight",
		"action",
		"token_a_sold",
		"token_b_gained",
		"cum_proceeds_token_b",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range series {
		row := []string{
			strconv.Itoa(r.Hour),
			fmtFloat(r.Price),
			fmtFloat(r.TokenABalance),
			fmtFloat(r.TokenBBalance),
			fmtFloat(r.TokenAWeight),
			fmtFloat(r.TokenBWeight),
			string(r.Action),
			fmtFloat(r.TokenASold),
			fmtFloat(r.TokenBGained),
			fmtFloat(r.CumProceedsTokenB),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
