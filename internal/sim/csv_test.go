package sim

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"lbp-sim/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSeriesCSV(t *testing.T) {
	series := []Row{
		{Hour: 0, Price: 17.6, TokenABalance: 7_500_000, TokenBBalance: 1_333_333, TokenAWeight: 0.99, TokenBWeight: 0.01, Action: model.ActionIdle},
		{Hour: 1, Price: 16.9, TokenABalance: 7_499_000, TokenBBalance: 1_350_000, TokenAWeight: 0.98, TokenBWeight: 0.02, Action: model.ActionSell, TokenASold: 1000, TokenBGained: 16_667, CumProceedsTokenB: 0},
	}

	path := filepath.Join(t.TempDir(), "series.csv")
	require.NoError(t, WriteSeriesCSV(path, series))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "hour", records[0][0])
	assert.Equal(t, "cum_proceeds_token_b", records[0][9])
	assert.Equal(t, "0", records[1][0])
	assert.Equal(t, "IDLE", records[1][6])
	assert.Equal(t, "SELL", records[2][6])
	assert.Equal(t, "16667.000000", records[2][8])
}
