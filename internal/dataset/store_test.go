package dataset

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

func sales(n int) []domain.Sale {
	records := make([]domain.Sale, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, domain.Sale{
			CustomerID: "C1",
			Product:    "Produto",
			Category:   "Categoria",
			SaleDate:   domain.NewSaleDate(2024, time.January, i+1),
			Amount:     decimal.NewFromInt(int64(10 * (i + 1))),
			Quantity:   1,
			Region:     domain.RegionSul,
			Channel:    domain.ChannelPDV,
			Sex:        domain.SexFemale,
			AgeBracket: domain.AgeBracket26To35,
		})
	}
	return records
}

func TestStore_Empty(t *testing.T) {
	store := NewStore()

	snapshot := store.Snapshot()
	assert.True(t, snapshot.Empty())
	assert.NotNil(t, snapshot.Records)
	assert.Zero(t, snapshot.Version)
	assert.True(t, snapshot.LoadedAt.IsZero())
}

func TestStore_Replace(t *testing.T) {
	store := NewStore()
	fixed := time.Date(2024, 5, 24, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	input := sales(3)
	version := store.Replace("arquivo", input)
	require.Equal(t, uint64(1), version)

	input[0].Product = "alterado"

	snapshot := store.Snapshot()
	assert.Len(t, snapshot.Records, 3)
	assert.Equal(t, "Produto", snapshot.Records[0].Product)
	assert.Equal(t, "arquivo", snapshot.Source)
	assert.Equal(t, fixed, snapshot.LoadedAt)

	assert.Equal(t, uint64(2), store.Replace("api", sales(1)))
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "api", store.Source())
	assert.Equal(t, uint64(2), store.Version())
}

func TestStore_SnapshotIsStableAfterReplace(t *testing.T) {
	store := NewStore()
	store.Replace("arquivo", sales(2))

	before := store.Snapshot()
	store.Replace("arquivo", sales(5))

	assert.Len(t, before.Records, 2)
	assert.Equal(t, uint64(1), before.Version)

	appended := append(before.Records, sales(1)...)
	assert.Len(t, appended, 3)
	assert.Len(t, store.Snapshot().Records, 5)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			store.Replace("api", sales(n+1))
		}(i)
		go func() {
			defer wg.Done()
			_ = store.Snapshot()
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(10), store.Version())
}
