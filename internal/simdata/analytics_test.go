package simdata

import (
	"math"
	"testing"
	"time"

	"github.com/matthieukhl/schemapilot/internal/clock"
	"github.com/matthieukhl/schemapilot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalytics_WeekOrdersWindow(t *testing.T) {
	e := newTestEngine(t)

	// raw per-day order counts within the 7-day window
	base := time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, time.UTC)
	counts := make(map[string]int)
	for _, o := range e.Dataset().Orders {
		d, err := time.Parse(DateLayout, o.OrderDate)
		require.NoError(t, err)
		if int(base.Sub(d).Hours()/24) <= 7 {
			counts[o.OrderDate]++
		}
	}

	result := e.Analytics("week", "orders", 0)
	require.Len(t, result.Series, 8) // days 7..0 inclusive

	for i, p := range result.Series {
		wantDate := base.AddDate(0, 0, i-7).Format(DateLayout)
		assert.Equal(t, wantDate, p.Date)

		want := float64(counts[p.Date] + Hash(p.Date+"orders")%3)
		assert.Equal(t, want, p.Value)
		assert.GreaterOrEqual(t, p.Value, 0.0)
		assert.Equal(t, math.Trunc(p.Value), p.Value, "order counts must be whole numbers")
	}
}

func TestAnalytics_QuarterSeriesTruncation(t *testing.T) {
	e := newTestEngine(t)

	result := e.Analytics("quarter", "revenue", 0)
	require.Len(t, result.Series, 30)

	base := time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, time.UTC)
	for i, p := range result.Series {
		// the 30 most recent dates, ascending, ending today
		want := base.AddDate(0, 0, i-29).Format(DateLayout)
		assert.Equal(t, want, p.Date)
	}
}

func TestAnalytics_RevenueVarianceIsDeterministic(t *testing.T) {
	e := newTestEngine(t)

	a := e.Analytics("month", "revenue", 5)
	b := e.Analytics("month", "revenue", 5)
	assert.Equal(t, a, b)
}

func TestAnalytics_UnitsFallsBackToRevenue(t *testing.T) {
	e := newTestEngine(t)

	revenue := e.Analytics("month", "revenue", 5)
	units := e.Analytics("month", "units", 5)
	assert.Equal(t, revenue.Series, units.Series)
}

func TestAnalytics_UnknownPeriodDefaultsToMonth(t *testing.T) {
	e := newTestEngine(t)

	unknown := e.Analytics("decade", "revenue", 5)
	month := e.Analytics("month", "revenue", 5)

	// the window falls back to 30 days, so the date sequence matches month
	require.Len(t, unknown.Series, 30)
	for i, p := range unknown.Series {
		assert.Equal(t, month.Series[i].Date, p.Date)
	}

	// but the revenue variance still hashes the raw period string, so the
	// values differ from month wherever a day has revenue
	base := time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, time.UTC)
	revs := make(map[string]float64)
	for _, s := range e.Dataset().Sales {
		d, err := time.Parse(DateLayout, s.SaleDate)
		require.NoError(t, err)
		if int(base.Sub(d).Hours()/24) <= 30 {
			revs[s.SaleDate] += s.Amount
		}
	}
	for _, p := range unknown.Series {
		variance := 1 + float64(Hash(p.Date+"decade")%11-5)/100
		assert.Equal(t, round2(revs[p.Date]*variance), p.Value)
	}

	// summary KPIs depend only on seed and dataset, not on the period
	assert.Equal(t, month.Summary, unknown.Summary)
}

func TestAnalytics_SummaryVariance(t *testing.T) {
	e := newTestEngine(t)
	total := e.Dataset().TotalSales()

	t.Run("seed 0 shifts revenue by -7% and orders by 0", func(t *testing.T) {
		result := e.Analytics("month", "revenue", 0)
		assert.Equal(t, round2(total*0.93), result.Summary.TotalRevenue)
		assert.Equal(t, 80, result.Summary.TotalOrders)
	})

	t.Run("seed 7 leaves revenue untouched and adds 7 orders", func(t *testing.T) {
		result := e.Analytics("month", "revenue", 7)
		assert.Equal(t, round2(total), result.Summary.TotalRevenue)
		assert.Equal(t, 87, result.Summary.TotalOrders)
	})
}

func TestAnalytics_TopRegion(t *testing.T) {
	e := newTestEngine(t)

	byRegion := e.Dataset().SalesByRegion()
	var top string
	var best float64
	for _, r := range sortedKeys(byRegion) {
		if top == "" || byRegion[r] > best {
			top, best = r, byRegion[r]
		}
	}

	result := e.Analytics("month", "revenue", 0)
	assert.Equal(t, top, result.Summary.TopRegion)
}

func TestAnalytics_EmptyDataset(t *testing.T) {
	e := NewEngine(&Dataset{}, clock.NewMockClock(testNow))

	result := e.Analytics("week", "revenue", 3)
	assert.Equal(t, "N/A", result.Summary.TopRegion)
	assert.Equal(t, 0.0, result.Summary.TotalRevenue)
	assert.Equal(t, 3, result.Summary.TotalOrders)
	require.Len(t, result.Series, 8)
}

func TestAnalytics_MalformedDatesSkipped(t *testing.T) {
	ds := &Dataset{
		Sales: []models.Sale{
			{ID: 1, Amount: 100, SaleDate: testNow.Format(DateLayout), Region: "North"},
			{ID: 2, Amount: 50, SaleDate: "not-a-date", Region: "North"},
		},
		Orders: []models.Order{
			{ID: 1, OrderDate: "also bad"},
			{ID: 2, OrderDate: testNow.Format(DateLayout)},
		},
	}
	e := NewEngine(ds, clock.NewMockClock(testNow))

	result := e.Analytics("week", "revenue", 0)
	require.Len(t, result.Series, 8)

	// only the well-formed sale contributes to today's point
	today := result.Series[7]
	variance := 1 + float64(Hash(today.Date+"week")%11-5)/100
	assert.Equal(t, round2(100*variance), today.Value)
}
