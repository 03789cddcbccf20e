package simdata

import "time"

// Point is a single entry of the dashboard time series.
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Summary holds the dashboard KPI values.
type Summary struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalOrders  int     `json:"totalOrders"`
	TopRegion    string  `json:"topRegion"`
}

// AnalyticsResult is the dashboard payload: KPI summary plus a bounded
// time series for the requested period and metric.
type AnalyticsResult struct {
	Summary Summary `json:"summary"`
	Series  []Point `json:"series"`
}

// maxSeriesPoints bounds the returned series, keeping the most recent dates.
const maxSeriesPoints = 30

// Analytics computes dashboard KPIs and a per-day time series with
// seed-controlled variance. period is week, month or quarter (anything else
// falls back to month); metric is revenue or orders, with any other value
// (including units) treated as revenue.
func (e *Engine) Analytics(period, metric string, seed int64) AnalyticsResult {
	s := normSeed(seed, 1000)

	daysBack := 30
	switch period {
	case "week":
		daysBack = 7
	case "quarter":
		daysBack = 90
	}

	now := e.clock.Now()
	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// Per-day aggregates inside the window; malformed dates are skipped.
	revenueByDay := make(map[string]float64)
	for _, sale := range e.ds.Sales {
		d, err := time.Parse(DateLayout, sale.SaleDate)
		if err != nil {
			continue
		}
		if daysBetween(base, d) <= daysBack {
			revenueByDay[d.Format(DateLayout)] += sale.Amount
		}
	}
	ordersByDay := make(map[string]int)
	for _, o := range e.ds.Orders {
		d, err := time.Parse(DateLayout, o.OrderDate)
		if err != nil {
			continue
		}
		if daysBetween(base, d) <= daysBack {
			ordersByDay[d.Format(DateLayout)]++
		}
	}

	series := make([]Point, 0, daysBack+1)
	for i := daysBack; i >= 0; i-- {
		d := base.AddDate(0, 0, -i).Format(DateLayout)
		if metric == "orders" {
			val := ordersByDay[d] + Hash(d+metric)%3
			series = append(series, Point{Date: d, Value: float64(val)})
			continue
		}
		rev := revenueByDay[d] * (1 + float64(Hash(d+period)%11-5)/100)
		series = append(series, Point{Date: d, Value: round2(rev)})
	}
	if len(series) > maxSeriesPoints {
		series = series[len(series)-maxSeriesPoints:]
	}

	return AnalyticsResult{
		Summary: Summary{
			TotalRevenue: round2(e.ds.TotalSales() * (1 + float64(s%15-7)/100)),
			TotalOrders:  len(e.ds.Orders) + s%10,
			TopRegion:    e.topRegion(),
		},
		Series: series,
	}
}

// topRegion returns the region with the highest dataset-wide sale total,
// or "N/A" when there are no sales. Ties break on region name order so the
// result stays deterministic.
func (e *Engine) topRegion() string {
	byRegion := e.ds.SalesByRegion()
	if len(byRegion) == 0 {
		return "N/A"
	}
	top := ""
	best := 0.0
	for _, r := range sortedKeys(byRegion) {
		if top == "" || byRegion[r] > best {
			top = r
			best = byRegion[r]
		}
	}
	return top
}

func daysBetween(base, d time.Time) int {
	return int(base.Sub(d).Hours() / 24)
}
