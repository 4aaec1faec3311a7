package usecase

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"sales-ledger/internal/domain"
)

// DefaultRankingLimit is the number of positions shown in report rankings.
const DefaultRankingLimit = 5

// Ledger owns the recorded sales and answers every aggregation over them.
// Aggregations are recomputed from the full record set on each call.
type Ledger struct {
	mu     sync.RWMutex
	sales  []domain.Sale
	nextID int

	rankingLimit int
}

// LedgerOption configures a Ledger.
type LedgerOption func(*Ledger)

// WithRankingLimit sets the ranking size used by BuildReport.
func WithRankingLimit(limit int) LedgerOption {
	return func(l *Ledger) {
		l.rankingLimit = limit
	}
}

// NewLedger creates an empty ledger.
func NewLedger(opts ...LedgerOption) *Ledger {
	l := &Ledger{nextID: 1, rankingLimit: DefaultRankingLimit}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RecordSale validates the input and appends a new sale.
// A rejected input leaves the ledger untouched and does not consume an id.
func (l *Ledger) RecordSale(in domain.SaleInput) (domain.Sale, error) {
	product := strings.TrimSpace(in.Product)
	seller := strings.TrimSpace(in.Seller)
	rawDate := strings.TrimSpace(in.Date)

	if product == "" || seller == "" || rawDate == "" {
		return domain.Sale{}, domain.ErrMissingField
	}
	if in.Quantity <= 0 {
		return domain.Sale{}, domain.ErrInvalidQuantity
	}
	if !in.UnitPrice.IsPositive() {
		return domain.Sale{}, domain.ErrInvalidUnitPrice
	}
	date, err := time.Parse(domain.DateLayout, rawDate)
	if err != nil {
		return domain.Sale{}, domain.ErrInvalidDate
	}

	sale := domain.Sale{
		Product:   product,
		Seller:    seller,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Total:     in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))).Round(2),
		Date:      date,
	}

	l.mu.Lock()
	sale.ID = l.nextID
	l.nextID++
	l.sales = append(l.sales, sale)
	l.mu.Unlock()

	return sale, nil
}

// Sales returns a copy of the recorded sales in insertion order.
func (l *Ledger) Sales() []domain.Sale {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Sale, len(l.sales))
	copy(out, l.sales)
	return out
}

// Count returns the number of recorded sales.
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sales)
}

// TotalRevenue sums the totals of every sale.
func (l *Ledger) TotalRevenue() decimal.Decimal {
	return totalRevenue(l.Sales())
}

// SalesBySeller groups sales by exact seller name.
func (l *Ledger) SalesBySeller() domain.SellerSummary {
	return salesBySeller(l.Sales())
}

// SalesByProduct groups sales by exact product name.
func (l *Ledger) SalesByProduct() domain.ProductSummary {
	return salesByProduct(l.Sales())
}

// SalesByMonth groups sales by YYYY-MM, in ascending month order.
func (l *Ledger) SalesByMonth() domain.MonthlySummary {
	return salesByMonth(l.Sales())
}

// RankSellers returns the top sellers by revenue.
func (l *Ledger) RankSellers(limit int) []domain.SellerRank {
	return rankSellers(l.SalesBySeller(), limit)
}

// RankProducts returns the top products by units sold.
func (l *Ledger) RankProducts(limit int) []domain.ProductRank {
	return rankProducts(l.SalesByProduct(), limit)
}

// BestMonth returns the month with the highest revenue.
// It reports false, with an empty month and zero total, when there are no sales.
func (l *Ledger) BestMonth() (domain.MonthTotal, bool) {
	return bestMonth(l.SalesByMonth())
}

// BuildReport assembles the general report from a single snapshot of the ledger.
func (l *Ledger) BuildReport() (*domain.Report, error) {
	sales := l.Sales()
	if len(sales) == 0 {
		return nil, domain.ErrEmptyLedger
	}

	sellers := salesBySeller(sales)
	products := salesByProduct(sales)
	months := salesByMonth(sales)
	best, _ := bestMonth(months)

	return &domain.Report{
		TotalRevenue:     totalRevenue(sales),
		TransactionCount: len(sales),
		Sellers:          sellers,
		Products:         products,
		Months:           months,
		TopSellers:       rankSellers(sellers, l.rankingLimit),
		TopProducts:      rankProducts(products, l.rankingLimit),
		BestMonth:        best,
		RankingLimit:     l.rankingLimit,
		Sales:            sales,
	}, nil
}

// SellerReport summarizes the sales whose seller contains query, ignoring case.
func (l *Ledger) SellerReport(query string) (*domain.SellerReport, error) {
	fold := cases.Fold()
	needle := fold.String(query)

	var matches []domain.Sale
	for _, sale := range l.Sales() {
		if strings.Contains(fold.String(sale.Seller), needle) {
			matches = append(matches, sale)
		}
	}
	if len(matches) == 0 {
		return nil, domain.ErrSellerNotFound
	}

	total := totalRevenue(matches)
	report := &domain.SellerReport{
		Name:    matches[0].Seller,
		Total:   total,
		Count:   len(matches),
		Average: average(total, len(matches)),
		Sales:   matches,
	}

	index := make(map[string]int)
	for _, sale := range matches {
		i, ok := index[sale.Product]
		if !ok {
			i = len(report.Products)
			index[sale.Product] = i
			report.Products = append(report.Products, domain.ProductQuantity{Product: sale.Product})
		}
		report.Products[i].Quantity += sale.Quantity
	}
	return report, nil
}

func totalRevenue(sales []domain.Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, sale := range sales {
		sum = sum.Add(sale.Total)
	}
	return sum
}

func average(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count)))
}

func salesBySeller(sales []domain.Sale) domain.SellerSummary {
	var stats domain.SellerSummary
	index := make(map[string]int)
	for _, sale := range sales {
		i, ok := index[sale.Seller]
		if !ok {
			i = len(stats)
			index[sale.Seller] = i
			stats = append(stats, domain.SellerStats{Seller: sale.Seller, Total: decimal.Zero})
		}
		stats[i].Total = stats[i].Total.Add(sale.Total)
		stats[i].Count++
	}
	for i := range stats {
		stats[i].Average = average(stats[i].Total, stats[i].Count)
	}
	return stats
}

func salesByProduct(sales []domain.Sale) domain.ProductSummary {
	var stats domain.ProductSummary
	index := make(map[string]int)
	for _, sale := range sales {
		i, ok := index[sale.Product]
		if !ok {
			i = len(stats)
			index[sale.Product] = i
			stats = append(stats, domain.ProductStats{Product: sale.Product, Revenue: decimal.Zero})
		}
		stats[i].Revenue = stats[i].Revenue.Add(sale.Total)
		stats[i].UnitsSold += sale.Quantity
	}
	return stats
}

func salesByMonth(sales []domain.Sale) domain.MonthlySummary {
	totals := make(map[string]decimal.Decimal)
	for _, sale := range sales {
		month := sale.Month()
		if _, ok := totals[month]; !ok {
			totals[month] = decimal.Zero
		}
		totals[month] = totals[month].Add(sale.Total)
	}

	months := make(domain.MonthlySummary, 0, len(totals))
	for month, total := range totals {
		months = append(months, domain.MonthTotal{Month: month, Total: total})
	}
	// YYYY-MM keys sort chronologically as strings
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})
	return months
}

func rankSellers(stats domain.SellerSummary, limit int) []domain.SellerRank {
	sorted := make(domain.SellerSummary, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total.GreaterThan(sorted[j].Total)
	})

	sorted = sorted[:clampLimit(limit, len(sorted))]
	ranking := make([]domain.SellerRank, 0, len(sorted))
	for _, st := range sorted {
		ranking = append(ranking, domain.SellerRank{Seller: st.Seller, Total: st.Total})
	}
	return ranking
}

func rankProducts(stats domain.ProductSummary, limit int) []domain.ProductRank {
	sorted := make(domain.ProductSummary, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UnitsSold > sorted[j].UnitsSold
	})

	sorted = sorted[:clampLimit(limit, len(sorted))]
	ranking := make([]domain.ProductRank, 0, len(sorted))
	for _, st := range sorted {
		ranking = append(ranking, domain.ProductRank{Product: st.Product, UnitsSold: st.UnitsSold})
	}
	return ranking
}

// bestMonth expects months in ascending order; the earliest month wins a tie.
func bestMonth(months domain.MonthlySummary) (domain.MonthTotal, bool) {
	if len(months) == 0 {
		return domain.MonthTotal{Total: decimal.Zero}, false
	}
	best := months[0]
	for _, mt := range months[1:] {
		if mt.Total.GreaterThan(best.Total) {
			best = mt
		}
	}
	return best, true
}

func clampLimit(limit, n int) int {
	if limit < 0 {
		return 0
	}
	if limit > n {
		return n
	}
	return limit
}
