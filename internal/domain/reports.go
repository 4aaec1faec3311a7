package domain

import "github.com/shopspring/decimal"

// SellerStats aggregates the sales of one seller.
type SellerStats struct {
	Seller  string          `json:"seller"`
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
	Average decimal.Decimal `json:"average"`
}

// ProductStats aggregates the sales of one product.
type ProductStats struct {
	Product   string          `json:"product"`
	Revenue   decimal.Decimal `json:"revenue"`
	UnitsSold int             `json:"units_sold"`
}

// MonthTotal is the revenue of one YYYY-MM month.
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// SellerRank is one position of the seller ranking.
type SellerRank struct {
	Seller string          `json:"seller"`
	Total  decimal.Decimal `json:"total"`
}

// ProductRank is one position of the product ranking.
type ProductRank struct {
	Product   string `json:"product"`
	UnitsSold int    `json:"units_sold"`
}

// ProductQuantity is the number of units of a product sold by one seller.
type ProductQuantity struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// SellerSummary lists seller aggregates in order of first appearance.
type SellerSummary []SellerStats

// Lookup returns the aggregate of the exact seller name.
func (s SellerSummary) Lookup(seller string) (SellerStats, bool) {
	for _, st := range s {
		if st.Seller == seller {
			return st, true
		}
	}
	return SellerStats{}, false
}

// ProductSummary lists product aggregates in order of first appearance.
type ProductSummary []ProductStats

// Lookup returns the aggregate of the exact product name.
func (s ProductSummary) Lookup(product string) (ProductStats, bool) {
	for _, st := range s {
		if st.Product == product {
			return st, true
		}
	}
	return ProductStats{}, false
}

// MonthlySummary lists monthly revenue in ascending month order.
type MonthlySummary []MonthTotal

// Lookup returns the revenue of a YYYY-MM month.
func (s MonthlySummary) Lookup(month string) (MonthTotal, bool) {
	for _, mt := range s {
		if mt.Month == month {
			return mt, true
		}
	}
	return MonthTotal{}, false
}

// Report is the general sales report assembled from every aggregation.
type Report struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TransactionCount int             `json:"transaction_count"`
	Sellers          SellerSummary   `json:"sellers"`
	Products         ProductSummary  `json:"products"`
	Months           MonthlySummary  `json:"months"`
	TopSellers       []SellerRank    `json:"top_sellers"`
	TopProducts      []ProductRank   `json:"top_products"`
	BestMonth        MonthTotal      `json:"best_month"`
	RankingLimit     int             `json:"ranking_limit"`
	Sales            []Sale          `json:"sales"`
}

// SellerReport summarizes the sales of the sellers matching a name query.
type SellerReport struct {
	Name     string            `json:"name"` // Seller of the first matching sale
	Total    decimal.Decimal   `json:"total"`
	Count    int               `json:"count"`
	Average  decimal.Decimal   `json:"average"`
	Products []ProductQuantity `json:"products"`
	Sales    []Sale            `json:"sales"`
}

// RowError describes an imported row that was rejected.
type RowError struct {
	Line int   `json:"line"`
	Err  error `json:"-"`
}

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Imported int        `json:"imported"`
	Rejected []RowError `json:"rejected"`
}
