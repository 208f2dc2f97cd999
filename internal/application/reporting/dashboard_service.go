package reporting

import (
	"context"

	"github.com/merza/backend/internal/domain/billing"
	"github.com/merza/backend/internal/domain/crm"
	"github.com/shopspring/decimal"
)

// InvoiceSummary is the aggregate view over all invoices.
type InvoiceSummary struct {
	TotalSales         float64 `json:"totalSales"`
	TotalReceivables   float64 `json:"totalReceivables"`
	TotalCashCollected float64 `json:"totalCashCollected"`
}

// Metrics are the headline dashboard figures. The MTD-labelled fields are
// computed over the full invoice history, matching what the dashboard
// consumer expects today.
type Metrics struct {
	TotalLeads          int     `json:"totalLeads"`
	ActiveCustomers     int     `json:"activeCustomers"`
	OutstandingInvoices float64 `json:"outstandingInvoices"`
	CashReceivedMTD     float64 `json:"cashReceivedMTD"`
	SalesMTD            float64 `json:"salesMTD"`
	TotalReceivables    float64 `json:"totalReceivables"`
}

// Trends carries placeholder trend percentages; these are fixed constants,
// not computed series.
type Trends struct {
	SalesTrend float64 `json:"salesTrend"`
	CashTrend  float64 `json:"cashTrend"`
}

// QuickStats are the computed ratio figures plus the fixed payment cycle.
type QuickStats struct {
	ConversionRate  float64 `json:"conversionRate"`
	AvgInvoiceValue float64 `json:"avgInvoiceValue"`
	PaymentCycle    int     `json:"paymentCycle"`
}

// Charts carries placeholder chart series; fixed constants, not computed.
type Charts struct {
	SalesTrendData      []float64 `json:"salesTrendData"`
	CollectionTrendData []float64 `json:"collectionTrendData"`
}

// DashboardMetrics is the combined dashboard payload.
type DashboardMetrics struct {
	Metrics        Metrics           `json:"metrics"`
	Trends         Trends            `json:"trends"`
	RecentLeads    []crm.Lead        `json:"recentLeads"`
	UnpaidInvoices []billing.Invoice `json:"unpaidInvoices"`
	QuickStats     QuickStats        `json:"quickStats"`
	Charts         Charts            `json:"charts"`
}

// Placeholder figures reported until real trend computation lands.
const (
	placeholderSalesTrend   = 12.5
	placeholderCashTrend    = 15.2
	placeholderPaymentCycle = 32
)

var (
	placeholderSalesTrendData      = []float64{15000, 18000, 21000}
	placeholderCollectionTrendData = []float64{12000, 15000, 18000}
)

// DashboardService aggregates read-only metrics over the lead, customer and
// invoice collections. It never mutates anything.
type DashboardService struct {
	leadRepo     crm.LeadRepository
	customerRepo crm.CustomerRepository
	invoiceRepo  billing.InvoiceRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(leadRepo crm.LeadRepository, customerRepo crm.CustomerRepository, invoiceRepo billing.InvoiceRepository) *DashboardService {
	return &DashboardService{
		leadRepo:     leadRepo,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// InvoiceSummary computes the sales/receivables/cash figures over all
// invoices, each rounded to 2 decimal places.
func (s *DashboardService) InvoiceSummary(ctx context.Context) (InvoiceSummary, error) {
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return InvoiceSummary{}, err
	}
	sales, receivables, collected := sumInvoices(invoices)
	return InvoiceSummary{
		TotalSales:         round2(sales),
		TotalReceivables:   round2(receivables),
		TotalCashCollected: round2(collected),
	}, nil
}

// Dashboard computes the combined dashboard payload.
func (s *DashboardService) Dashboard(ctx context.Context) (DashboardMetrics, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return DashboardMetrics{}, err
	}
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return DashboardMetrics{}, err
	}
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return DashboardMetrics{}, err
	}

	sales, receivables, collected := sumInvoices(invoices)

	unpaid := make([]billing.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Status != billing.InvoiceStatusPaid {
			unpaid = append(unpaid, inv)
		}
	}

	return DashboardMetrics{
		Metrics: Metrics{
			TotalLeads:          len(leads),
			ActiveCustomers:     len(customers),
			OutstandingInvoices: round2(receivables),
			CashReceivedMTD:     round2(collected),
			SalesMTD:            round2(sales),
			TotalReceivables:    round2(receivables),
		},
		Trends: Trends{
			SalesTrend: placeholderSalesTrend,
			CashTrend:  placeholderCashTrend,
		},
		RecentLeads:    lastN(leads, 4),
		UnpaidInvoices: lastN(unpaid, 4),
		QuickStats: QuickStats{
			ConversionRate:  conversionRate(leads),
			AvgInvoiceValue: avgInvoiceValue(invoices, sales),
			PaymentCycle:    placeholderPaymentCycle,
		},
		Charts: Charts{
			SalesTrendData:      placeholderSalesTrendData,
			CollectionTrendData: placeholderCollectionTrendData,
		},
	}, nil
}

// sumInvoices accumulates total sales, receivables (non-paid) and cash
// collected (paid) over all invoice totals.
func sumInvoices(invoices []billing.Invoice) (sales, receivables, collected decimal.Decimal) {
	for _, inv := range invoices {
		total := decimal.NewFromFloat(inv.Total)
		sales = sales.Add(total)
		if inv.Status == billing.InvoiceStatusPaid {
			collected = collected.Add(total)
		} else {
			receivables = receivables.Add(total)
		}
	}
	return sales, receivables, collected
}

// conversionRate is the percentage of leads won, rounded to 1 decimal place,
// and 0 for an empty lead list.
func conversionRate(leads []crm.Lead) float64 {
	if len(leads) == 0 {
		return 0
	}
	won := 0
	for _, l := range leads {
		if l.Status == crm.LeadStatusWon {
			won++
		}
	}
	rate := decimal.NewFromInt(int64(won)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(len(leads))))
	return rate.Round(1).InexactFloat64()
}

// avgInvoiceValue is the mean invoice total rounded to 2 decimal places,
// and 0 for an empty invoice list.
func avgInvoiceValue(invoices []billing.Invoice, sales decimal.Decimal) float64 {
	if len(invoices) == 0 {
		return 0
	}
	return sales.Div(decimal.NewFromInt(int64(len(invoices)))).Round(2).InexactFloat64()
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// lastN returns the final n elements in list order.
func lastN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}
