package usecase

import (
	"context"
	"sort"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces"
)

// PaymentStats summarizes the ledger for the dashboard cards: total collected
// plus per-method totals over completed payments, and counts of payments still
// pending or failed.
type PaymentStats struct {
	TotalCollected int64                            `json:"total_collected"`
	ByMethod       map[entities.PaymentMethod]int64 `json:"by_method"`
	PendingCount   int                              `json:"pending_count"`
	FailedCount    int                              `json:"failed_count"`
}

// RevenuePoint is one month of collected revenue.
type RevenuePoint struct {
	Month    string `json:"month"` // YYYY-MM
	Revenue  int64  `json:"revenue"`
	Payments int    `json:"payments"`
}

type IReportUseCase interface {
	PaymentStats(ctx context.Context) (PaymentStats, error)
	MonthlyRevenue(ctx context.Context) ([]RevenuePoint, error)
	OutstandingInvoices(ctx context.Context) ([]entities.Invoice, error)
}

type ReportUseCase struct {
	ledger   interfaces.IPaymentLedger
	invoices interfaces.IInvoiceRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(ledger interfaces.IPaymentLedger, invoices interfaces.IInvoiceRepository) *ReportUseCase {
	return &ReportUseCase{ledger: ledger, invoices: invoices}
}

func (u *ReportUseCase) PaymentStats(ctx context.Context) (PaymentStats, error) {
	payments, err := u.ledger.List(ctx)
	if err != nil {
		return PaymentStats{}, err
	}

	stats := PaymentStats{ByMethod: make(map[entities.PaymentMethod]int64)}
	for _, p := range payments {
		switch p.Status {
		case entities.PaymentStatusCompleted:
			stats.TotalCollected += p.Amount
			stats.ByMethod[p.Method] += p.Amount
		case entities.PaymentStatusPending:
			stats.PendingCount++
		case entities.PaymentStatusFailed:
			stats.FailedCount++
		}
	}
	return stats, nil
}

func (u *ReportUseCase) MonthlyRevenue(ctx context.Context) ([]RevenuePoint, error) {
	payments, err := u.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]*RevenuePoint)
	for _, p := range payments {
		if p.Status != entities.PaymentStatusCompleted {
			continue
		}
		month := p.Date.UTC().Format("2006-01")
		point, ok := byMonth[month]
		if !ok {
			point = &RevenuePoint{Month: month}
			byMonth[month] = point
		}
		point.Revenue += p.Amount
		point.Payments++
	}

	points := make([]RevenuePoint, 0, len(byMonth))
	for _, point := range byMonth {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	return points, nil
}

func (u *ReportUseCase) OutstandingInvoices(ctx context.Context) ([]entities.Invoice, error) {
	invoices, err := u.invoices.List(ctx)
	if err != nil {
		return nil, err
	}

	outstanding := make([]entities.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Status == entities.InvoiceStatusPending || inv.Status == entities.InvoiceStatusOverdue {
			outstanding = append(outstanding, inv)
		}
	}
	return outstanding, nil
}
