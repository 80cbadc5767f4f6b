package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
)

// SeedDemoData loads the demo dataset into the in-memory stores so the
// dashboard has something to show on a fresh start. Ids are allocated through
// each store's sequence so seeded and operator-created records share one
// numbering.
func SeedDemoData(
	ctx context.Context,
	customers *MemoryCustomerRepository,
	packages *MemoryPackageRepository,
	invoices *MemoryInvoiceRepository,
	ledger *MemoryPaymentLedger,
) error {
	customerIDs, err := SeedCatalogDemoData(ctx, customers, packages)
	if err != nil {
		return err
	}
	return seedBillingDemoData(ctx, customerIDs, invoices, ledger)
}

// SeedCatalogDemoData seeds only customers and packages. Used on its own when
// invoices and payments live in DynamoDB but the catalog stays in memory.
func SeedCatalogDemoData(
	ctx context.Context,
	customers *MemoryCustomerRepository,
	packages *MemoryPackageRepository,
) ([]string, error) {
	seedCustomers := []entities.Customer{
		{Name: "John Kamau", Location: "Nairobi - Westlands", Phone: "254712345678", Email: "john.kamau@email.com", ConnectionType: entities.ConnectionTypeFiber, Package: "10Mbps Premium", Status: entities.CustomerStatusActive, RouterMAC: "AA:BB:CC:DD:EE:FF"},
		{Name: "Mary Wanjiku", Location: "Kiambu - Ruiru", Phone: "254723456789", Email: "mary.wanjiku@email.com", ConnectionType: entities.ConnectionTypeWireless, Package: "5Mbps Basic", Status: entities.CustomerStatusActive, RouterMAC: "BB:CC:DD:EE:FF:AA"},
		{Name: "Peter Otieno", Location: "Kisumu - Milimani", Phone: "254734567890", Email: "peter.otieno@email.com", ConnectionType: entities.ConnectionTypeFiber, Package: "20Mbps Business", Status: entities.CustomerStatusSuspended, RouterMAC: "CC:DD:EE:FF:AA:BB"},
	}
	customerIDs := make([]string, 0, len(seedCustomers))
	for _, c := range seedCustomers {
		seq, err := customers.NextSequence(ctx)
		if err != nil {
			return nil, err
		}
		c.ID = fmt.Sprintf("CUST-%03d", seq)
		if _, err := customers.Create(ctx, c); err != nil {
			return nil, err
		}
		customerIDs = append(customerIDs, c.ID)
	}

	seedPackages := []entities.Package{
		{Name: "Basic Home", Speed: "5 Mbps", Price: 1500, Description: "Perfect for basic browsing and social media", IsActive: true, CustomerCount: 45},
		{Name: "Premium Home", Speed: "10 Mbps", Price: 2500, Description: "Great for streaming and multiple devices", IsActive: true, CustomerCount: 72},
		{Name: "Business Starter", Speed: "20 Mbps", Price: 4000, Description: "Ideal for small businesses and remote work", IsActive: true, CustomerCount: 28},
		{Name: "Enterprise", Speed: "50 Mbps", Price: 8000, Description: "For large businesses with high bandwidth needs", IsActive: true, CustomerCount: 11},
	}
	for _, p := range seedPackages {
		seq, err := packages.NextSequence(ctx)
		if err != nil {
			return nil, err
		}
		p.ID = fmt.Sprintf("PKG-%03d", seq)
		if _, err := packages.Create(ctx, p); err != nil {
			return nil, err
		}
	}
	return customerIDs, nil
}

func seedBillingDemoData(
	ctx context.Context,
	customerIDs []string,
	invoices *MemoryInvoiceRepository,
	ledger *MemoryPaymentLedger,
) error {
	janDue := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	janGen := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedInvoices := []entities.Invoice{
		{CustomerID: customerIDs[0], CustomerName: "John Kamau", Amount: 2500, DueDate: janDue, Status: entities.InvoiceStatusPaid, BillingPeriod: "January 2024", Package: "10Mbps Premium", Generated: janGen},
		{CustomerID: customerIDs[1], CustomerName: "Mary Wanjiku", Amount: 1500, DueDate: janDue, Status: entities.InvoiceStatusPending, BillingPeriod: "January 2024", Package: "5Mbps Basic", Generated: janGen},
		{CustomerID: customerIDs[2], CustomerName: "Peter Otieno", Amount: 4000, DueDate: janDue, Status: entities.InvoiceStatusOverdue, BillingPeriod: "January 2024", Package: "20Mbps Business", Generated: janGen},
	}
	invoiceIDs := make([]string, 0, len(seedInvoices))
	for _, inv := range seedInvoices {
		seq, err := invoices.NextSequence(ctx)
		if err != nil {
			return err
		}
		inv.ID = fmt.Sprintf("INV-%03d", seq)
		if _, err := invoices.Create(ctx, inv); err != nil {
			return err
		}
		invoiceIDs = append(invoiceIDs, inv.ID)
	}

	seedPayments := []entities.Payment{
		{CustomerID: customerIDs[0], CustomerName: "John Kamau", Amount: 2500, Method: entities.PaymentMethodMpesa, Reference: "QA12B3C4D5", Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), InvoiceID: invoiceIDs[0], Status: entities.PaymentStatusCompleted},
		{CustomerID: customerIDs[1], CustomerName: "Mary Wanjiku", Amount: 1500, Method: entities.PaymentMethodBank, Reference: "BNK789456123", Date: time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC), InvoiceID: invoiceIDs[1], Status: entities.PaymentStatusCompleted},
		{CustomerID: customerIDs[2], CustomerName: "Peter Otieno", Amount: 4000, Method: entities.PaymentMethodCash, Reference: "CASH-001", Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), InvoiceID: invoiceIDs[2], Status: entities.PaymentStatusCompleted},
	}
	for _, p := range seedPayments {
		seq, err := ledger.NextSequence(ctx)
		if err != nil {
			return err
		}
		p.ID = fmt.Sprintf("PAY-%03d", seq)
		if _, err := ledger.Create(ctx, p); err != nil {
			return err
		}
	}

	return nil
}
