package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"

	"github.com/jung-kurt/gofpdf/v2"
)

// RenderInvoice produces a printable A4 invoice for the operator to hand or
// email to a customer.
func RenderInvoice(inv entities.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Internet Smart Bill Kenya - Invoice", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", time.Now().UTC().Format("02-Jan-2006")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Invoice Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Invoice: %s", inv.ID), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Status: %s", inv.Status), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Customer: %s", inv.CustomerName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Customer ID: %s", inv.CustomerID), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Billing Period: %s", inv.BillingPeriod), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Due Date: %s", inv.DueDate.Format("02-Jan-2006")), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Charges", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(140, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 7, "Amount (KSh)", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	description := inv.Package
	if description == "" {
		description = "Internet service"
	}
	pdf.CellFormat(140, 7, fmt.Sprintf("%s - %s", description, inv.BillingPeriod), "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, fmt.Sprintf("%d", inv.Amount), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(140, 7, "Total Due", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, fmt.Sprintf("%d", inv.Amount), "1", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(190, 5, "Pay via M-PESA, Airtel Money, T-Kash, bank transfer or cash at our offices.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
