package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/arundas-dev/CycleKart/config"
	"github.com/arundas-dev/CycleKart/models"
	"github.com/arundas-dev/CycleKart/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// generateInvoicePDF renders an order into a printable invoice
func generateInvoicePDF(order *models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Store info
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, utils.AppName)
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "42 Cycle Market Road, Kochi, Kerala")
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: orders@cyclekart.in | Phone: +91-98765-43210")
	pdf.Ln(12)

	// Invoice title and order info
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "INVOICE")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(50, 8, "Order ID: "+strconv.Itoa(int(order.ID)))
	pdf.Cell(60, 8, "Order Date: "+order.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(50, 8, "Status: "+order.Status)
	pdf.Ln(8)

	// Customer info
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Billed To:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, order.Customer.Name)
	pdf.Ln(6)
	if order.Customer.Email != "" {
		pdf.Cell(100, 8, order.Customer.Email)
		pdf.Ln(6)
	}
	if order.Customer.Description != "" {
		pdf.Cell(100, 8, order.Customer.Description)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Items table header
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(45, 8, "Cycle", "1", 0, "C", false, 0, "")
	pdf.CellFormat(15, 8, "Size", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Tyre", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "Unit Cost", "1", 0, "C", false, 0, "")
	pdf.CellFormat(15, 8, "Units", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	for _, item := range order.OrderItems {
		tyre := item.TyreType
		if item.BrandType != "" {
			tyre += " / " + item.BrandType
		}
		pdf.CellFormat(45, 8, item.Brand, "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 8, item.WheelSize, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, tyre, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%.2f", item.CostPerUnit+item.Surcharge), "1", 0, "R", false, 0, "")
		pdf.CellFormat(15, 8, strconv.Itoa(item.Units), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.LineTotal), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// Summary section
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(120, 8, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", order.Subtotal), "", 1, "R", false, 0, "")
	if order.DiscountApplied {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(120, 8, fmt.Sprintf("Discount (%s):", order.CouponCode), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", order.FlatDiscount+order.PerCycleDiscount), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(120, 8, "GST (12%):", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", order.GST), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(120, 10, "Grand Total:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(30, 10, fmt.Sprintf("%.2f", order.Total), "", 1, "R", false, 0, "")

	if order.Remarks != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(0, 8, "Remarks: "+order.Remarks)
	}

	// Thank you note
	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, "Thank you for shopping with "+utils.AppName+"!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DownloadInvoice generates and returns a PDF invoice for the order
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("Starting invoice download process")

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid order ID format in invoice download request: %v", err)
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}
	utils.LogInfo("Processing invoice download for order ID: %d", orderID)

	var order models.Order
	if err := config.DB.Preload("OrderItems").Preload("Customer").First(&order, orderID).Error; err != nil {
		utils.LogError("Order not found for invoice download - Order ID: %d", orderID)
		utils.NotFound(c, "Order not found")
		return
	}

	pdfBytes, err := generateInvoicePDF(&order)
	if err != nil {
		utils.LogError("Failed to render invoice for order %d: %v", orderID, err)
		utils.InternalServerError(c, "Failed to render invoice", nil)
		return
	}
	utils.LogInfo("PDF invoice generated successfully for order ID: %d", orderID)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%d.pdf", order.ID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
	utils.LogInfo("Invoice download completed for order ID: %d", orderID)
}
