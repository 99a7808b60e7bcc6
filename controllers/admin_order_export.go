package controllers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/arundas-dev/CycleKart/config"
	"github.com/arundas-dev/CycleKart/models"
	"github.com/arundas-dev/CycleKart/utils"
)

// Admin: Download orders for a period as Excel
func DownloadOrdersExcel(c *gin.Context) {
	utils.LogInfo("DownloadOrdersExcel called")

	period := c.DefaultQuery("period", "day")
	utils.LogDebug("Generating Excel report for period: %s", period)

	now := time.Now()
	var startDate, endDate time.Time

	switch period {
	case "day":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
	case "week":
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		startDate = endDate.AddDate(0, 0, -6)
		startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	case "month":
		startDate = now.AddDate(0, 0, -30).Truncate(24 * time.Hour)
		endDate = now.Add(24 * time.Hour)
	default:
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	var orders []models.Order
	query := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Preload("Customer").
		Preload("OrderItems").
		Order("created_at DESC")
	if err := query.Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d orders for Excel report", len(orders))

	// --- Calculate summary ---
	var summary struct {
		TotalOrders     int
		TotalRevenue    float64
		TotalUnits      int
		TotalCustomers  int
		TotalDiscounts  float64
		TotalGST        float64
		AverageOrderVal float64
	}
	customerSet := make(map[uint]bool)
	for _, order := range orders {
		summary.TotalOrders++
		summary.TotalRevenue += order.Total
		summary.TotalDiscounts += order.FlatDiscount + order.PerCycleDiscount
		summary.TotalGST += order.GST
		customerSet[order.CustomerID] = true
		for _, item := range order.OrderItems {
			summary.TotalUnits += item.Units
		}
	}
	summary.TotalCustomers = len(customerSet)
	if summary.TotalOrders > 0 {
		summary.AverageOrderVal = math.Round((summary.TotalRevenue/float64(summary.TotalOrders))*100) / 100
	}
	summary.TotalRevenue = math.Round(summary.TotalRevenue*100) / 100
	summary.TotalDiscounts = math.Round(summary.TotalDiscounts*100) / 100
	summary.TotalGST = math.Round(summary.TotalGST*100) / 100

	// --- Excel Generation ---
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	// Company details
	companyRow := sheet.AddRow()
	companyRow.AddCell().SetString(strings.ToUpper(utils.AppName) + " - Orders Report")
	companyRow = sheet.AddRow()
	companyRow.AddCell().SetString("42 Cycle Market Road, Kochi, Kerala")
	companyRow = sheet.AddRow()
	companyRow.AddCell().SetString("Email: orders@cyclekart.in | Phone: +91-98765-43210")
	companyRow = sheet.AddRow()
	companyRow.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " + startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow() // spacing

	// Table headers
	headers := []string{"Order ID", "Customer ID", "Customer", "Date", "Lines", "Units", "Subtotal", "Discount", "GST", "Total", "Coupon", "Status"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	// Table rows
	for _, order := range orders {
		units := 0
		for _, item := range order.OrderItems {
			units += item.Units
		}
		row := sheet.AddRow()
		row.AddCell().SetInt(int(order.ID))
		row.AddCell().SetInt(int(order.CustomerID))
		row.AddCell().SetString(order.Customer.Name)
		row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetInt(len(order.OrderItems))
		row.AddCell().SetInt(units)
		row.AddCell().SetFloat(order.Subtotal)
		row.AddCell().SetFloat(order.FlatDiscount + order.PerCycleDiscount)
		row.AddCell().SetFloat(order.GST)
		row.AddCell().SetFloat(order.Total)
		row.AddCell().SetString(order.CouponCode)
		row.AddCell().SetString(order.Status)
	}

	sheet.AddRow() // spacing

	// --- Summary Section ---
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Orders", fmt.Sprintf("%d", summary.TotalOrders)},
		{"Total Revenue", fmt.Sprintf("%.2f", summary.TotalRevenue)},
		{"Total Units", fmt.Sprintf("%d", summary.TotalUnits)},
		{"Total Customers", fmt.Sprintf("%d", summary.TotalCustomers)},
		{"Total Discounts", fmt.Sprintf("%.2f", summary.TotalDiscounts)},
		{"Total GST", fmt.Sprintf("%.2f", summary.TotalGST)},
		{"Avg. Order Value", fmt.Sprintf("%.2f", summary.AverageOrderVal)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orders_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated Excel report for period %s", period)
}
