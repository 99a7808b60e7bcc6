package utils

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func loadEmailConfig() (EmailConfig, error) {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	config := EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
	if config.Host == "" || config.Username == "" {
		return config, fmt.Errorf("SMTP is not configured")
	}
	if config.From == "" {
		config.From = config.Username
	}
	return config, nil
}

// SendOrderConfirmation emails an order confirmation with the invoice PDF
// attached. Callers treat failures as non-fatal: the order is already
// persisted by the time this runs.
func SendOrderConfirmation(to, customerName string, orderID uint, total float64, invoicePDF []byte) error {
	config, err := loadEmailConfig()
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%s - Order #%d confirmed", AppName, orderID))
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Hi %s,</p><p>Your order <b>#%d</b> has been placed and is now processing.</p>"+
			"<p>Order total: <b>%.2f</b></p><p>The invoice is attached.</p><p>Thank you for shopping with %s!</p>",
		Title(customerName), orderID, total, AppName))

	if len(invoicePDF) > 0 {
		m.Attach(fmt.Sprintf("invoice-%d.pdf", orderID), gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(invoicePDF)
			return err
		}))
	}

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send order confirmation: %v", err)
	}
	return nil
}
