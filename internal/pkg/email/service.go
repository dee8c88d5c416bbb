// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/coquette-threads/storefront-backend/internal/config"
	"github.com/coquette-threads/storefront-backend/internal/domain/order"
)

// EmailType classifies outgoing messages
type EmailType string

const (
	EmailTypeOrderConfirmation EmailType = "order_confirmation"
)

// Email represents an outgoing message
type Email struct {
	To          []string  `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"html_content"`
	Type        EmailType `json:"type"`
}

// Service handles transactional email. All sends are best-effort: a
// failure is reported to the caller for logging but must never fail the
// operation that triggered it.
type Service struct {
	config *config.Config
	client *http.Client
}

// NewService creates a new email service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Enabled reports whether sending is configured
func (s *Service) Enabled() bool {
	return s.config.Email.APIKey != ""
}

// SendOrderConfirmation sends the post-placement confirmation to the
// shopper. A no-op when sending is not configured.
func (s *Service) SendOrderConfirmation(ctx context.Context, toName, toEmail string, o *order.Order) error {
	if !s.Enabled() {
		return nil
	}

	msg, err := BuildOrderConfirmation(toName, toEmail, o, s.config.Email.FromName)
	if err != nil {
		return err
	}

	return s.send(ctx, msg)
}

// BuildOrderConfirmation renders the order confirmation message
func BuildOrderConfirmation(toName, toEmail string, o *order.Order, storeName string) (*Email, error) {
	data := orderConfirmationData{
		StoreName: storeName,
		UserName:  toName,
		Order:     o,
		OrderDate: o.CreatedAt.Format("January 2, 2006"),
		Year:      time.Now().Year(),
	}

	tmpl := template.Must(template.New("order_confirmation").Parse(orderConfirmationTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render order confirmation template: %w", err)
	}

	return &Email{
		To:          []string{toEmail},
		Subject:     fmt.Sprintf("Order Confirmation - #%d", o.ID),
		HTMLContent: buf.String(),
		Type:        EmailTypeOrderConfirmation,
	}, nil
}

func (s *Service) send(ctx context.Context, msg *Email) error {
	switch s.config.Email.Provider {
	case "resend":
		return s.sendResend(ctx, msg)
	default:
		return fmt.Errorf("unsupported email provider: %s", s.config.Email.Provider)
	}
}

type orderConfirmationData struct {
	StoreName string
	UserName  string
	Order     *order.Order
	OrderDate string
	Year      int
}

const orderConfirmationTemplate = `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Order Confirmation</title></head>
<body style="font-family: Georgia, serif; color: #333;">
    <h1>Thank you for your order{{if .UserName}}, {{.UserName}}{{end}}!</h1>
    <p>We have received your order <strong>#{{.Order.ID}}</strong> placed on {{.OrderDate}}.</p>

    <table style="border-collapse: collapse; width: 100%;">
        <thead>
            <tr>
                <th style="text-align: left; border-bottom: 1px solid #ddd;">Item</th>
                <th style="text-align: left; border-bottom: 1px solid #ddd;">Size</th>
                <th style="text-align: right; border-bottom: 1px solid #ddd;">Qty</th>
                <th style="text-align: right; border-bottom: 1px solid #ddd;">Price</th>
            </tr>
        </thead>
        <tbody>
            {{range .Order.Items}}
            <tr>
                <td>{{.Title}}</td>
                <td>{{.Size}}</td>
                <td style="text-align: right;">{{.Quantity}}</td>
                <td style="text-align: right;">&#8377;{{.Price}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <p>
        Items: &#8377;{{.Order.ItemsPrice}}<br>
        Shipping: &#8377;{{.Order.ShippingPrice}}<br>
        Tax: &#8377;{{.Order.TaxPrice}}<br>
        <strong>Total: &#8377;{{.Order.TotalPrice}}</strong>
    </p>

    <p>
        Shipping to: {{.Order.ShippingAddress.Address}}, {{.Order.ShippingAddress.City}}
        {{.Order.ShippingAddress.PostalCode}}, {{.Order.ShippingAddress.Country}}<br>
        Payment method: {{.Order.PaymentMethod}}
    </p>

    <p style="color: #666; font-size: 12px;">&copy; {{.Year}} {{.StoreName}}</p>
</body>
</html>
`
