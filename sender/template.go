package sender

import (
	"bytes"
	"html/template"
	"time"

	"github.com/0x00whitecode/hng-audiophile/models"
)

// orderEmailTmpl is the confirmation email: brand header, itemized lines,
// totals, shipping block and a link back to the confirmation page.
var orderEmailTmpl = template.Must(template.New("order_email").Parse(`
<div style="font-family:Manrope,Arial,sans-serif;background:#fafafa;padding:24px">
  <table role="presentation" width="100%" style="max-width:640px;margin:0 auto;background:#ffffff;border-radius:12px;overflow:hidden">
    <tr>
      <td style="background:#000;color:#fff;padding:20px 24px">
        <strong style="letter-spacing:2px;text-transform:uppercase">audiophile</strong>
      </td>
    </tr>
    <tr>
      <td style="padding:24px">
        <h1 style="margin:0 0 8px;font-size:20px">Thanks, {{.Customer.Name}}!</h1>
        <p style="margin:0 0 16px;color:#444">Your order <strong>#{{.Order.ID}}</strong> is being processed.</p>
        <h2 style="font-size:16px;margin:16px 0">Item Summary</h2>
        <table role="presentation" width="100%" style="border-collapse:collapse">
          {{- range .Items}}
          <tr>
            <td style="padding:8px;border-bottom:1px solid #eee">{{.Name}}</td>
            <td style="padding:8px;border-bottom:1px solid #eee">x{{.Quantity}}</td>
            <td style="padding:8px;border-bottom:1px solid #eee;text-align:right">${{.Total}}</td>
          </tr>
          {{- end}}
        </table>
        <div style="margin-top:16px;border-top:1px solid #eee;padding-top:12px">
          <p style="margin:0"><span>Subtotal</span> <strong>${{.Order.Totals.Subtotal}}</strong></p>
          <p style="margin:0"><span>Shipping</span> <strong>${{.Order.Totals.Shipping}}</strong></p>
          <p style="margin:0"><span>Tax</span> <strong>${{.Order.Totals.Tax}}</strong></p>
          <p style="margin:0"><span>Grand Total</span> <strong>${{.Order.Totals.GrandTotal}}</strong></p>
        </div>
        <h2 style="font-size:16px;margin:16px 0">Shipping</h2>
        <p style="margin:0 0 8px;color:#444">{{.Shipping.Address}}, {{.Shipping.City}}, {{.Shipping.Country}}, {{.Shipping.Zip}}</p>
        <p style="margin:0 0 24px;color:#444">Contact: {{.Customer.Email}} &bull; {{.Customer.Phone}}</p>
        <a href="{{.OrderURL}}" style="display:inline-block;background:#D87D4A;color:#fff;padding:12px 16px;border-radius:8px;text-decoration:none;letter-spacing:1px;text-transform:uppercase;font-size:12px">View Your Order</a>
      </td>
    </tr>
    <tr>
      <td style="background:#f5f5f5;color:#666;padding:12px 24px;text-align:center;font-size:12px">&copy; {{.Year}} Audiophile</td>
    </tr>
  </table>
</div>`))

type emailItem struct {
	Name     string
	Quantity int
	Total    int
}

type emailData struct {
	Order    *models.Order
	Customer models.Customer
	Shipping models.ShippingAddress
	Items    []emailItem
	OrderURL string
	Year     int
}

// RenderOrderEmail renders the HTML confirmation email for an order.
func RenderOrderEmail(order *models.Order, baseURL string) (string, error) {
	items := make([]emailItem, 0, len(order.Items))
	for _, i := range order.Items {
		items = append(items, emailItem{Name: i.Name, Quantity: i.Quantity, Total: i.Price * i.Quantity})
	}

	data := emailData{
		Order:    order,
		Customer: order.Customer,
		Shipping: order.Shipping,
		Items:    items,
		OrderURL: baseURL + "/order/" + order.ID,
		Year:     time.Now().Year(),
	}

	var buf bytes.Buffer
	if err := orderEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
