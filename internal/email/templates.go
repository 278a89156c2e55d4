package email

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SaleReceipt carries everything the receipt template needs
type SaleReceipt struct {
	ShoeID    string
	Name      string
	SKU       string
	Size      string
	PriceSale decimal.Decimal
	Profit    decimal.Decimal
	SoldTo    string
	SoldBy    string
	Channel   string
	SoldOn    time.Time
	Shares    []PartyShare
}

// PartyShare is one party's cut of the sale
type PartyShare struct {
	Party  string
	Amount decimal.Decimal
}

// BuildSaleReceiptBody builds the HTML body for a sale receipt email
func BuildSaleReceiptBody(sale SaleReceipt) string {
	var sharesHTML strings.Builder
	for _, share := range sale.Shares {
		sharesHTML.WriteString(fmt.Sprintf(
			`<tr>
				<td style="padding: 12px; border-bottom: 1px solid #eee;">%s</td>
				<td style="padding: 12px; border-bottom: 1px solid #eee; text-align: right;">$%s</td>
			</tr>`,
			share.Party,
			share.Amount.StringFixed(2),
		))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<div style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); padding: 30px; border-radius: 10px 10px 0 0;">
		<h1 style="color: white; margin: 0; font-size: 24px;">Shoe Sold</h1>
	</div>

	<div style="background: #fff; padding: 30px; border: 1px solid #eee; border-top: none; border-radius: 0 0 10px 10px;">
		<div style="background: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0;">
			<p style="margin: 0; font-size: 14px; color: #666;">%s &middot; size %s &middot; %s</p>
			<p style="margin: 5px 0 0 0; font-size: 18px; font-weight: bold;">%s</p>
		</div>

		<p style="margin: 0;">Sold by <strong>%s</strong> via <strong>%s</strong> to %s on %s.</p>

		<div style="text-align: right; padding: 20px; background: #f8f9fa; border-radius: 5px; margin: 20px 0;">
			<span style="font-size: 14px; color: #666;">Sale price</span>
			<span style="font-size: 24px; font-weight: bold; color: #667eea; margin-left: 10px;">$%s</span>
			<br>
			<span style="font-size: 14px; color: #666;">Profit</span>
			<span style="font-size: 18px; font-weight: bold; margin-left: 10px;">$%s</span>
		</div>

		<h2 style="font-size: 18px; border-bottom: 2px solid #667eea; padding-bottom: 10px;">Commission Split</h2>

		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background: #f8f9fa;">
					<th style="padding: 12px; text-align: left; font-weight: 600;">Party</th>
					<th style="padding: 12px; text-align: right; font-weight: 600;">Share</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
		</table>

		<hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">

		<p style="font-size: 12px; color: #999; margin-bottom: 0;">
			This email was sent automatically when the sale was recorded.
		</p>
	</div>
</body>
</html>`,
		sale.SKU, sale.Size, sale.ShoeID,
		sale.Name,
		sale.SoldBy, sale.Channel, soldToOrWalkIn(sale.SoldTo), sale.SoldOn.Format("Jan 2, 2006"),
		sale.PriceSale.StringFixed(2),
		sale.Profit.StringFixed(2),
		sharesHTML.String())
}

func soldToOrWalkIn(soldTo string) string {
	if soldTo == "" {
		return "a walk-in buyer"
	}
	return soldTo
}
