package entities

import "github.com/shopspring/decimal"

const (
	DefaultCurrency = "AED"
	DefaultVATRate  = 5
	DefaultDueDays  = 30
)

// RoundMoney rounds to two places, halves away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ComputeVAT returns the VAT and gross total for a net amount at ratePercent.
// The total is always derived from the rounded amount and VAT.
func ComputeVAT(amount decimal.Decimal, ratePercent int) (vat, total decimal.Decimal) {
	amount = RoundMoney(amount)
	vat = RoundMoney(amount.Mul(decimal.NewFromInt(int64(ratePercent))).Div(decimal.NewFromInt(100)))
	return vat, amount.Add(vat)
}
