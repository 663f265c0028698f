package repository

import "rental_backend/internal/domain/entities"

type lineItem struct {
	ID             string `dynamodbav:"id"`
	Equipment      string `dynamodbav:"equipment"`
	Quantity       int    `dynamodbav:"quantity"`
	Length         string `dynamodbav:"length"`
	Breadth        string `dynamodbav:"breadth"`
	Sqft           string `dynamodbav:"sqft"`
	RatePerSqft    string `dynamodbav:"rate_per_sqft"`
	Subtotal       string `dynamodbav:"subtotal"`
	WastageCharges string `dynamodbav:"wastage_charges"`
	CuttingCharges string `dynamodbav:"cutting_charges"`
	Total          string `dynamodbav:"total"`
}

func toLineItems(items []entities.QuotationItem) []lineItem {
	out := make([]lineItem, 0, len(items))
	for _, i := range items {
		out = append(out, lineItem{
			ID:             i.ID,
			Equipment:      i.Equipment,
			Quantity:       i.Quantity,
			Length:         formatMoney(i.Length),
			Breadth:        formatMoney(i.Breadth),
			Sqft:           formatMoney(i.Sqft),
			RatePerSqft:    formatMoney(i.RatePerSqft),
			Subtotal:       formatMoney(i.Subtotal),
			WastageCharges: formatMoney(i.WastageCharges),
			CuttingCharges: formatMoney(i.CuttingCharges),
			Total:          formatMoney(i.Total),
		})
	}
	return out
}

func fromLineItems(items []lineItem) []entities.QuotationItem {
	out := make([]entities.QuotationItem, 0, len(items))
	for _, i := range items {
		out = append(out, entities.QuotationItem{
			ID:             i.ID,
			Equipment:      i.Equipment,
			Quantity:       i.Quantity,
			Length:         parseMoney(i.Length),
			Breadth:        parseMoney(i.Breadth),
			Sqft:           parseMoney(i.Sqft),
			RatePerSqft:    parseMoney(i.RatePerSqft),
			Subtotal:       parseMoney(i.Subtotal),
			WastageCharges: parseMoney(i.WastageCharges),
			CuttingCharges: parseMoney(i.CuttingCharges),
			Total:          parseMoney(i.Total),
		})
	}
	return out
}
