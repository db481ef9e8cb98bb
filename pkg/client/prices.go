package client

import (
	"github.com/snkrsdev/snkrs-backend/pkg/contract"
	"github.com/snkrsdev/snkrs-backend/pkg/money"
)

// SetShoePrices fills a catalog payload from user-entered decimal prices
// ("180.00"). The API itself only ever sees integer cents. An empty market
// price leaves the field unset.
func SetShoePrices(input *contract.InsertShoe, retail, market string) error {
	retailCents, err := money.ToCents(retail)
	if err != nil {
		return err
	}
	input.RetailPrice = &retailCents

	if market == "" {
		input.MarketPrice = nil
		return nil
	}
	marketCents, err := money.ToCents(market)
	if err != nil {
		return err
	}
	input.MarketPrice = &marketCents
	return nil
}

// SetPurchasePrice fills a collection payload from a user-entered decimal
// price. An empty string leaves the field unset.
func SetPurchasePrice(input *contract.InsertCollectionItem, price string) error {
	if price == "" {
		input.PurchasePrice = nil
		return nil
	}
	cents, err := money.ToCents(price)
	if err != nil {
		return err
	}
	input.PurchasePrice = &cents
	return nil
}

// DisplayPrice renders integer cents for presentation ("180.00").
func DisplayPrice(cents int) string {
	return money.FromCents(cents)
}
