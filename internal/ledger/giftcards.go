package ledger

import "github.com/trevsky25/easypayuniversity-sub001/internal/model"

// GiftCards returns the redemption catalog. Pricing is tiered: the
// value-per-buck exchange rate improves at every step up, which keeps
// larger redemptions strictly better deals.
func GiftCards() []model.GiftCard {
	return []model.GiftCard{
		{
			ID:            "amazon-5",
			Name:          "$5 Amazon Gift Card",
			Value:         5,
			BucksRequired: 500,
			Description:   "Digital code delivered instantly",
		},
		{
			ID:            "amazon-10",
			Name:          "$10 Amazon Gift Card",
			Value:         10,
			BucksRequired: 950,
			Description:   "Digital code delivered instantly",
		},
		{
			ID:            "amazon-25",
			Name:          "$25 Amazon Gift Card",
			Value:         25,
			BucksRequired: 2250,
			Description:   "Digital code delivered instantly",
		},
		{
			ID:            "visa-50",
			Name:          "$50 Visa Prepaid Card",
			Value:         50,
			BucksRequired: 4250,
			Description:   "Prepaid card mailed within 7 business days",
		},
		{
			ID:            "visa-100",
			Name:          "$100 Visa Prepaid Card",
			Value:         100,
			BucksRequired: 8000,
			Description:   "Prepaid card mailed within 7 business days",
		},
	}
}

// GiftCardByID looks up a catalog entry.
func GiftCardByID(id string) (model.GiftCard, bool) {
	for _, card := range GiftCards() {
		if card.ID == id {
			return card, true
		}
	}
	return model.GiftCard{}, false
}
