package pricing

// OfferLine is one successfully priced offer inside a breakdown, kept for
// auditability of the total.
type OfferLine struct {
	Name string
	Type OfferType
	Cost Money
}

// Breakdown is the full result of a booking or extension quote. It is
// transient: built per calculation call and handed to the caller, never
// stored by the pricing core.
type Breakdown struct {
	BaseCost    Money
	OffersTotal Money
	OfferLines  []OfferLine
	Subtotal    Money
	Taxes       Money
	DeliveryFee Money
	TotalCost   Money
	Currency    string
}
