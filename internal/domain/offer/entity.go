package offer

import (
	"strings"
	"time"

	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

// Offer is a catalog entry for a rentable add-on. Tier rates (when the
// provider publishes them) ride along so the pricing layer can pass them
// into the engine per request instead of caching them globally.
type Offer struct {
	ID        string
	Name      string
	NameAr    string
	Type      pricing.OfferType
	UnitPrice pricing.Money
	Tier      pricing.TierRate
	Active    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o *Offer) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return errs.Mark(errs.New("offer name is required"), errs.ErrDomainValidationFailed)
	}
	if !o.Type.IsValid() {
		return errs.Mark(errs.Newf("unsupported offer type: %q", o.Type), errs.ErrUnsupportedOfferType)
	}
	if o.UnitPrice.IsNegative() {
		return errs.Mark(errs.New("offer price cannot be negative"), errs.ErrDomainValidationFailed)
	}
	return nil
}

// PricingInput converts the catalog entry into the engine's input shape.
func (o *Offer) PricingInput() pricing.OfferInput {
	return pricing.OfferInput{
		Name:      o.Name,
		Type:      o.Type,
		UnitPrice: o.UnitPrice,
	}
}

// TierRatesFor collects the known tier rates of a set of offers, keyed by
// offer name, for injection into a pricing call.
func TierRatesFor(offers []*Offer) pricing.TierRates {
	rates := pricing.TierRates{}
	for _, o := range offers {
		if o.Tier.L2 != nil || o.Tier.L3 != nil {
			rates[o.Name] = o.Tier
		}
	}
	return rates
}
