package firestore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/d3coo/car-rental-backend/internal/domain/booking"
	"github.com/d3coo/car-rental-backend/internal/domain/car"
	"github.com/d3coo/car-rental-backend/internal/domain/contract"
	"github.com/d3coo/car-rental-backend/internal/domain/offer"
	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/domain/user"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

// Document shapes mirror the legacy Firestore schema, field names and
// casing included. Normalization to domain types happens here and only
// here; nothing above this layer sees a legacy field name.

type packageDoc struct {
	PackageMonths   int     `firestore:"packageMonths"`
	PriceB4Discount float64 `firestore:"priceB4Discount"`
}

type carDoc struct {
	Make         string `firestore:"make"`
	Model        string `firestore:"model"`
	Year         int    `firestore:"year"`
	Color        string `firestore:"color"`
	LicensePlate string `firestore:"license_plate"`
	Category     string `firestore:"category"`

	RentalPriceDay   float64 `firestore:"rental_price_day"`
	RentalPrice      float64 `firestore:"rental_price"` // legacy duplicate of the day rate
	RentalPriceWeek  float64 `firestore:"rental_price_week"`
	RentalPriceMonth float64 `firestore:"rental_price_month"`
	RentalPriceMnth  float64 `firestore:"rental_price_mounth"` // legacy misspelling, still present on old docs
	BookedDayPrice   float64 `firestore:"booked_day_price"`
	Currency         string  `firestore:"Currency"`

	Packages []packageDoc `firestore:"Packages"`

	Status   string `firestore:"status"`
	Location string `firestore:"location"`

	Mileage      int      `firestore:"mileage"`
	FuelType     string   `firestore:"fuel_type"`
	Transmission string   `firestore:"transmission"`
	Seats        int      `firestore:"seats"`
	Features     []string `firestore:"features"`

	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func moneyFromFloat(amount float64, currency string) pricing.Money {
	return pricing.NewMoneyFromFloat(amount, currency)
}

func optionalMoney(amount float64, currency string) *pricing.Money {
	if amount <= 0 {
		return nil
	}
	m := moneyFromFloat(amount, currency)
	return &m
}

func (d carDoc) toEntity(id string) (*car.Car, error) {
	currency := d.Currency

	daily := d.RentalPriceDay
	if daily == 0 {
		daily = d.RentalPrice
	}
	monthly := d.RentalPriceMonth
	if monthly == 0 {
		monthly = d.RentalPriceMnth
	}

	price := pricing.PriceInfo{
		DailyRate:      moneyFromFloat(daily, currency),
		BookedDayPrice: optionalMoney(d.BookedDayPrice, currency),
		WeeklyRate:     optionalMoney(d.RentalPriceWeek, currency),
		MonthlyRate:    optionalMoney(monthly, currency),
	}
	for _, p := range d.Packages {
		price.Packages = append(price.Packages, pricing.PackageRate{
			Months: p.PackageMonths,
			Price:  moneyFromFloat(p.PriceB4Discount, currency),
		})
	}

	c := &car.Car{
		ID:           id,
		Make:         d.Make,
		Model:        d.Model,
		Year:         d.Year,
		Color:        d.Color,
		LicensePlate: d.LicensePlate,
		Category:     d.Category,
		Price:        price,
		Status:       car.Status(d.Status),
		Location:     d.Location,
		Features:     d.Features,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if d.Mileage > 0 {
		c.Mileage = &d.Mileage
	}
	if d.FuelType != "" {
		ft := car.FuelType(d.FuelType)
		c.FuelType = &ft
	}
	if d.Transmission != "" {
		tr := car.Transmission(d.Transmission)
		c.Transmission = &tr
	}
	if d.Seats > 0 {
		c.Seats = &d.Seats
	}
	if err := c.Validate(); err != nil {
		return nil, errs.Wrapf(err, "car document %s is invalid", id)
	}
	return c, nil
}

func carToDoc(c *car.Car) map[string]any {
	doc := map[string]any{
		"make":             c.Make,
		"model":            c.Model,
		"year":             c.Year,
		"color":            c.Color,
		"license_plate":    c.LicensePlate,
		"category":         c.Category,
		"rental_price_day": c.Price.DailyRate.Float64(),
		"Currency":         c.Price.DailyRate.Currency(),
		"status":           c.Status.String(),
		"location":         c.Location,
		"features":         c.Features,
		"created_at":       c.CreatedAt,
		"updated_at":       c.UpdatedAt,
	}
	if c.Price.WeeklyRate != nil {
		doc["rental_price_week"] = c.Price.WeeklyRate.Float64()
	}
	if c.Price.MonthlyRate != nil {
		doc["rental_price_month"] = c.Price.MonthlyRate.Float64()
	}
	if c.Price.BookedDayPrice != nil {
		doc["booked_day_price"] = c.Price.BookedDayPrice.Float64()
	}
	if len(c.Price.Packages) > 0 {
		pkgs := make([]map[string]any, 0, len(c.Price.Packages))
		for _, p := range c.Price.Packages {
			pkgs = append(pkgs, map[string]any{
				"packageMonths":   p.Months,
				"priceB4Discount": p.Price.Float64(),
			})
		}
		doc["Packages"] = pkgs
	}
	if c.Mileage != nil {
		doc["mileage"] = *c.Mileage
	}
	if c.FuelType != nil {
		doc["fuel_type"] = string(*c.FuelType)
	}
	if c.Transmission != nil {
		doc["transmission"] = string(*c.Transmission)
	}
	if c.Seats != nil {
		doc["seats"] = *c.Seats
	}
	return doc
}

type offerItemDoc struct {
	Offer           string  `firestore:"offer"`
	OfferAr         string  `firestore:"offerAr"`
	OfferType       string  `firestore:"offerType"`
	OfferPrice      float64 `firestore:"offerPrice"`
	OfferTotalPrice float64 `firestore:"offerTotalPrice"`
	OfferRef        string  `firestore:"offerRef"`
}

func offerItemsToDocs(items []booking.OfferItem) []offerItemDoc {
	docs := make([]offerItemDoc, 0, len(items))
	for _, it := range items {
		docs = append(docs, offerItemDoc{
			Offer:           it.Name,
			OfferAr:         it.NameAr,
			OfferType:       string(it.Type),
			OfferPrice:      it.UnitPrice.Float64(),
			OfferTotalPrice: it.TotalPrice.Float64(),
			OfferRef:        it.OfferRef,
		})
	}
	return docs
}

func offerItemsFromDocs(docs []offerItemDoc, currency string) []booking.OfferItem {
	items := make([]booking.OfferItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, booking.OfferItem{
			Name:       d.Offer,
			NameAr:     d.OfferAr,
			Type:       pricing.OfferType(d.OfferType),
			UnitPrice:  moneyFromFloat(d.OfferPrice, currency),
			TotalPrice: moneyFromFloat(d.OfferTotalPrice, currency),
			OfferRef:   d.OfferRef,
		})
	}
	return items
}

type bookingDoc struct {
	OrderID       string `firestore:"OrderId"`
	BookingNumber string `firestore:"BookingNumber"`
	UserID        string `firestore:"user_id"`
	CarID         string `firestore:"car_id"`

	StartDate time.Time `firestore:"start_date"`
	EndDate   time.Time `firestore:"end_date"`
	Count     int       `firestore:"count"`
	Unit      string    `firestore:"BookingType"`

	BookingCost float64 `firestore:"booking_cost"`
	Taxes       float64 `firestore:"taxes"`
	Delivery    float64 `firestore:"Delivery"`
	OffersTotal float64 `firestore:"offersTotal"`
	TotalCost   float64 `firestore:"total_cost"`
	Currency    string  `firestore:"Currency"`

	Offers []offerItemDoc `firestore:"offers"`

	IsPackageBooking bool `firestore:"isPackageBooking"`
	PackageMonths    int  `firestore:"packageMonths"`

	Status        string `firestore:"OrderStatus"`
	PaymentStatus string `firestore:"payment_status"`

	DeniedReason string     `firestore:"denied_reason"`
	AcceptedAt   *time.Time `firestore:"accepted_at"`
	DeniedAt     *time.Time `firestore:"denied_at"`
	CancelledAt  *time.Time `firestore:"cancelled_at"`
	CancelReason string     `firestore:"cancellation_reason"`

	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func (d bookingDoc) toEntity(id string) (*booking.Booking, error) {
	dates, err := pricing.NewDateRange(d.StartDate, d.EndDate)
	if err != nil {
		return nil, errs.Wrapf(err, "booking document %s has invalid dates", id)
	}
	b := &booking.Booking{
		ID:               id,
		OrderID:          d.OrderID,
		BookingNumber:    d.BookingNumber,
		UserID:           d.UserID,
		CarID:            d.CarID,
		Dates:            dates,
		Unit:             pricing.Unit(d.Unit),
		Count:            d.Count,
		BookingCost:      moneyFromFloat(d.BookingCost, d.Currency),
		Taxes:            moneyFromFloat(d.Taxes, d.Currency),
		DeliveryFee:      moneyFromFloat(d.Delivery, d.Currency),
		OffersTotal:      moneyFromFloat(d.OffersTotal, d.Currency),
		TotalCost:        moneyFromFloat(d.TotalCost, d.Currency),
		Offers:           offerItemsFromDocs(d.Offers, d.Currency),
		IsPackageBooking: d.IsPackageBooking,
		PackageMonths:    d.PackageMonths,
		Status:           booking.Status(d.Status),
		PaymentStatus:    booking.PaymentStatus(d.PaymentStatus),
		DeniedReason:     d.DeniedReason,
		AcceptedAt:       d.AcceptedAt,
		DeniedAt:         d.DeniedAt,
		CancelledAt:      d.CancelledAt,
		CancelReason:     d.CancelReason,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
	if err := b.Validate(); err != nil {
		return nil, errs.Wrapf(err, "booking document %s is invalid", id)
	}
	return b, nil
}

func bookingToDoc(b *booking.Booking) map[string]any {
	doc := map[string]any{
		"OrderId":             b.OrderID,
		"BookingNumber":       b.BookingNumber,
		"user_id":             b.UserID,
		"car_id":              b.CarID,
		"start_date":          b.Dates.Start(),
		"end_date":            b.Dates.End(),
		"count":               b.Count,
		"BookingType":         b.Unit.String(),
		"booking_cost":        b.BookingCost.Float64(),
		"taxes":               b.Taxes.Float64(),
		"Delivery":            b.DeliveryFee.Float64(),
		"offersTotal":         b.OffersTotal.Float64(),
		"total_cost":          b.TotalCost.Float64(),
		"Currency":            b.TotalCost.Currency(),
		"isPackageBooking":    b.IsPackageBooking,
		"packageMonths":       b.PackageMonths,
		"OrderStatus":         b.Status.String(),
		"payment_status":      b.PaymentStatus.String(),
		"denied_reason":       b.DeniedReason,
		"cancellation_reason": b.CancelReason,
		"created_at":          b.CreatedAt,
		"updated_at":          b.UpdatedAt,
	}
	if len(b.Offers) > 0 {
		doc["offers"] = offerItemsToDocs(b.Offers)
	}
	if b.AcceptedAt != nil {
		doc["accepted_at"] = *b.AcceptedAt
	}
	if b.DeniedAt != nil {
		doc["denied_at"] = *b.DeniedAt
	}
	if b.CancelledAt != nil {
		doc["cancelled_at"] = *b.CancelledAt
	}
	return doc
}

type extensionDoc struct {
	ExtendedDate  time.Time `firestore:"extended_date"`
	NewEndDate    time.Time `firestore:"new_end_date"`
	ExtensionCost float64   `firestore:"extension_cost"`
	ExtensionType string    `firestore:"extension_type"`
	Count         int       `firestore:"count"`
}

type contractDoc struct {
	OrderID        string `firestore:"OrderId"`
	ContractNumber string `firestore:"ContractNumber"`
	BookingID      string `firestore:"booking_id"`
	UserID         string `firestore:"user_id"`
	CarID          string `firestore:"car_id"`

	StartDate time.Time `firestore:"start_date"`
	EndDate   time.Time `firestore:"end_date"`
	Count     int       `firestore:"count"`
	Unit      string    `firestore:"BookingType"`

	BookingCost float64 `firestore:"booking_cost"`
	Taxes       float64 `firestore:"taxes"`
	Delivery    float64 `firestore:"Delivery"`
	OffersTotal float64 `firestore:"offersTotal"`
	TotalCost   float64 `firestore:"total_cost"`
	Currency    string  `firestore:"Currency"`

	Offers []offerItemDoc `firestore:"offers"`

	Status        string `firestore:"ContractStatus"`
	PaymentStatus string `firestore:"payment_status"`

	IsExtended bool           `firestore:"IsExtended"`
	Extensions []extensionDoc `firestore:"listExtendDetails"`

	CancelReason string `firestore:"cancellation_reason"`

	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func (d contractDoc) toEntity(id string) (*contract.Contract, error) {
	dates, err := pricing.NewDateRange(d.StartDate, d.EndDate)
	if err != nil {
		return nil, errs.Wrapf(err, "contract document %s has invalid dates", id)
	}
	c := &contract.Contract{
		ID:             id,
		OrderID:        d.OrderID,
		ContractNumber: d.ContractNumber,
		BookingID:      d.BookingID,
		UserID:         d.UserID,
		CarID:          d.CarID,
		Dates:          dates,
		Unit:           pricing.Unit(d.Unit),
		Count:          d.Count,
		BookingCost:    moneyFromFloat(d.BookingCost, d.Currency),
		Taxes:          moneyFromFloat(d.Taxes, d.Currency),
		DeliveryFee:    moneyFromFloat(d.Delivery, d.Currency),
		OffersTotal:    moneyFromFloat(d.OffersTotal, d.Currency),
		TotalCost:      moneyFromFloat(d.TotalCost, d.Currency),
		Offers:         offerItemsFromDocs(d.Offers, d.Currency),
		Status:         contract.Status(d.Status),
		PaymentStatus:  booking.PaymentStatus(d.PaymentStatus),
		IsExtended:     d.IsExtended,
		CancelReason:   d.CancelReason,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
	for _, e := range d.Extensions {
		c.Extensions = append(c.Extensions, contract.Extension{
			ExtendedAt: e.ExtendedDate,
			NewEndDate: e.NewEndDate,
			Cost:       moneyFromFloat(e.ExtensionCost, d.Currency),
			Unit:       pricing.Unit(e.ExtensionType),
			Count:      e.Count,
		})
	}
	if err := c.Validate(); err != nil {
		return nil, errs.Wrapf(err, "contract document %s is invalid", id)
	}
	return c, nil
}

func contractToDoc(c *contract.Contract) map[string]any {
	doc := map[string]any{
		"OrderId":             c.OrderID,
		"ContractNumber":      c.ContractNumber,
		"booking_id":          c.BookingID,
		"user_id":             c.UserID,
		"car_id":              c.CarID,
		"start_date":          c.Dates.Start(),
		"end_date":            c.Dates.End(),
		"count":               c.Count,
		"BookingType":         c.Unit.String(),
		"booking_cost":        c.BookingCost.Float64(),
		"taxes":               c.Taxes.Float64(),
		"Delivery":            c.DeliveryFee.Float64(),
		"offersTotal":         c.OffersTotal.Float64(),
		"total_cost":          c.TotalCost.Float64(),
		"Currency":            c.TotalCost.Currency(),
		"ContractStatus":      c.Status.String(),
		"payment_status":      c.PaymentStatus.String(),
		"IsExtended":          c.IsExtended,
		"cancellation_reason": c.CancelReason,
		"created_at":          c.CreatedAt,
		"updated_at":          c.UpdatedAt,
	}
	if len(c.Offers) > 0 {
		doc["offers"] = offerItemsToDocs(c.Offers)
	}
	if len(c.Extensions) > 0 {
		exts := make([]map[string]any, 0, len(c.Extensions))
		for _, e := range c.Extensions {
			exts = append(exts, map[string]any{
				"extended_date":  e.ExtendedAt,
				"new_end_date":   e.NewEndDate,
				"extension_cost": e.Cost.Float64(),
				"extension_type": e.Unit.String(),
				"count":          e.Count,
			})
		}
		doc["listExtendDetails"] = exts
	}
	return doc
}

type userDoc struct {
	Email        string `firestore:"email"`
	FirstName    string `firestore:"first_name"`
	LastName     string `firestore:"last_name"`
	PhoneNumber  string `firestore:"phone_number"`
	Nationality  string `firestore:"nationality"`
	StatusNumber string `firestore:"status_number"`

	Role   string `firestore:"role"`
	Status string `firestore:"status"`

	WalletBalance float64 `firestore:"Wallet_Balance"`
	Currency      string  `firestore:"Currency"`

	PreferredLanguage string `firestore:"preferred_language"`
	EmailVerified     bool   `firestore:"email_verified"`
	PhoneVerified     bool   `firestore:"phone_verified"`

	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func (d userDoc) toEntity(id string) (*user.User, error) {
	lang := d.PreferredLanguage
	if lang == "" {
		lang = "en"
	}
	role := user.Role(d.Role)
	if !role.IsValid() {
		role = user.RoleCustomer
	}
	u := &user.User{
		ID:                id,
		Email:             d.Email,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		PhoneNumber:       d.PhoneNumber,
		Nationality:       d.Nationality,
		StatusNumber:      d.StatusNumber,
		Role:              role,
		Status:            user.Status(d.Status),
		WalletBalance:     moneyFromFloat(d.WalletBalance, d.Currency),
		PreferredLanguage: lang,
		EmailVerified:     d.EmailVerified,
		PhoneVerified:     d.PhoneVerified,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
	if err := u.Validate(); err != nil {
		return nil, errs.Wrapf(err, "user document %s is invalid", id)
	}
	return u, nil
}

func userToDoc(u *user.User) map[string]any {
	return map[string]any{
		"email":              u.Email,
		"first_name":         u.FirstName,
		"last_name":          u.LastName,
		"phone_number":       u.PhoneNumber,
		"nationality":        u.Nationality,
		"status_number":      u.StatusNumber,
		"role":               u.Role.String(),
		"status":             u.Status.String(),
		"Wallet_Balance":     u.WalletBalance.Float64(),
		"Currency":           u.WalletBalance.Currency(),
		"preferred_language": u.PreferredLanguage,
		"email_verified":     u.EmailVerified,
		"phone_verified":     u.PhoneVerified,
		"created_at":         u.CreatedAt,
		"updated_at":         u.UpdatedAt,
	}
}

type offerDoc struct {
	Name      string  `firestore:"offer"`
	NameAr    string  `firestore:"offerAr"`
	OfferType string  `firestore:"offerType"`
	Price     float64 `firestore:"offerPrice"`
	Currency  string  `firestore:"Currency"`
	L2        float64 `firestore:"L2"`
	L3        float64 `firestore:"L3"`
	Active    bool    `firestore:"active"`

	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func (d offerDoc) toEntity(id string) (*offer.Offer, error) {
	o := &offer.Offer{
		ID:        id,
		Name:      d.Name,
		NameAr:    d.NameAr,
		Type:      pricing.OfferType(d.OfferType),
		UnitPrice: moneyFromFloat(d.Price, d.Currency),
		Active:    d.Active,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.L2 > 0 {
		l2 := decimal.NewFromFloat(d.L2)
		o.Tier.L2 = &l2
	}
	if d.L3 > 0 {
		l3 := decimal.NewFromFloat(d.L3)
		o.Tier.L3 = &l3
	}
	if err := o.Validate(); err != nil {
		return nil, errs.Wrapf(err, "offer document %s is invalid", id)
	}
	return o, nil
}

func offerToDoc(o *offer.Offer) map[string]any {
	doc := map[string]any{
		"offer":      o.Name,
		"offerAr":    o.NameAr,
		"offerType":  string(o.Type),
		"offerPrice": o.UnitPrice.Float64(),
		"Currency":   o.UnitPrice.Currency(),
		"active":     o.Active,
		"created_at": o.CreatedAt,
		"updated_at": o.UpdatedAt,
	}
	if o.Tier.L2 != nil {
		f, _ := o.Tier.L2.Float64()
		doc["L2"] = f
	}
	if o.Tier.L3 != nil {
		f, _ := o.Tier.L3.Float64()
		doc["L3"] = f
	}
	return doc
}
