//go:build unit

package usecase_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d3coo/car-rental-backend/internal/domain/booking"
	"github.com/d3coo/car-rental-backend/internal/domain/car"
	"github.com/d3coo/car-rental-backend/internal/domain/contract"
	"github.com/d3coo/car-rental-backend/internal/domain/offer"
	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/domain/user"
	"github.com/d3coo/car-rental-backend/internal/infra"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

func money(t *testing.T, amount string) pricing.Money {
	t.Helper()
	m, err := pricing.NewMoneyFromString(amount, "SAR")
	require.NoError(t, err)
	return m
}

func newPricingService() *pricing.Service {
	return pricing.NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

type fakeCarRepo struct {
	cars    map[string]*car.Car
	updates int
}

func newFakeCarRepo(cars ...*car.Car) *fakeCarRepo {
	repo := &fakeCarRepo{cars: make(map[string]*car.Car)}
	for _, c := range cars {
		repo.cars[c.ID] = c
	}
	return repo
}

func (f *fakeCarRepo) FindByID(_ context.Context, id string) (*car.Car, error) {
	c, ok := f.cars[id]
	if !ok {
		return nil, notFound("car")
	}
	return c, nil
}

func (f *fakeCarRepo) List(_ context.Context, _ usecase.CarFilter) ([]*car.Car, error) {
	out := make([]*car.Car, 0, len(f.cars))
	for _, c := range f.cars {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCarRepo) Create(_ context.Context, c *car.Car) (string, error) {
	id := fmt.Sprintf("car-%d", len(f.cars)+1)
	f.cars[id] = c
	return id, nil
}

func (f *fakeCarRepo) Update(_ context.Context, c *car.Car) error {
	if _, ok := f.cars[c.ID]; !ok {
		return notFound("car")
	}
	f.cars[c.ID] = c
	f.updates++
	return nil
}

func (f *fakeCarRepo) Delete(_ context.Context, id string) error {
	delete(f.cars, id)
	return nil
}

type fakeUserRepo struct {
	users  map[string]*user.User
	hashes map[string]string
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*user.User), hashes: make(map[string]string)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, string, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, f.hashes[u.ID], nil
		}
	}
	return nil, "", notFound("user")
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User, passwordHash string) (string, error) {
	id := fmt.Sprintf("user-%d", len(f.users)+1)
	f.users[id] = u
	f.hashes[id] = passwordHash
	return id, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return notFound("user")
	}
	f.users[u.ID] = u
	return nil
}

type fakeOfferRepo struct {
	offers map[string]*offer.Offer
}

func newFakeOfferRepo(offers ...*offer.Offer) *fakeOfferRepo {
	repo := &fakeOfferRepo{offers: make(map[string]*offer.Offer)}
	for _, o := range offers {
		repo.offers[o.ID] = o
	}
	return repo
}

func (f *fakeOfferRepo) FindByID(_ context.Context, id string) (*offer.Offer, error) {
	o, ok := f.offers[id]
	if !ok {
		return nil, notFound("offer")
	}
	return o, nil
}

func (f *fakeOfferRepo) FindByIDs(_ context.Context, ids []string) ([]*offer.Offer, error) {
	out := make([]*offer.Offer, 0, len(ids))
	for _, id := range ids {
		o, ok := f.offers[id]
		if !ok {
			return nil, notFound("offer")
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOfferRepo) ListActive(_ context.Context) ([]*offer.Offer, error) {
	out := make([]*offer.Offer, 0, len(f.offers))
	for _, o := range f.offers {
		if o.Active {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings map[string]*booking.Booking
}

func newFakeBookingRepo(bookings ...*booking.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[string]*booking.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id string) (*booking.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return b, nil
}

func (f *fakeBookingRepo) List(_ context.Context, filter usecase.BookingFilter) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) (string, error) {
	id := fmt.Sprintf("bk-%d", len(f.bookings)+1)
	f.bookings[id] = b
	return id, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return notFound("booking")
	}
	f.bookings[b.ID] = b
	return nil
}

type fakeContractRepo struct {
	contracts map[string]*contract.Contract
	byBooking map[string]*contract.Contract
}

func newFakeContractRepo(contracts ...*contract.Contract) *fakeContractRepo {
	repo := &fakeContractRepo{
		contracts: make(map[string]*contract.Contract),
		byBooking: make(map[string]*contract.Contract),
	}
	for _, c := range contracts {
		repo.contracts[c.ID] = c
		repo.byBooking[c.BookingID] = c
	}
	return repo
}

func (f *fakeContractRepo) FindByID(_ context.Context, id string) (*contract.Contract, error) {
	c, ok := f.contracts[id]
	if !ok {
		return nil, notFound("contract")
	}
	return c, nil
}

func (f *fakeContractRepo) FindByBookingID(_ context.Context, bookingID string) (*contract.Contract, error) {
	c, ok := f.byBooking[bookingID]
	if !ok {
		return nil, notFound("contract")
	}
	return c, nil
}

func (f *fakeContractRepo) List(_ context.Context, filter usecase.ContractFilter) ([]*contract.Contract, error) {
	out := make([]*contract.Contract, 0, len(f.contracts))
	for _, c := range f.contracts {
		if filter.UserID != "" && c.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeContractRepo) Create(_ context.Context, c *contract.Contract) (string, error) {
	id := fmt.Sprintf("ct-%d", len(f.contracts)+1)
	f.contracts[id] = c
	f.byBooking[c.BookingID] = c
	return id, nil
}

func (f *fakeContractRepo) Update(_ context.Context, c *contract.Contract) error {
	if _, ok := f.contracts[c.ID]; !ok {
		return notFound("contract")
	}
	f.contracts[c.ID] = c
	return nil
}

type fakeWalletRepo struct {
	balances map[string]pricing.Money
	credits  []usecase.WalletMovement
	debits   []usecase.WalletMovement
}

func newFakeWalletRepo() *fakeWalletRepo {
	return &fakeWalletRepo{balances: make(map[string]pricing.Money)}
}

func (f *fakeWalletRepo) Balance(_ context.Context, userID string) (pricing.Money, error) {
	balance, ok := f.balances[userID]
	if !ok {
		return pricing.Money{}, notFound("user")
	}
	return balance, nil
}

func (f *fakeWalletRepo) Credit(_ context.Context, mv usecase.WalletMovement) (*usecase.WalletEntry, error) {
	previous := f.balances[mv.UserID]
	next, err := previous.Add(mv.Amount)
	if err != nil {
		next = mv.Amount
	}
	f.balances[mv.UserID] = next
	f.credits = append(f.credits, mv)
	return &usecase.WalletEntry{Action: "add", Amount: mv.Amount, PreviousBalance: previous, NewBalance: next}, nil
}

func (f *fakeWalletRepo) Debit(_ context.Context, mv usecase.WalletMovement) (*usecase.WalletEntry, error) {
	previous := f.balances[mv.UserID]
	next, err := previous.Subtract(mv.Amount)
	if err != nil {
		return nil, err
	}
	f.balances[mv.UserID] = next
	f.debits = append(f.debits, mv)
	return &usecase.WalletEntry{Action: "deduct", Amount: mv.Amount, PreviousBalance: previous, NewBalance: next}, nil
}

func (f *fakeWalletRepo) History(_ context.Context, _ string, limit int) ([]*usecase.WalletEntry, error) {
	entries := make([]*usecase.WalletEntry, 0, len(f.credits)+len(f.debits))
	for range f.credits {
		entries = append(entries, &usecase.WalletEntry{Action: "add"})
	}
	for range f.debits {
		entries = append(entries, &usecase.WalletEntry{Action: "deduct"})
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
