package generator

import (
	"errors"
	"testing"
	"time"

	"github.com/Rana718/petseed/internal/config"
	"github.com/Rana718/petseed/internal/faker"
	"github.com/Rana718/petseed/internal/types"
	"github.com/Rana718/petseed/internal/weighted"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newGenerator(t *testing.T, mutate func(*config.Config)) *Generator {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return New(cfg, faker.New(7), WithClock(func() time.Time { return fixedNow }))
}

func TestCustomers(t *testing.T) {
	g := newGenerator(t, nil)

	customers := g.Customers(20)
	if len(customers) != 20 {
		t.Fatalf("Expected 20 customers, got %d", len(customers))
	}
	for _, c := range customers {
		if c.Name == "" || c.Email == "" {
			t.Errorf("Expected name and email, got %+v", c)
		}
		if len(c.Phone) != 11 {
			t.Errorf("Expected 11-digit phone, got %q", c.Phone)
		}
	}
}

func TestLinkAddressesBijection(t *testing.T) {
	g := newGenerator(t, nil)
	customers := []int64{1, 2, 3, 4, 5}
	addresses := []int64{10, 11, 12, 13, 14}

	links, err := g.LinkAddresses(customers, addresses)
	if err != nil {
		t.Fatalf("LinkAddresses returned error: %v", err)
	}
	if len(links) != 5 {
		t.Fatalf("Expected 5 links, got %d", len(links))
	}

	seenCustomers := make(map[int64]bool)
	seenAddresses := make(map[int64]bool)
	for _, l := range links {
		seenCustomers[l.CustomerID] = true
		seenAddresses[l.AddressID] = true
	}
	if len(seenCustomers) != 5 || len(seenAddresses) != 5 {
		t.Errorf("Expected a bijection, got %+v", links)
	}

	if addresses[0] != 10 || addresses[4] != 14 {
		t.Error("LinkAddresses must not reorder the caller's slice")
	}
}

func TestLinkAddressesInsufficient(t *testing.T) {
	g := newGenerator(t, nil)
	customers := make([]int64, 10)
	addresses := make([]int64, 9)
	for i := range customers {
		customers[i] = int64(i + 1)
	}
	for i := range addresses {
		addresses[i] = int64(i + 100)
	}

	links, err := g.LinkAddresses(customers, addresses)
	if !errors.Is(err, ErrInsufficientAddresses) {
		t.Fatalf("Expected ErrInsufficientAddresses, got %v", err)
	}
	if links != nil {
		t.Errorf("Expected no links, got %d", len(links))
	}
}

func TestAddressMetroState(t *testing.T) {
	g := newGenerator(t, func(c *config.Config) {
		c.Probabilities.State = weighted.Distribution{"25": 1}
		c.Probabilities.CityByState = map[string]weighted.Distribution{"25": {"3548": 1}}
	})
	pool := NewCityPool([]types.City{
		{ID: 3830, StateID: 25},
		{ID: 3548, StateID: 25},
		{ID: 1001, StateID: 5},
	}, []int64{25})

	for range 50 {
		a, err := g.Address(pool)
		if err != nil {
			t.Fatalf("Address returned error: %v", err)
		}
		if a.CityID != 3548 {
			t.Fatalf("Expected metro city 3548, got %d", a.CityID)
		}
		if a.AddressTypeID != types.AddressTypeResidence {
			t.Errorf("Expected residential address, got type %d", a.AddressTypeID)
		}
		if len(a.PostalCode) != 8 {
			t.Errorf("Expected 8-digit postal code, got %q", a.PostalCode)
		}
	}
}

func TestAddressOtherState(t *testing.T) {
	g := newGenerator(t, func(c *config.Config) {
		c.Probabilities.State = weighted.Distribution{config.OtherState: 1}
	})
	pool := NewCityPool([]types.City{
		{ID: 3830, StateID: 25},
		{ID: 1001, StateID: 5},
		{ID: 1002, StateID: 5},
	}, []int64{25})

	for range 50 {
		a, err := g.Address(pool)
		if err != nil {
			t.Fatalf("Address returned error: %v", err)
		}
		if a.CityID == 3830 {
			t.Fatal("Expected a city outside store states")
		}
	}
}

func TestAddressFallbacks(t *testing.T) {
	g := newGenerator(t, func(c *config.Config) {
		c.Probabilities.State = weighted.Distribution{"19": 1}
		c.Probabilities.CityByState = map[string]weighted.Distribution{}
	})

	// state 19 has no cities in the pool, so any store city will do
	pool := NewCityPool([]types.City{{ID: 3830, StateID: 25}}, []int64{25})
	a, err := g.Address(pool)
	if err != nil {
		t.Fatalf("Address returned error: %v", err)
	}
	if a.CityID != 3830 {
		t.Errorf("Expected fallback to store city 3830, got %d", a.CityID)
	}

	// no store cities either, so any city will do
	pool = NewCityPool([]types.City{{ID: 1001, StateID: 5}}, nil)
	if a, err = g.Address(pool); err != nil || a.CityID != 1001 {
		t.Errorf("Expected fallback to city 1001, got %d, %v", a.CityID, err)
	}

	if _, err := g.Address(NewCityPool(nil, nil)); !errors.Is(err, ErrNoCities) {
		t.Errorf("Expected ErrNoCities, got %v", err)
	}
}

func TestPetsFor(t *testing.T) {
	g := newGenerator(t, func(c *config.Config) {
		c.Probabilities.QuantityPets = weighted.Distribution{"2": 1}
		c.Probabilities.Specie = weighted.Distribution{"1": 1}
	})
	breeds := NewBreedPool([]types.Breed{{ID: 1, SpecieID: 1}, {ID: 2, SpecieID: 1}, {ID: 3, SpecieID: 2}})

	pets, err := g.PetsFor(42, breeds, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("PetsFor returned error: %v", err)
	}
	if len(pets) != 2 {
		t.Fatalf("Expected 2 pets, got %d", len(pets))
	}

	oldest := fixedNow.AddDate(-20, 0, -1)
	for _, p := range pets {
		if p.CustomerID != 42 {
			t.Errorf("Expected customer 42, got %d", p.CustomerID)
		}
		if p.BreedID != 1 && p.BreedID != 2 {
			t.Errorf("Expected a dog breed, got %d", p.BreedID)
		}
		if p.DateOfBirth.Before(oldest) || p.DateOfBirth.After(fixedNow) {
			t.Errorf("Date of birth %v outside the last 20 years", p.DateOfBirth)
		}
	}
}

func TestPetsForSpeciesWithoutBreeds(t *testing.T) {
	g := newGenerator(t, func(c *config.Config) {
		c.Probabilities.QuantityPets = weighted.Distribution{"3": 1}
		c.Probabilities.Specie = weighted.Distribution{"6": 1}
	})

	pets, err := g.PetsFor(1, NewBreedPool([]types.Breed{{ID: 1, SpecieID: 1}}), []int64{1})
	if err != nil {
		t.Fatalf("PetsFor returned error: %v", err)
	}
	if len(pets) != 0 {
		t.Errorf("Expected no pets for a species without breeds, got %d", len(pets))
	}

	if _, err := g.PetsFor(1, NewBreedPool(nil), nil); !errors.Is(err, ErrNoSizes) {
		t.Errorf("Expected ErrNoSizes, got %v", err)
	}
}

func TestOrdersFor(t *testing.T) {
	g := newGenerator(t, func(c *config.Config) {
		c.Probabilities.ActiveCustomerOrder = weighted.Distribution{"active": 1}
		c.Ranges.OrdersPerCustomer = map[string]string{"active": "4-4"}
	})

	orders, err := g.OrdersFor(types.CustomerAddressRef{CustomerID: 3, AddressID: 9})
	if err != nil {
		t.Fatalf("OrdersFor returned error: %v", err)
	}
	if len(orders) != 4 {
		t.Fatalf("Expected 4 orders, got %d", len(orders))
	}

	start, end := g.cfg.CampaignWindow()
	for _, o := range orders {
		if o.CustomerID != 3 || o.AddressID != 9 {
			t.Errorf("Unexpected order keys %+v", o)
		}
		if o.OrderDate.Before(start) || o.OrderDate.After(end) {
			t.Errorf("Order date %v outside campaign", o.OrderDate)
		}
		if o.StatusID < 1 || o.StatusID > 4 {
			t.Errorf("Unexpected status %d", o.StatusID)
		}
	}
}
