package generator

import (
	"fmt"
	"strconv"

	"github.com/Rana718/petseed/internal/config"
	"github.com/Rana718/petseed/internal/types"
	"github.com/Rana718/petseed/internal/weighted"
)

// CityPool splits the city table into cities of states that have a store
// and everything else.
type CityPool struct {
	all         []types.City
	storeCities []types.City
	other       []types.City
	byState     map[int64][]types.City
}

func NewCityPool(cities []types.City, storeStates []int64) CityPool {
	withStore := make(map[int64]bool, len(storeStates))
	for _, id := range storeStates {
		withStore[id] = true
	}

	pool := CityPool{all: cities, byState: make(map[int64][]types.City)}
	for _, c := range cities {
		if withStore[c.StateID] {
			pool.storeCities = append(pool.storeCities, c)
			pool.byState[c.StateID] = append(pool.byState[c.StateID], c)
		} else {
			pool.other = append(pool.other, c)
		}
	}
	return pool
}

func (p CityPool) storeCity(id int64) []types.City {
	for _, c := range p.storeCities {
		if c.ID == id {
			return []types.City{c}
		}
	}
	return nil
}

// Address draws a state, then a city inside it, and fills a residence there.
func (g *Generator) Address(pool CityPool) (types.Address, error) {
	candidates, err := g.cityCandidates(pool)
	if err != nil {
		return types.Address{}, err
	}
	if len(candidates) == 0 {
		candidates = pool.storeCities
	}
	if len(candidates) == 0 {
		candidates = pool.all
	}
	if len(candidates) == 0 {
		return types.Address{}, ErrNoCities
	}

	city := pickOne(g.f, candidates)
	return types.Address{
		PostalCode:    g.f.PostalCode(),
		Street:        g.f.Street(),
		Number:        g.f.BuildingNumber(),
		Complement:    g.f.Complement(),
		Neighborhood:  g.f.Neighborhood(),
		CityID:        city.ID,
		AddressTypeID: types.AddressTypeResidence,
	}, nil
}

func (g *Generator) cityCandidates(pool CityPool) ([]types.City, error) {
	state, err := weighted.Pick(g.f, g.cfg.Probabilities.State)
	if err != nil {
		return nil, fmt.Errorf("failed to draw state: %w", err)
	}
	if state == config.OtherState {
		return pool.other, nil
	}

	stateID, err := strconv.ParseInt(state, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: state outcome %q", weighted.ErrInvalidDistribution, state)
	}

	if cities, ok := g.metro[stateID]; ok {
		cityID, err := weighted.PickInt(g.f, cities)
		if err != nil {
			return nil, fmt.Errorf("failed to draw city of state %d: %w", stateID, err)
		}
		if c := pool.storeCity(cityID); len(c) > 0 {
			return c, nil
		}
	}
	return pool.byState[stateID], nil
}

func (g *Generator) Addresses(n int, pool CityPool) ([]types.Address, error) {
	addresses := make([]types.Address, 0, n)
	for range n {
		a, err := g.Address(pool)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, nil
}
