package generator

import (
	"fmt"

	"github.com/Rana718/petseed/internal/classify"
	"github.com/Rana718/petseed/internal/config"
	"github.com/Rana718/petseed/internal/types"
	"github.com/Rana718/petseed/internal/weighted"
)

const (
	minLinesOutsideStoreStates = 1
	maxLinesOutsideStoreStates = 3
)

// Catalog indexes stores and their products for item generation.
type Catalog struct {
	stores   []types.Store
	byState  map[int64][]types.Store
	byCity   map[int64][]types.Store
	products map[int64][]types.Product
}

func NewCatalog(stores []types.Store, products []types.Product) *Catalog {
	c := &Catalog{
		stores:   stores,
		byState:  make(map[int64][]types.Store),
		byCity:   make(map[int64][]types.Store),
		products: make(map[int64][]types.Product),
	}
	for _, s := range stores {
		c.byState[s.StateID] = append(c.byState[s.StateID], s)
		c.byCity[s.CityID] = append(c.byCity[s.CityID], s)
	}
	for _, p := range products {
		c.products[p.StoreID] = append(c.products[p.StoreID], p)
	}
	return c
}

func (c *Catalog) hasStoreIn(stateID int64) bool {
	return len(c.byState[stateID]) > 0
}

// OrderItemContext is what ItemsFor needs besides the order itself.
type OrderItemContext struct {
	Catalog *Catalog
	// Species holds the species names of the customer's pets.
	Species []string
}

// ItemsFor fills an order with lines from one store near the order address.
// No stores or an empty store catalogue yield no lines.
func (g *Generator) ItemsFor(order types.OrderRef, ctx OrderItemContext) ([]types.OrderItem, error) {
	catalog := ctx.Catalog
	if catalog == nil || len(catalog.stores) == 0 {
		return nil, nil
	}

	lines, err := g.lineCount(order, catalog)
	if err != nil {
		return nil, err
	}

	store, err := g.storeFor(order, catalog)
	if err != nil {
		return nil, err
	}

	products := catalog.products[store.ID]
	if len(products) == 0 {
		return nil, nil
	}
	eligible := classify.ForSpecies(products, ctx.Species)
	if len(eligible) == 0 {
		eligible = products
	}

	warm, cold := g.cfg.SeasonWindows()
	season := classify.SeasonOf(order.OrderDate, warm, cold)
	temperature := g.cfg.Temperature()

	items := make([]types.OrderItem, 0, lines)
	for range lines {
		kind, err := g.productType(season)
		if err != nil {
			return nil, err
		}

		candidates := matching(eligible, func(p types.Product) bool {
			return temperature.Matches(p, kind)
		})
		if len(candidates) == 0 {
			candidates = eligible
		}

		quantity, err := weighted.PickInt(g.f, g.cfg.Probabilities.QuantityOrderItems)
		if err != nil {
			return nil, fmt.Errorf("failed to draw item quantity: %w", err)
		}
		items = append(items, types.OrderItem{
			OrderID:   order.ID,
			ProductID: pickOne(g.f, candidates).ID,
			Quantity:  int(quantity),
		})
	}
	return items, nil
}

func (g *Generator) lineCount(order types.OrderRef, catalog *Catalog) (int, error) {
	if !catalog.hasStoreIn(order.StateID) {
		return g.f.Between(minLinesOutsideStoreStates, maxLinesOutsideStoreStates), nil
	}
	n, err := weighted.PickRange(g.f, g.cfg.Probabilities.QuantityOrderItem)
	if err != nil {
		return 0, fmt.Errorf("failed to draw line count: %w", err)
	}
	return n, nil
}

func (g *Generator) storeFor(order types.OrderRef, catalog *Catalog) (types.Store, error) {
	var nearby []types.Store
	if cities, ok := g.metro[order.StateID]; ok {
		cityID, err := weighted.PickInt(g.f, cities)
		if err != nil {
			return types.Store{}, fmt.Errorf("failed to draw store city: %w", err)
		}
		nearby = catalog.byCity[cityID]
	}
	if len(nearby) == 0 {
		nearby = catalog.byState[order.StateID]
	}
	if len(nearby) == 0 {
		nearby = catalog.stores
	}
	return pickOne(g.f, nearby), nil
}

// productType maps the order season to a product-type draw. Outside both
// seasons every line is neutral.
func (g *Generator) productType(season classify.Season) (classify.Season, error) {
	var mix weighted.Distribution
	switch season {
	case classify.Warm:
		mix = g.cfg.Probabilities.ProductWarm
	case classify.Cold:
		mix = g.cfg.Probabilities.ProductCold
	default:
		return classify.Neutral, nil
	}

	kind, err := weighted.Pick(g.f, mix)
	if err != nil {
		return "", fmt.Errorf("failed to draw product type: %w", err)
	}
	switch kind {
	case config.ProductWarm:
		return classify.Warm, nil
	case config.ProductCold:
		return classify.Cold, nil
	default:
		return classify.Neutral, nil
	}
}

func matching[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
