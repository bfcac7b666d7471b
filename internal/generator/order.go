package generator

import (
	"fmt"

	"github.com/Rana718/petseed/internal/types"
	"github.com/Rana718/petseed/internal/weighted"
)

// OrdersFor draws whether the customer is active, how many orders that
// audience places, and a date and status per order.
func (g *Generator) OrdersFor(ca types.CustomerAddressRef) ([]types.Order, error) {
	audience, err := weighted.Pick(g.f, g.cfg.Probabilities.ActiveCustomerOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to draw order audience: %w", err)
	}
	r, err := g.cfg.Ranges.Orders(audience)
	if err != nil {
		return nil, err
	}

	start, end := g.cfg.CampaignWindow()
	n := r.Draw(g.f)
	orders := make([]types.Order, 0, n)
	for range n {
		status, err := weighted.PickInt(g.f, g.cfg.Probabilities.StatusOrder)
		if err != nil {
			return nil, fmt.Errorf("failed to draw order status: %w", err)
		}
		orders = append(orders, types.Order{
			CustomerID: ca.CustomerID,
			OrderDate:  g.f.DateBetween(start, end),
			StatusID:   status,
			AddressID:  ca.AddressID,
		})
	}
	return orders, nil
}
