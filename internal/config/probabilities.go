package config

import (
	"fmt"

	"github.com/Rana718/petseed/internal/weighted"
)

// OtherState is the state-distribution bucket for cities outside store states.
const OtherState = "other"

// Product types drawn per order line.
const (
	ProductWarm    = "warm"
	ProductCold    = "cold"
	ProductNeutral = "neutral"
)

type Probabilities struct {
	Specie       weighted.Distribution `json:"specie" yaml:"specie" mapstructure:"specie"`
	QuantityPets weighted.Distribution `json:"quantity_pets" yaml:"quantity_pets" mapstructure:"quantity_pets"`

	// State keys are store-state ids plus OtherState. CityByState holds a city
	// distribution for the states that are weighted per city.
	State       weighted.Distribution            `json:"state" yaml:"state" mapstructure:"state"`
	CityByState map[string]weighted.Distribution `json:"city_by_state" yaml:"city_by_state" mapstructure:"city_by_state"`

	ActiveCustomerOrder weighted.Distribution `json:"active_customer_order" yaml:"active_customer_order" mapstructure:"active_customer_order"`
	StatusOrder         weighted.Distribution `json:"status_order" yaml:"status_order" mapstructure:"status_order"`

	// QuantityOrderItem weighs "min-max" line counts per order;
	// QuantityOrderItems weighs the units of a single line.
	QuantityOrderItem  weighted.Distribution `json:"quantity_order_item" yaml:"quantity_order_item" mapstructure:"quantity_order_item"`
	QuantityOrderItems weighted.Distribution `json:"quantity_order_items" yaml:"quantity_order_items" mapstructure:"quantity_order_items"`

	ActiveCustomerRequest weighted.Distribution `json:"active_customer_request" yaml:"active_customer_request" mapstructure:"active_customer_request"`
	StatusRequest         weighted.Distribution `json:"status_request" yaml:"status_request" mapstructure:"status_request"`

	// Product type mix during the warm and cold periods.
	ProductWarm weighted.Distribution `json:"product_warm" yaml:"product_warm" mapstructure:"product_warm"`
	ProductCold weighted.Distribution `json:"product_cold" yaml:"product_cold" mapstructure:"product_cold"`
}

// Ranges maps an audience ("active", "inactive") to a "min-max" count.
type Ranges struct {
	OrdersPerCustomer   map[string]string `json:"orders_per_customer" yaml:"orders_per_customer" mapstructure:"orders_per_customer"`
	RequestsPerCustomer map[string]string `json:"requests_per_customer" yaml:"requests_per_customer" mapstructure:"requests_per_customer"`
}

// MetroStates returns the ids of states with a per-city distribution.
func (p Probabilities) MetroStates() map[int64]weighted.Distribution {
	out := make(map[int64]weighted.Distribution, len(p.CityByState))
	for key, d := range p.CityByState {
		id, err := parseID(key)
		if err != nil {
			continue
		}
		out[id] = d
	}
	return out
}

func (p *Probabilities) applyDefaults(d Probabilities) {
	fill := func(dst *weighted.Distribution, src weighted.Distribution) {
		if len(*dst) == 0 {
			*dst = src
		}
	}
	fill(&p.Specie, d.Specie)
	fill(&p.QuantityPets, d.QuantityPets)
	fill(&p.State, d.State)
	fill(&p.ActiveCustomerOrder, d.ActiveCustomerOrder)
	fill(&p.StatusOrder, d.StatusOrder)
	fill(&p.QuantityOrderItem, d.QuantityOrderItem)
	fill(&p.QuantityOrderItems, d.QuantityOrderItems)
	fill(&p.ActiveCustomerRequest, d.ActiveCustomerRequest)
	fill(&p.StatusRequest, d.StatusRequest)
	fill(&p.ProductWarm, d.ProductWarm)
	fill(&p.ProductCold, d.ProductCold)
	if p.CityByState == nil {
		p.CityByState = d.CityByState
	}
}

func (p Probabilities) validate() error {
	named := []struct {
		key string
		d   weighted.Distribution
	}{
		{"probabilities.specie", p.Specie},
		{"probabilities.quantity_pets", p.QuantityPets},
		{"probabilities.state", p.State},
		{"probabilities.active_customer_order", p.ActiveCustomerOrder},
		{"probabilities.status_order", p.StatusOrder},
		{"probabilities.quantity_order_item", p.QuantityOrderItem},
		{"probabilities.quantity_order_items", p.QuantityOrderItems},
		{"probabilities.active_customer_request", p.ActiveCustomerRequest},
		{"probabilities.status_request", p.StatusRequest},
		{"probabilities.product_warm", p.ProductWarm},
		{"probabilities.product_cold", p.ProductCold},
	}
	for _, n := range named {
		if err := n.d.Validate(); err != nil {
			return fmt.Errorf("%s: %w", n.key, err)
		}
	}

	integerKeys := map[string]weighted.Distribution{
		"probabilities.specie":               p.Specie,
		"probabilities.quantity_pets":        p.QuantityPets,
		"probabilities.status_order":         p.StatusOrder,
		"probabilities.quantity_order_items": p.QuantityOrderItems,
		"probabilities.status_request":       p.StatusRequest,
	}
	for key, d := range integerKeys {
		for outcome := range d {
			if _, err := parseID(outcome); err != nil {
				return fmt.Errorf("%s: outcome %q is not an integer", key, outcome)
			}
		}
	}

	for outcome := range p.State {
		if outcome == OtherState {
			continue
		}
		if _, err := parseID(outcome); err != nil {
			return fmt.Errorf("probabilities.state: outcome %q is neither a state id nor %q", outcome, OtherState)
		}
	}

	for state, d := range p.CityByState {
		if _, err := parseID(state); err != nil {
			return fmt.Errorf("probabilities.city_by_state: key %q is not a state id", state)
		}
		if err := d.Validate(); err != nil {
			return fmt.Errorf("probabilities.city_by_state.%s: %w", state, err)
		}
		for city := range d {
			if _, err := parseID(city); err != nil {
				return fmt.Errorf("probabilities.city_by_state.%s: outcome %q is not a city id", state, city)
			}
		}
	}

	for outcome := range p.QuantityOrderItem {
		if _, err := weighted.ParseRange(outcome); err != nil {
			return fmt.Errorf("probabilities.quantity_order_item: %w", err)
		}
	}

	productMixes := map[string]weighted.Distribution{
		"probabilities.product_warm": p.ProductWarm,
		"probabilities.product_cold": p.ProductCold,
	}
	for key, d := range productMixes {
		for outcome := range d {
			switch outcome {
			case ProductWarm, ProductCold, ProductNeutral:
			default:
				return fmt.Errorf("%s: unknown product type %q", key, outcome)
			}
		}
	}
	return nil
}

func (r *Ranges) applyDefaults(d Ranges) {
	if len(r.OrdersPerCustomer) == 0 {
		r.OrdersPerCustomer = d.OrdersPerCustomer
	}
	if len(r.RequestsPerCustomer) == 0 {
		r.RequestsPerCustomer = d.RequestsPerCustomer
	}
}

// validate makes sure every audience the distributions can draw has a
// parseable range.
func (r Ranges) validate(p Probabilities) error {
	check := func(key string, audiences weighted.Distribution, ranges map[string]string) error {
		for audience := range audiences {
			raw, ok := ranges[audience]
			if !ok {
				return fmt.Errorf("%s: no range for audience %q", key, audience)
			}
			if _, err := weighted.ParseRange(raw); err != nil {
				return fmt.Errorf("%s.%s: %w", key, audience, err)
			}
		}
		return nil
	}
	if err := check("ranges.orders_per_customer", p.ActiveCustomerOrder, r.OrdersPerCustomer); err != nil {
		return err
	}
	return check("ranges.requests_per_customer", p.ActiveCustomerRequest, r.RequestsPerCustomer)
}

// Orders returns the orders-per-customer range for audience.
func (r Ranges) Orders(audience string) (weighted.Range, error) {
	return lookupRange("ranges.orders_per_customer", r.OrdersPerCustomer, audience)
}

// Requests returns the requests-per-pet range for audience.
func (r Ranges) Requests(audience string) (weighted.Range, error) {
	return lookupRange("ranges.requests_per_customer", r.RequestsPerCustomer, audience)
}

func lookupRange(key string, ranges map[string]string, audience string) (weighted.Range, error) {
	raw, ok := ranges[audience]
	if !ok {
		return weighted.Range{}, fmt.Errorf("%w: %s has no range for audience %q", ErrInvalidConfig, key, audience)
	}
	return weighted.ParseRange(raw)
}
