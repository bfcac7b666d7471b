package generator

import (
	"fmt"

	"github.com/Rana718/petseed/internal/types"
)

// LinkAddresses gives every customer a distinct residential address. The
// addresses are shuffled first so the pairing does not follow insert order.
func (g *Generator) LinkAddresses(customers, addresses []int64) ([]types.CustomerAddress, error) {
	if len(addresses) < len(customers) {
		return nil, fmt.Errorf("%w: %d addresses for %d customers", ErrInsufficientAddresses, len(addresses), len(customers))
	}

	shuffled := make([]int64, len(addresses))
	copy(shuffled, addresses)
	g.f.ShuffleIDs(shuffled)

	links := make([]types.CustomerAddress, len(customers))
	for i, customerID := range customers {
		links[i] = types.CustomerAddress{CustomerID: customerID, AddressID: shuffled[i]}
	}
	return links, nil
}
