package pipeline

import (
	"context"
	"fmt"

	"github.com/Rana718/petseed/internal/generator"
	"github.com/Rana718/petseed/internal/storage"
	"github.com/Rana718/petseed/internal/types"
)

func (p *Pipeline) customers(ctx context.Context, gw storage.Gateway) (int, error) {
	records := p.gen.Customers(p.cfg.Generation.Customers)
	if err := storage.InsertRecords(ctx, gw, types.TableCustomer, types.CustomerColumns, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// addresses writes one residence per configured customer.
func (p *Pipeline) addresses(ctx context.Context, gw storage.Gateway) (int, error) {
	states, err := loadStoreStates(ctx, gw)
	if err != nil {
		return 0, fmt.Errorf("failed to load store states: %w", err)
	}
	cities, err := loadCities(ctx, gw)
	if err != nil {
		return 0, fmt.Errorf("failed to load cities: %w", err)
	}

	records, err := p.gen.Addresses(p.cfg.Generation.Customers, generator.NewCityPool(cities, states))
	if err != nil {
		return 0, err
	}
	if err := storage.InsertRecords(ctx, gw, types.TableAddress, types.AddressColumns, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

func (p *Pipeline) pets(ctx context.Context, gw storage.Gateway) (int, error) {
	breeds, err := loadBreeds(ctx, gw)
	if err != nil {
		return 0, fmt.Errorf("failed to load breeds: %w", err)
	}
	sizes, err := loadSizes(ctx, gw)
	if err != nil {
		return 0, fmt.Errorf("failed to load sizes: %w", err)
	}
	customers, err := loadCustomers(ctx, gw)
	if err != nil {
		return 0, fmt.Errorf("failed to load customers: %w", err)
	}

	pool := generator.NewBreedPool(breeds)
	var records []types.Pet
	for _, customerID := range customers {
		pets, err := p.gen.PetsFor(customerID, pool, sizes)
		if err != nil {
			return 0, err
		}
		records = append(records, pets...)
	}

	if err := storage.InsertRecords(ctx, gw, types.TablePet, types.PetColumns, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// links pairs customers and residences that are not linked yet. The address
// check runs before anything is written.
func (p *Pipeline) links(ctx context.Context, gw storage.Gateway) (int, error) {
	customers, err := loadUnlinkedCustomers(ctx, gw)
	if err != nil {
		return 0, fmt.Errorf("failed to load customers: %w", err)
	}
	addresses, err := loadUnlinkedResidences(ctx, gw)
	if err != nil {
		return 0, fmt.Errorf("failed to load addresses: %w", err)
	}

	records, err := p.gen.LinkAddresses(customers, addresses)
	if err != nil {
		return 0, err
	}
	if err := storage.InsertRecords(ctx, gw, types.TableCustomerAddress, types.CustomerAddressColumns, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// orders only places orders for customers living in a state with a store.
func (p *Pipeline) orders(ctx context.Context, gw storage.Gateway) (int, error) {
	states, err := loadStoreStates(ctx, gw)
	if err != nil {
		return 0, fmt.Errorf("failed to load store states: %w", err)
	}
	links, err := loadCustomerAddresses(ctx, gw, states)
	if err != nil {
		return 0, fmt.Errorf("failed to load customer addresses: %w", err)
	}

	var records []types.Order
	for _, ca := range links {
		orders, err := p.gen.OrdersFor(ca)
		if err != nil {
			return 0, err
		}
		records = append(records, orders...)
	}

	if err := storage.InsertRecords(ctx, gw, types.TableOrder, types.OrderColumns, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// orderItems fills every order that has no lines yet.
func (p *Pipeline) orderItems(ctx context.Context, gw storage.Gateway) (int, error) {
	orders, err := loadOrdersWithoutItems(ctx, gw)
	if err != nil {
		return 0, fmt.Errorf("failed to load orders: %w", err)
	}
	stores, err := loadStores(ctx, gw)
	if err != nil {
		return 0, fmt.Errorf("failed to load stores: %w", err)
	}
	products, err := loadProducts(ctx, gw)
	if err != nil {
		return 0, fmt.Errorf("failed to load products: %w", err)
	}
	species, err := loadSpeciesByCustomer(ctx, gw)
	if err != nil {
		return 0, fmt.Errorf("failed to load pet species: %w", err)
	}

	catalog := generator.NewCatalog(stores, products)
	var records []types.OrderItem
	for _, o := range orders {
		items, err := p.gen.ItemsFor(o, generator.OrderItemContext{
			Catalog: catalog,
			Species: species[o.CustomerID],
		})
		if err != nil {
			return 0, err
		}
		records = append(records, items...)
	}

	if err := storage.InsertRecords(ctx, gw, types.TableOrderItem, types.OrderItemColumns, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

func (p *Pipeline) requests(ctx context.Context, gw storage.Gateway) (int, error) {
	pets, err := loadPets(ctx, gw)
	if err != nil {
		return 0, fmt.Errorf("failed to load pets: %w", err)
	}
	services, err := loadServices(ctx, gw)
	if err != nil {
		return 0, fmt.Errorf("failed to load services: %w", err)
	}

	var records []types.Request
	for _, pet := range pets {
		requests, err := p.gen.RequestsFor(pet, services)
		if err != nil {
			return 0, err
		}
		records = append(records, requests...)
	}

	if err := storage.InsertRecords(ctx, gw, types.TableRequest, types.RequestColumns, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
