package pipeline

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Rana718/petseed/internal/storage"
	"github.com/Rana718/petseed/internal/types"
)

func ids(ctx context.Context, gw storage.Gateway, q storage.Query, col string) ([]int64, error) {
	rows, err := gw.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(rows))
	for _, row := range rows {
		id, err := row.Int64(col)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s of %s: %w", col, q.Table, err)
		}
		out = append(out, id)
	}
	return out, nil
}

// loadStoreStates returns the ids of states with at least one store address.
func loadStoreStates(ctx context.Context, gw storage.Gateway) ([]int64, error) {
	return ids(ctx, gw, storage.Query{
		Table:    "ADDRESS a",
		Columns:  []string{"c.STATE_ID"},
		Join:     []string{"JOIN CITY c ON a.CITY_ID = c.ID"},
		Where:    sq.Eq{"a.ADDRESS_TYPE_ID": types.AddressTypeStore},
		Distinct: true,
	}, "STATE_ID")
}

func loadCities(ctx context.Context, gw storage.Gateway) ([]types.City, error) {
	rows, err := gw.Search(ctx, storage.Query{
		Table:   "CITY c",
		Columns: []string{"c.ID", "c.STATE_ID"},
		Join:    []string{"JOIN STATE s ON c.STATE_ID = s.ID"},
	})
	if err != nil {
		return nil, err
	}

	out := make([]types.City, 0, len(rows))
	for _, row := range rows {
		var c types.City
		if c.ID, err = row.Int64("ID"); err != nil {
			return nil, err
		}
		if c.StateID, err = row.Int64("STATE_ID"); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func loadBreeds(ctx context.Context, gw storage.Gateway) ([]types.Breed, error) {
	rows, err := gw.Search(ctx, storage.Query{Table: types.TableBreed, Columns: []string{"ID", "SPECIE_ID"}})
	if err != nil {
		return nil, err
	}

	out := make([]types.Breed, 0, len(rows))
	for _, row := range rows {
		var b types.Breed
		if b.ID, err = row.Int64("ID"); err != nil {
			return nil, err
		}
		if b.SpecieID, err = row.Int64("SPECIE_ID"); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func loadSizes(ctx context.Context, gw storage.Gateway) ([]int64, error) {
	return ids(ctx, gw, storage.Query{Table: types.TableSize, Columns: []string{"ID"}}, "ID")
}

func loadCustomers(ctx context.Context, gw storage.Gateway) ([]int64, error) {
	return ids(ctx, gw, storage.Query{Table: types.TableCustomer, Columns: []string{"ID"}}, "ID")
}

// loadUnlinkedCustomers returns customers without a CUSTOMER_ADDRESS row.
func loadUnlinkedCustomers(ctx context.Context, gw storage.Gateway) ([]int64, error) {
	return ids(ctx, gw, storage.Query{
		Table:   "CUSTOMER c",
		Columns: []string{"c.ID"},
		Join:    []string{"LEFT JOIN CUSTOMER_ADDRESS ca ON ca.CUSTOMER_ID = c.ID"},
		Where:   sq.Eq{"ca.CUSTOMER_ID": nil},
	}, "ID")
}

// loadUnlinkedResidences returns residential addresses nobody is linked to.
func loadUnlinkedResidences(ctx context.Context, gw storage.Gateway) ([]int64, error) {
	return ids(ctx, gw, storage.Query{
		Table:   "ADDRESS a",
		Columns: []string{"a.ID"},
		Join:    []string{"LEFT JOIN CUSTOMER_ADDRESS ca ON ca.ADDRESS_ID = a.ID"},
		Where: sq.And{
			sq.Eq{"a.ADDRESS_TYPE_ID": types.AddressTypeResidence},
			sq.Eq{"ca.ADDRESS_ID": nil},
		},
	}, "ID")
}

// loadCustomerAddresses returns links whose address lies in one of states.
func loadCustomerAddresses(ctx context.Context, gw storage.Gateway, states []int64) ([]types.CustomerAddressRef, error) {
	rows, err := gw.Search(ctx, storage.Query{
		Table:   "CUSTOMER_ADDRESS ca",
		Columns: []string{"ca.CUSTOMER_ID", "ca.ADDRESS_ID"},
		Join: []string{
			"JOIN ADDRESS a ON ca.ADDRESS_ID = a.ID",
			"JOIN CITY c ON a.CITY_ID = c.ID",
		},
		Where: sq.Eq{"c.STATE_ID": states},
	})
	if err != nil {
		return nil, err
	}

	out := make([]types.CustomerAddressRef, 0, len(rows))
	for _, row := range rows {
		var ca types.CustomerAddressRef
		if ca.CustomerID, err = row.Int64("CUSTOMER_ID"); err != nil {
			return nil, err
		}
		if ca.AddressID, err = row.Int64("ADDRESS_ID"); err != nil {
			return nil, err
		}
		out = append(out, ca)
	}
	return out, nil
}

// loadOrdersWithoutItems returns orders with their delivery city and state.
func loadOrdersWithoutItems(ctx context.Context, gw storage.Gateway) ([]types.OrderRef, error) {
	rows, err := gw.Search(ctx, storage.Query{
		Table:   "CUSTOMER_ORDER co",
		Columns: []string{"co.ID", "co.ORDER_DATE", "co.CUSTOMER_ID", "a.CITY_ID", "ct.STATE_ID"},
		Join: []string{
			"JOIN ADDRESS a ON a.ID = co.ADDRESS_ID",
			"JOIN CITY ct ON ct.ID = a.CITY_ID",
			"LEFT JOIN ORDER_ITEM oi ON oi.ORDER_ID = co.ID",
		},
		Where: sq.Eq{"oi.ORDER_ID": nil},
	})
	if err != nil {
		return nil, err
	}

	out := make([]types.OrderRef, 0, len(rows))
	for _, row := range rows {
		var o types.OrderRef
		if o.ID, err = row.Int64("ID"); err != nil {
			return nil, err
		}
		if o.OrderDate, err = row.Time("ORDER_DATE"); err != nil {
			return nil, err
		}
		if o.CustomerID, err = row.Int64("CUSTOMER_ID"); err != nil {
			return nil, err
		}
		if o.CityID, err = row.Int64("CITY_ID"); err != nil {
			return nil, err
		}
		if o.StateID, err = row.Int64("STATE_ID"); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func loadStores(ctx context.Context, gw storage.Gateway) ([]types.Store, error) {
	rows, err := gw.Search(ctx, storage.Query{
		Table:   "STORE s",
		Columns: []string{"s.ID", "a.CITY_ID", "c.STATE_ID"},
		Join: []string{
			"JOIN ADDRESS a ON a.ID = s.ADDRESS_ID",
			"JOIN CITY c ON c.ID = a.CITY_ID",
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]types.Store, 0, len(rows))
	for _, row := range rows {
		var s types.Store
		if s.ID, err = row.Int64("ID"); err != nil {
			return nil, err
		}
		if s.CityID, err = row.Int64("CITY_ID"); err != nil {
			return nil, err
		}
		if s.StateID, err = row.Int64("STATE_ID"); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func loadProducts(ctx context.Context, gw storage.Gateway) ([]types.Product, error) {
	rows, err := gw.Search(ctx, storage.Query{
		Table:   types.TableProduct,
		Columns: []string{"ID", "NAME", "DESCRIPTION", "SKU", "STORE_ID"},
	})
	if err != nil {
		return nil, err
	}

	out := make([]types.Product, 0, len(rows))
	for _, row := range rows {
		var p types.Product
		if p.ID, err = row.Int64("ID"); err != nil {
			return nil, err
		}
		if p.Name, err = row.String("NAME"); err != nil {
			return nil, err
		}
		if p.Description, err = row.String("DESCRIPTION"); err != nil {
			return nil, err
		}
		if p.SKU, err = row.String("SKU"); err != nil {
			return nil, err
		}
		if p.StoreID, err = row.Int64("STORE_ID"); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// loadSpeciesByCustomer maps a customer to the species names of their pets.
func loadSpeciesByCustomer(ctx context.Context, gw storage.Gateway) (map[int64][]string, error) {
	rows, err := gw.Search(ctx, storage.Query{
		Table:   "PET p",
		Columns: []string{"p.CUSTOMER_ID", "s.NAME"},
		Join: []string{
			"JOIN BREED b ON b.ID = p.BREED_ID",
			"JOIN SPECIE s ON s.ID = b.SPECIE_ID",
		},
	})
	if err != nil {
		return nil, err
	}

	out := make(map[int64][]string)
	for _, row := range rows {
		customerID, err := row.Int64("CUSTOMER_ID")
		if err != nil {
			return nil, err
		}
		name, err := row.String("NAME")
		if err != nil {
			return nil, err
		}
		out[customerID] = append(out[customerID], name)
	}
	return out, nil
}

// loadPets returns every linked customer's pets with the customer's city.
func loadPets(ctx context.Context, gw storage.Gateway) ([]types.PetRef, error) {
	rows, err := gw.Search(ctx, storage.Query{
		Table:   "PET p",
		Columns: []string{"p.ID", "b.SPECIE_ID", "ca.ADDRESS_ID", "a.CITY_ID"},
		Join: []string{
			"JOIN CUSTOMER_ADDRESS ca ON ca.CUSTOMER_ID = p.CUSTOMER_ID",
			"JOIN ADDRESS a ON a.ID = ca.ADDRESS_ID",
			"JOIN BREED b ON b.ID = p.BREED_ID",
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]types.PetRef, 0, len(rows))
	for _, row := range rows {
		var p types.PetRef
		if p.ID, err = row.Int64("ID"); err != nil {
			return nil, err
		}
		if p.SpecieID, err = row.Int64("SPECIE_ID"); err != nil {
			return nil, err
		}
		if p.AddressID, err = row.Int64("ADDRESS_ID"); err != nil {
			return nil, err
		}
		if p.CityID, err = row.Int64("CITY_ID"); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// loadServices returns one row per service and store offering it.
func loadServices(ctx context.Context, gw storage.Gateway) ([]types.Service, error) {
	rows, err := gw.Search(ctx, storage.Query{
		Table:   "SERVICE s",
		Columns: []string{"s.ID", "ss.STORE_ID", "a.CITY_ID", "st.ADDRESS_ID"},
		Join: []string{
			"JOIN STORE_SERVICE ss ON ss.SERVICE_ID = s.ID",
			"JOIN STORE st ON st.ID = ss.STORE_ID",
			"JOIN ADDRESS a ON a.ID = st.ADDRESS_ID",
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]types.Service, 0, len(rows))
	for _, row := range rows {
		var s types.Service
		if s.ID, err = row.Int64("ID"); err != nil {
			return nil, err
		}
		if s.StoreID, err = row.Int64("STORE_ID"); err != nil {
			return nil, err
		}
		if s.CityID, err = row.Int64("CITY_ID"); err != nil {
			return nil, err
		}
		if s.AddressID, err = row.Int64("ADDRESS_ID"); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
