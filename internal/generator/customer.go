package generator

import "github.com/Rana718/petseed/internal/types"

func (g *Generator) Customer() types.Customer {
	return types.Customer{
		Name:  g.f.Name(),
		Email: g.f.Email(),
		Phone: g.f.Phone(),
	}
}

func (g *Generator) Customers(n int) []types.Customer {
	customers := make([]types.Customer, 0, n)
	for range n {
		customers = append(customers, g.Customer())
	}
	return customers
}
