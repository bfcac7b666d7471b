package types

import "time"

// Reference rows read back from storage before a stage generates.

type City struct {
	ID      int64
	StateID int64
}

type Breed struct {
	ID       int64
	SpecieID int64
}

type Store struct {
	ID      int64
	CityID  int64
	StateID int64
}

type Product struct {
	ID          int64
	Name        string
	Description string
	SKU         string
	StoreID     int64
}

// Service is one SERVICE offered at one store.
type Service struct {
	ID        int64
	StoreID   int64
	CityID    int64
	AddressID int64
}

type CustomerAddressRef struct {
	CustomerID int64
	AddressID  int64
}

type OrderRef struct {
	ID         int64
	OrderDate  time.Time
	CustomerID int64
	CityID     int64
	StateID    int64
}

type PetRef struct {
	ID        int64
	SpecieID  int64
	AddressID int64
	CityID    int64
}
