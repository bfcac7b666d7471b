package types

import "time"

// Address types as stored in ADDRESS.ADDRESS_TYPE_ID.
const (
	AddressTypeResidence int64 = 1
	AddressTypeStore     int64 = 2
)

// Table names as created by the store schema.
const (
	TableState           = "STATE"
	TableCity            = "CITY"
	TableSpecie          = "SPECIE"
	TableBreed           = "BREED"
	TableSize            = "SIZE"
	TableStore           = "STORE"
	TableProduct         = "PRODUCT"
	TableService         = "SERVICE"
	TableStoreService    = "STORE_SERVICE"
	TableCustomer        = "CUSTOMER"
	TableAddress         = "ADDRESS"
	TablePet             = "PET"
	TableCustomerAddress = "CUSTOMER_ADDRESS"
	TableOrder           = "CUSTOMER_ORDER"
	TableOrderItem       = "ORDER_ITEM"
	TableRequest         = "REQUEST"
)

// Generated rows. Tuple returns the values in the order of the matching
// *Columns slice.

var CustomerColumns = []string{"NAME", "EMAIL", "PHONE"}

type Customer struct {
	Name  string `json:"name" db:"NAME"`
	Email string `json:"email" db:"EMAIL"`
	Phone string `json:"phone" db:"PHONE"`
}

func (c Customer) Tuple() []any {
	return []any{c.Name, c.Email, c.Phone}
}

var AddressColumns = []string{"POSTAL_CODE", "STREET", "NUMBER", "COMPLEMENT", "NEIGHBORHOOD", "CITY_ID", "ADDRESS_TYPE_ID"}

type Address struct {
	PostalCode    string  `json:"postal_code" db:"POSTAL_CODE"`
	Street        string  `json:"street" db:"STREET"`
	Number        string  `json:"number" db:"NUMBER"`
	Complement    *string `json:"complement" db:"COMPLEMENT"`
	Neighborhood  string  `json:"neighborhood" db:"NEIGHBORHOOD"`
	CityID        int64   `json:"city_id" db:"CITY_ID"`
	AddressTypeID int64   `json:"address_type_id" db:"ADDRESS_TYPE_ID"`
}

func (a Address) Tuple() []any {
	var complement any
	if a.Complement != nil {
		complement = *a.Complement
	}
	return []any{a.PostalCode, a.Street, a.Number, complement, a.Neighborhood, a.CityID, a.AddressTypeID}
}

var PetColumns = []string{"NAME", "DATE_BIRTH", "BREED_ID", "SIZE_ID", "CUSTOMER_ID"}

type Pet struct {
	Name        string    `json:"name" db:"NAME"`
	DateOfBirth time.Time `json:"date_birth" db:"DATE_BIRTH"`
	BreedID     int64     `json:"breed_id" db:"BREED_ID"`
	SizeID      int64     `json:"size_id" db:"SIZE_ID"`
	CustomerID  int64     `json:"customer_id" db:"CUSTOMER_ID"`
}

func (p Pet) Tuple() []any {
	return []any{p.Name, p.DateOfBirth.Format(DateLayout), p.BreedID, p.SizeID, p.CustomerID}
}

var CustomerAddressColumns = []string{"CUSTOMER_ID", "ADDRESS_ID"}

type CustomerAddress struct {
	CustomerID int64 `json:"customer_id" db:"CUSTOMER_ID"`
	AddressID  int64 `json:"address_id" db:"ADDRESS_ID"`
}

func (ca CustomerAddress) Tuple() []any {
	return []any{ca.CustomerID, ca.AddressID}
}

var OrderColumns = []string{"CUSTOMER_ID", "ORDER_DATE", "STATUS_ID", "ADDRESS_ID"}

type Order struct {
	CustomerID int64     `json:"customer_id" db:"CUSTOMER_ID"`
	OrderDate  time.Time `json:"order_date" db:"ORDER_DATE"`
	StatusID   int64     `json:"status_id" db:"STATUS_ID"`
	AddressID  int64     `json:"address_id" db:"ADDRESS_ID"`
}

func (o Order) Tuple() []any {
	return []any{o.CustomerID, o.OrderDate.Format(DateTimeLayout), o.StatusID, o.AddressID}
}

var OrderItemColumns = []string{"ORDER_ID", "PRODUCT_ID", "QUANTITY"}

type OrderItem struct {
	OrderID   int64 `json:"order_id" db:"ORDER_ID"`
	ProductID int64 `json:"product_id" db:"PRODUCT_ID"`
	Quantity  int   `json:"quantity" db:"QUANTITY"`
}

func (oi OrderItem) Tuple() []any {
	return []any{oi.OrderID, oi.ProductID, oi.Quantity}
}

var RequestColumns = []string{"SERVICE_ID", "PET_ID", "REQUEST_DATE", "STATUS_ID", "SERVICE_DATE", "ADDRESS_ID"}

type Request struct {
	ServiceID   int64     `json:"service_id" db:"SERVICE_ID"`
	PetID       int64     `json:"pet_id" db:"PET_ID"`
	RequestDate time.Time `json:"request_date" db:"REQUEST_DATE"`
	StatusID    int64     `json:"status_id" db:"STATUS_ID"`
	ServiceDate time.Time `json:"service_date" db:"SERVICE_DATE"`
	AddressID   int64     `json:"address_id" db:"ADDRESS_ID"`
}

func (r Request) Tuple() []any {
	return []any{r.ServiceID, r.PetID, r.RequestDate.Format(DateTimeLayout), r.StatusID, r.ServiceDate.Format(DateTimeLayout), r.AddressID}
}

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)
