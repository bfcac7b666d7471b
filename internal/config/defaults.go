package config

import "github.com/Rana718/petseed/internal/weighted"

// defaults are the stock distributions. State ids follow the alphabetical UF
// numbering (25 = SP, 19 = RJ, 13 = MG, 16 = PR); species ids 1..6 are dog,
// cat, fish, bird, hamster, rabbit.
func defaults() Config {
	return Config{
		Database: Database{
			Provider:  "mysql",
			URLEnv:    "DATABASE_URL",
			BatchSize: 500,
		},
		Generation: Generation{
			Customers: 100,
		},
		Campaign: Campaign{
			Start: "2023-01-01",
			End:   "2023-12-31",
		},
		Schedule: Schedule{
			ServiceHours: Hours{Start: 9, End: 19},
			MinLeadDays:  1,
			MaxLeadDays:  30,
		},
		Seasons: Seasons{
			Warm:         Period{Start: "12-01", End: "03-31"},
			Cold:         Period{Start: "06-01", End: "08-31"},
			WarmKeywords: []string{"PISCINA", "TAPETE GELADO", "BEBEDOURO", "PROTETOR SOLAR", "REFRESCANTE", "VERÃO"},
			ColdKeywords: []string{"CAMA", "COBERTOR", "MANTA", "ROUPA", "AQUECEDOR", "TÉRMIC", "INVERNO"},
		},
		Services: Services{
			VetServiceID:   4,
			AllSpecies:     []int64{1, 2},
			VetOnlySpecies: []int64{4, 5, 6},
		},
		Probabilities: Probabilities{
			Specie:       weighted.Distribution{"1": 0.45, "2": 0.35, "3": 0.05, "4": 0.07, "5": 0.04, "6": 0.04},
			QuantityPets: weighted.Distribution{"0": 0.25, "1": 0.45, "2": 0.2, "3": 0.1},
			State:        weighted.Distribution{"25": 0.55, "19": 0.1, "13": 0.1, "16": 0.05, OtherState: 0.2},
			CityByState: map[string]weighted.Distribution{
				"25": {"3830": 0.6, "3548": 0.15, "3549": 0.1, "3566": 0.15},
			},
			ActiveCustomerOrder:   weighted.Distribution{"active": 0.7, "inactive": 0.3},
			StatusOrder:           weighted.Distribution{"1": 0.1, "2": 0.15, "3": 0.7, "4": 0.05},
			QuantityOrderItem:     weighted.Distribution{"1-2": 0.6, "3-5": 0.3, "6-8": 0.1},
			QuantityOrderItems:    weighted.Distribution{"1": 0.6, "2": 0.25, "3": 0.1, "4": 0.05},
			ActiveCustomerRequest: weighted.Distribution{"active": 0.6, "inactive": 0.4},
			StatusRequest:         weighted.Distribution{"1": 0.1, "2": 0.2, "3": 0.65, "4": 0.05},
			ProductWarm:           weighted.Distribution{ProductWarm: 0.5, ProductCold: 0.05, ProductNeutral: 0.45},
			ProductCold:           weighted.Distribution{ProductWarm: 0.05, ProductCold: 0.5, ProductNeutral: 0.45},
		},
		Ranges: Ranges{
			OrdersPerCustomer:   map[string]string{"active": "3-10", "inactive": "0-2"},
			RequestsPerCustomer: map[string]string{"active": "2-6", "inactive": "0-1"},
		},
	}
}
