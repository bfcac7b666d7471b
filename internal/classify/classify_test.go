package classify

import (
	"testing"
	"time"

	"github.com/Rana718/petseed/internal/types"
)

func TestSpecies(t *testing.T) {
	tests := []struct {
		product types.Product
		want    string
	}{
		{types.Product{Name: "Ração para CACHORRO adulto"}, "CACHORRO"},
		{types.Product{Name: "Cama Térmica"}, Unknown},
		{types.Product{Name: "Arranhador", Description: "Brinquedo para GATOS"}, "GATO"},
		{types.Product{Name: "Aquário", SKU: "PEIXE-001"}, "PEIXE"},
		{types.Product{Name: "Gaiola", Description: "Ideal para HAMSTER"}, "HAMSTER"},
		{types.Product{Name: "Feno para COELHO"}, "COELHO"},
		{types.Product{Name: "Alpiste BIRD mix"}, "PASSARO"},
		// case-sensitive: lower-case species names never match
		{types.Product{Name: "ração para cachorro"}, Unknown},
		// first keyword in table order wins
		{types.Product{Name: "Kit DOG e CAT"}, "CACHORRO"},
	}

	for _, tt := range tests {
		if got := Species(tt.product); got != tt.want {
			t.Errorf("Species(%q) = %q, want %q", tt.product.Name, got, tt.want)
		}
	}
}

func TestForSpecies(t *testing.T) {
	products := []types.Product{
		{ID: 1, Name: "Ração CACHORRO"},
		{ID: 2, Name: "Areia para GATO"},
		{ID: 3, Name: "Cama Térmica"},
		{ID: 4, Name: "Petisco DOG"},
	}

	got := ForSpecies(products, []string{"Cachorro"})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 4 {
		t.Errorf("expected products 1 and 4 for Cachorro, got %+v", got)
	}

	if got := ForSpecies(products, nil); len(got) != 0 {
		t.Errorf("expected nothing for a customer without pets, got %+v", got)
	}

	if got := ForSpecies(products, []string{"Coelho"}); len(got) != 0 {
		t.Errorf("expected nothing for Coelho, got %+v", got)
	}
}

func TestTemperature(t *testing.T) {
	cama := types.Product{Name: "Cama Térmica"}
	cold := []string{"CAMA", "COBERTOR", "ROUPA"}
	warm := []string{"PISCINA", "TAPETE GELADO"}

	if !Temperature(cama, cold) {
		t.Error("expected Cama Térmica to be a cold product")
	}
	if Temperature(cama, warm) {
		t.Error("expected Cama Térmica not to be a warm product")
	}
	if Temperature(cama, nil) {
		t.Error("expected no match against an empty keyword list")
	}

	ts := TemperatureSet{Warm: warm, Cold: cold}
	if !ts.Matches(cama, Cold) || ts.Matches(cama, Warm) || !ts.Matches(cama, Neutral) {
		t.Error("unexpected TemperatureSet.Matches result for Cama Térmica")
	}
}

func TestSeasonOf(t *testing.T) {
	warm := Window{Start: MonthDay{time.December, 1}, End: MonthDay{time.March, 31}}
	cold := Window{Start: MonthDay{time.June, 1}, End: MonthDay{time.August, 31}}

	tests := []struct {
		date string
		want Season
	}{
		{"2023-01-15", Warm},
		{"2023-12-01", Warm},
		{"2023-03-31", Warm},
		{"2023-07-10", Cold},
		{"2023-06-01", Cold},
		{"2023-05-01", Neutral},
		{"2023-10-20", Neutral},
	}

	for _, tt := range tests {
		d, _ := time.Parse("2006-01-02", tt.date)
		if got := SeasonOf(d, warm, cold); got != tt.want {
			t.Errorf("SeasonOf(%s) = %s, want %s", tt.date, got, tt.want)
		}
	}
}

func TestParseMonthDay(t *testing.T) {
	md, err := ParseMonthDay("12-01")
	if err != nil {
		t.Fatalf("ParseMonthDay returned error: %v", err)
	}
	if md.Month != time.December || md.Day != 1 {
		t.Errorf("unexpected month-day %+v", md)
	}

	if _, err := ParseMonthDay("13-40"); err == nil {
		t.Error("expected error for invalid month-day")
	}
}

func TestEligibilityServices(t *testing.T) {
	const vet = 4
	table := EligibilityTable{
		1: All(),
		2: All(),
		4: Subset(vet),
		5: Subset(vet),
		6: Subset(vet),
	}
	services := []types.Service{{ID: 1}, {ID: 2}, {ID: vet}, {ID: 5}}

	if got := table.Services(1, services); len(got) != len(services) {
		t.Errorf("dogs should see every service, got %d", len(got))
	}
	if got := table.Services(2, services); len(got) != len(services) {
		t.Errorf("cats should see every service, got %d", len(got))
	}
	for _, species := range []int64{4, 5, 6} {
		got := table.Services(species, services)
		if len(got) != 1 || got[0].ID != vet {
			t.Errorf("species %d should only see the vet service, got %+v", species, got)
		}
	}
	if got := table.Services(3, services); len(got) != 0 {
		t.Errorf("fish should see no services, got %+v", got)
	}
	if got := table.Services(4, []types.Service{{ID: 1}}); len(got) != 0 {
		t.Errorf("expected empty subset when the vet service is absent, got %+v", got)
	}
}

func TestEligibilityVariant(t *testing.T) {
	if !All().IsAll() || !All().Allows(123) {
		t.Error("All() should allow any service")
	}
	s := Subset(7, 8)
	if s.IsAll() || !s.Allows(7) || s.Allows(9) {
		t.Error("Subset(7, 8) allows the wrong services")
	}
}
