package classify

import "github.com/Rana718/petseed/internal/types"

// Eligibility is either every service or a fixed subset of service ids.
type Eligibility struct {
	all    bool
	subset map[int64]struct{}
}

func All() Eligibility {
	return Eligibility{all: true}
}

func Subset(ids ...int64) Eligibility {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return Eligibility{subset: set}
}

func (e Eligibility) IsAll() bool { return e.all }

func (e Eligibility) Allows(serviceID int64) bool {
	if e.all {
		return true
	}
	_, ok := e.subset[serviceID]
	return ok
}

// EligibilityTable maps a species id to the services it may request.
// Species missing from the table may request nothing.
type EligibilityTable map[int64]Eligibility

// Services filters services down to those speciesID is eligible for. An
// empty result is not an error.
func (t EligibilityTable) Services(speciesID int64, services []types.Service) []types.Service {
	e, ok := t[speciesID]
	if !ok {
		return nil
	}
	if e.IsAll() {
		return services
	}

	var allowed []types.Service
	for _, s := range services {
		if e.Allows(s.ID) {
			allowed = append(allowed, s)
		}
	}
	return allowed
}
