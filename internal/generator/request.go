package generator

import (
	"fmt"
	"time"

	"github.com/Rana718/petseed/internal/types"
	"github.com/Rana718/petseed/internal/weighted"
)

// RequestsFor books services for a pet at stores in its city, or anywhere
// when its city has none. Species that may not take any offered service get
// no requests.
func (g *Generator) RequestsFor(pet types.PetRef, services []types.Service) ([]types.Request, error) {
	audience, err := weighted.Pick(g.f, g.cfg.Probabilities.ActiveCustomerRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to draw request audience: %w", err)
	}
	r, err := g.cfg.Ranges.Requests(audience)
	if err != nil {
		return nil, err
	}
	n := r.Draw(g.f)

	local := matching(services, func(s types.Service) bool { return s.CityID == pet.CityID })
	if len(local) == 0 {
		local = services
	}
	allowed := g.cfg.Eligibility().Services(pet.SpecieID, local)
	if len(allowed) == 0 {
		return nil, nil
	}

	start, end := g.cfg.CampaignWindow()
	requests := make([]types.Request, 0, n)
	for range n {
		service := pickOne(g.f, allowed)
		status, err := weighted.PickInt(g.f, g.cfg.Probabilities.StatusRequest)
		if err != nil {
			return nil, fmt.Errorf("failed to draw request status: %w", err)
		}

		requested := g.f.DateBetween(start, end)
		requests = append(requests, types.Request{
			ServiceID:   service.ID,
			PetID:       pet.ID,
			RequestDate: requested,
			StatusID:    status,
			ServiceDate: g.serviceDate(requested),
			AddressID:   service.AddressID,
		})
	}
	return requests, nil
}

// serviceDate schedules the service a whole number of days after the request
// day, inside business hours when they are configured.
func (g *Generator) serviceDate(requested time.Time) time.Time {
	sched := g.cfg.Schedule
	lead := g.f.Between(sched.MinLeadDays, sched.MaxLeadDays)
	day := startOfDay(requested).AddDate(0, 0, lead)

	hours := sched.ServiceHours
	if !hours.Enabled() {
		return day
	}
	offset := g.f.Between(hours.Start*3600, hours.End*3600-1)
	return day.Add(time.Duration(offset) * time.Second)
}
