package generator

import (
	"fmt"

	"github.com/Rana718/petseed/internal/types"
	"github.com/Rana718/petseed/internal/weighted"
)

const maxPetAgeYears = 20

// BreedPool groups breeds by species id.
type BreedPool map[int64][]types.Breed

func NewBreedPool(breeds []types.Breed) BreedPool {
	pool := make(BreedPool)
	for _, b := range breeds {
		pool[b.SpecieID] = append(pool[b.SpecieID], b)
	}
	return pool
}

// PetsFor draws how many pets a customer owns and builds each one. A species
// without breeds yields no pet.
func (g *Generator) PetsFor(customerID int64, breeds BreedPool, sizes []int64) ([]types.Pet, error) {
	if len(sizes) == 0 {
		return nil, ErrNoSizes
	}

	n, err := weighted.PickInt(g.f, g.cfg.Probabilities.QuantityPets)
	if err != nil {
		return nil, fmt.Errorf("failed to draw pet count: %w", err)
	}

	now := g.now()
	oldest := startOfDay(now.AddDate(-maxPetAgeYears, 0, 0))

	var pets []types.Pet
	for range n {
		specieID, err := weighted.PickInt(g.f, g.cfg.Probabilities.Specie)
		if err != nil {
			return nil, fmt.Errorf("failed to draw species: %w", err)
		}
		candidates := breeds[specieID]
		if len(candidates) == 0 {
			continue
		}

		pets = append(pets, types.Pet{
			Name:        g.f.PetName(),
			DateOfBirth: startOfDay(g.f.DateBetween(oldest, now)),
			BreedID:     pickOne(g.f, candidates).ID,
			SizeID:      pickOne(g.f, sizes),
			CustomerID:  customerID,
		})
	}
	return pets, nil
}
