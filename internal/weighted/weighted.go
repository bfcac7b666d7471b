package weighted

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
)

var (
	ErrInvalidDistribution = errors.New("invalid distribution")
	ErrInvalidRange        = errors.New("invalid range")
)

// Source is the randomness a draw consumes. Float64 returns a value in
// [0, 1); Weighted has the signature of (*gofakeit.Faker).Weighted.
type Source interface {
	Float64() float64
	Weighted(options []any, weights []float32) (any, error)
}

// Distribution maps an outcome to a non-negative weight.
type Distribution map[string]float64

// Validate reports whether d can be sampled.
func (d Distribution) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("%w: no outcomes", ErrInvalidDistribution)
	}
	total := 0.0
	for key, w := range d {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%w: outcome %q has weight %v", ErrInvalidDistribution, key, w)
		}
		total += w
	}
	if total <= 0 {
		return fmt.Errorf("%w: weights sum to zero", ErrInvalidDistribution)
	}
	return nil
}

// Keys returns the outcomes in sorted order.
func (d Distribution) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Pick draws one outcome with probability proportional to its weight.
// Outcomes are offered in sorted order with zero weights left out, so a
// seeded source replays the same sequence of picks.
func Pick(src Source, d Distribution) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}

	options := make([]any, 0, len(d))
	weights := make([]float32, 0, len(d))
	for _, k := range d.Keys() {
		if d[k] == 0 {
			continue
		}
		options = append(options, k)
		weights = append(weights, float32(d[k]))
	}

	picked, err := src.Weighted(options, weights)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDistribution, err)
	}
	return picked.(string), nil
}

// PickInt draws an outcome and parses it as an integer id.
func PickInt(src Source, d Distribution) (int64, error) {
	key, err := Pick(src, d)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: outcome %q is not an integer", ErrInvalidDistribution, key)
	}
	return n, nil
}

// PickRange draws a "min-max" outcome and then a uniform value inside it.
func PickRange(src Source, d Distribution) (int, error) {
	key, err := Pick(src, d)
	if err != nil {
		return 0, err
	}
	r, err := ParseRange(key)
	if err != nil {
		return 0, err
	}
	return r.Draw(src), nil
}

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

var rangeDigits = regexp.MustCompile(`\d+`)

// ParseRange reads bounds from strings such as "1-5" or "0 - 2". A single
// number is a degenerate range.
func ParseRange(s string) (Range, error) {
	nums := rangeDigits.FindAllString(s, -1)
	if len(nums) == 0 || len(nums) > 2 {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}

	lo, err := strconv.Atoi(nums[0])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	hi := lo
	if len(nums) == 2 {
		if hi, err = strconv.Atoi(nums[1]); err != nil {
			return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
		}
	}
	if lo > hi {
		return Range{}, fmt.Errorf("%w: %q has min greater than max", ErrInvalidRange, s)
	}
	return Range{Min: lo, Max: hi}, nil
}

// Draw returns a uniform integer in [Min, Max].
func (r Range) Draw(src Source) int {
	span := r.Max - r.Min + 1
	n := int(src.Float64() * float64(span))
	if n >= span {
		n = span - 1
	}
	return r.Min + n
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}
