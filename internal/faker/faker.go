package faker

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Faker produces single pt_BR field values. It is not safe for concurrent use.
type Faker struct {
	gf      *gofakeit.Faker
	counter int
}

// New returns a Faker seeded with seed. A zero seed picks a random one.
func New(seed uint64) *Faker {
	return &Faker{gf: gofakeit.New(seed)}
}

// Float64 returns a value in [0, 1).
func (f *Faker) Float64() float64 {
	return f.gf.Float64()
}

// Intn returns a value in [0, n). n must be positive.
func (f *Faker) Intn(n int) int {
	return f.gf.Number(0, n-1)
}

// Between returns a value in [min, max].
func (f *Faker) Between(min, max int) int {
	return f.gf.Number(min, max)
}

// ShuffleIDs permutes ids in place.
func (f *Faker) ShuffleIDs(ids []int64) {
	f.gf.ShuffleAnySlice(ids)
}

// Weighted draws one of options with probability proportional to weights.
func (f *Faker) Weighted(options []any, weights []float32) (any, error) {
	return f.gf.Weighted(options, weights)
}

// DateBetween returns a uniform instant in [start, end], keeping start's location.
func (f *Faker) DateBetween(start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	span := end.Sub(start)
	return start.Add(time.Duration(f.gf.Float64() * float64(span+time.Second))).Truncate(time.Second)
}

func (f *Faker) pick(pool []string) string {
	return f.gf.RandomString(pool)
}

func (f *Faker) FirstName() string {
	if f.gf.Bool() {
		return f.pick(maleFirstNames)
	}
	return f.pick(femaleFirstNames)
}

func (f *Faker) LastName() string {
	return f.pick(lastNames)
}

// Name returns a full name, occasionally with a courtesy prefix or a second
// surname.
func (f *Faker) Name() string {
	parts := make([]string, 0, 4)
	if f.gf.Number(1, 10) == 1 {
		parts = append(parts, f.pick(namePrefixes))
	}
	parts = append(parts, f.FirstName(), f.LastName())
	if f.gf.Number(1, 3) == 1 {
		parts = append(parts, f.LastName())
	}
	return strings.Join(parts, " ")
}

func (f *Faker) PetName() string {
	if f.gf.Number(1, 4) == 1 {
		return f.FirstName()
	}
	return f.pick(petNames)
}

// Email builds an address from a fresh name; the local part is folded to ASCII.
func (f *Faker) Email() string {
	f.counter++
	local := asciiFold(f.FirstName()) + "." + asciiFold(f.LastName())
	switch f.gf.Number(1, 3) {
	case 1:
		local = fmt.Sprintf("%s%d", local, f.gf.Number(1, 99))
	case 2:
		local = fmt.Sprintf("%s%d", local, f.counter)
	}
	return local + "@" + f.pick(emailDomains)
}

// Phone returns an 11-digit DDD + number string.
func (f *Faker) Phone() string {
	raw := f.gf.Numerify(f.pick(phoneFormats))
	return NormalizePhone(raw, f.syntheticPhone)
}

func (f *Faker) syntheticPhone() string {
	return fmt.Sprintf("%02d%09d", f.gf.Number(11, 99), f.gf.Number(100000000, 999999999))
}

// PostalCode returns an 8-digit CEP without separator.
func (f *Faker) PostalCode() string {
	return f.gf.Numerify("########")
}

func (f *Faker) Street() string {
	if f.gf.Bool() {
		return f.pick(streetPrefixes) + " " + f.pick(streetSuffixes)
	}
	return f.pick(streetPrefixes) + " " + f.FirstName() + " " + f.LastName()
}

// BuildingNumber returns one to four digits without leading zeros.
func (f *Faker) BuildingNumber() string {
	switch f.gf.Number(1, 4) {
	case 1:
		return fmt.Sprintf("%d", f.gf.Number(1, 9))
	case 2:
		return fmt.Sprintf("%d", f.gf.Number(10, 99))
	case 3:
		return fmt.Sprintf("%d", f.gf.Number(100, 999))
	default:
		return fmt.Sprintf("%d", f.gf.Number(1000, 9999))
	}
}

// Complement is nil or one of "Apto N", "Bloco N", "Casa N", "Conjunto N",
// each with probability 1/5.
func (f *Faker) Complement() *string {
	n := f.gf.Number(0, len(complementLabels))
	if n == 0 {
		return nil
	}
	c := complementLabels[n-1] + " " + f.BuildingNumber()
	return &c
}

func (f *Faker) Neighborhood() string {
	return f.pick(neighborhoods)
}

func asciiFold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
