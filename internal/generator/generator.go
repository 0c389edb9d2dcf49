// Package generator produces synthetic raw user records.
package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"userclean/internal/models"
)

var (
	prefixes   = []string{"Mr.", "Mrs.", "Ms.", "Miss", "Dr."}
	suffixes   = []string{"Jr.", "Sr.", "II", "III", "IV", "MD", "PhD", "DDS"}
	firstNames = []string{
		"Ann", "Bob", "Carla", "Dmitri", "Elena", "Farah", "Gustavo", "Hana", "Ivan", "Jane",
		"Kwame", "Lucía", "Mateo", "Nadia", "Oscar", "Priya", "Quinn", "Renée", "Søren", "Tomás",
		"Uma", "Victor", "Wei", "Ximena", "Yusuf", "Zoë",
	}
	lastNames = []string{
		"Lee", "Smith", "García", "Müller", "Kowalski", "Nguyen", "O'Brien", "van der Berg",
		"Rossi", "Johnson", "Silva", "Novak", "Haddad", "Tanaka", "Schmidt", "Dubois",
		"Petrov", "Okafor", "Larsen", "Brown",
	}
	streetNames = []string{
		"Main", "Oak", "Pine", "Maple", "Cedar", "Elm", "Washington", "Lake", "Hill", "Park",
		"Sunset", "Ridge", "Mill", "Church", "River",
	}
	streetSuffixes = []string{"St", "Ave", "Blvd", "Rd", "Ln", "Dr", "Ct", "Way"}
	cities         = []string{
		"Springfield", "Shelbyville", "Riverside", "Franklin", "Greenville", "Fairview",
		"Madison", "Georgetown", "Salem", "Clinton", "Bristol", "Ashland", "Oxford", "Dover",
		"Arlington", "Jackson",
	}
	domains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "example.com", "icloud.com"}
)

// Generator produces RawRecords from a seeded random source.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator. A zero seed uses the current time.
func New(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate returns n synthetic records.
func (g *Generator) Generate(n int) []models.RawRecord {
	if n < 0 {
		n = 0
	}

	records := make([]models.RawRecord, n)
	for i := range records {
		records[i] = g.Record()
	}

	return records
}

// Record returns a single synthetic record.
func (g *Generator) Record() models.RawRecord {
	first := pick(g.rng, firstNames)
	last := pick(g.rng, lastNames)

	return models.RawRecord{
		Name:    models.Field(g.fullName(first, last)),
		Email:   models.Field(g.email(first, last)),
		Address: models.Field(g.streetAddress() + ", " + pick(g.rng, cities)),
	}
}

func (g *Generator) fullName(first, last string) string {
	name := first + " " + last

	switch n := g.rng.IntN(10); {
	case n == 0:
		name = pick(g.rng, prefixes) + " " + name
	case n == 1:
		name = name + " " + pick(g.rng, suffixes)
	}

	return name
}

func (g *Generator) email(first, last string) string {
	local := strings.NewReplacer(" ", "", "'", "").Replace(first + "." + last)

	switch g.rng.IntN(3) {
	case 0:
		local = strings.NewReplacer(" ", "", "'", "").Replace(first + "_" + last)
	case 1:
		local = fmt.Sprintf("%s%d", local, g.rng.IntN(100))
	}

	return local + "@" + pick(g.rng, domains)
}

func (g *Generator) streetAddress() string {
	return fmt.Sprintf("%d %s %s", 1+g.rng.IntN(9999), pick(g.rng, streetNames), pick(g.rng, streetSuffixes))
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}
