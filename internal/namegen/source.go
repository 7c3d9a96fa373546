package namegen

import (
	"fmt"
	"sort"
	"sync"

	"github.com/brianvoe/gofakeit/v7"
)

// Source supplies the random fragments pet names are built from.
type Source interface {
	FirstName() string
	PetName() string
	// BreedFor must only be called for categories SupportsCategory accepts.
	BreedFor(category string) string
	SupportsCategory(category string) bool
}

// reservedCategories share the faker animal namespace but are not animals.
var reservedCategories = map[string]struct{}{
	"petname": {},
	"type":    {},
}

type breedFunc func(f *gofakeit.Faker) string

func pick(list []string) breedFunc {
	return func(f *gofakeit.Faker) string {
		return f.RandomString(list)
	}
}

var breeds = map[string]breedFunc{
	"bear": pick([]string{
		"American Black Bear", "Asian Black Bear", "Brown Bear", "Giant Panda",
		"Polar Bear", "Sloth Bear", "Spectacled Bear", "Sun Bear",
	}),
	"bird": (*gofakeit.Faker).Bird,
	"cat":  (*gofakeit.Faker).Cat,
	"cetacean": pick([]string{
		"Blue Whale", "Bottlenose Dolphin", "Beluga Whale", "Fin Whale", "Humpback Whale",
		"Killer Whale", "Minke Whale", "Narwhal", "Sperm Whale", "Spinner Dolphin",
	}),
	"cow": pick([]string{
		"Aberdeen Angus", "Ayrshire", "Brahman", "Brown Swiss", "Charolais", "Guernsey",
		"Hereford", "Highland", "Holstein Friesian", "Jersey", "Limousin", "Simmental",
	}),
	"crocodilia": pick([]string{
		"American Alligator", "American Crocodile", "Black Caiman", "Chinese Alligator",
		"Gharial", "Nile Crocodile", "Saltwater Crocodile", "Spectacled Caiman",
	}),
	"dog": (*gofakeit.Faker).Dog,
	"fish": pick([]string{
		"Atlantic Salmon", "Betta", "Clownfish", "Goldfish", "Guppy", "Koi",
		"Neon Tetra", "Oscar", "Rainbow Trout", "Swordtail", "Yellowfin Tuna",
	}),
	"horse": pick([]string{
		"American Quarter Horse", "Appaloosa", "Arabian", "Clydesdale", "Friesian",
		"Haflinger", "Lipizzaner", "Mustang", "Percheron", "Shetland Pony", "Thoroughbred",
	}),
	"insect": pick([]string{
		"Bumblebee", "Dragonfly", "Firefly", "Grasshopper", "Honey Bee", "Ladybug",
		"Monarch Butterfly", "Praying Mantis", "Stag Beetle", "Walking Stick",
	}),
	"lion": pick([]string{
		"Asiatic Lion", "Barbary Lion", "Cape Lion", "Masai Lion", "Transvaal Lion",
		"West African Lion",
	}),
	"rabbit": pick([]string{
		"American Fuzzy Lop", "Dutch", "English Angora", "Flemish Giant", "Holland Lop",
		"Lionhead", "Mini Rex", "Netherland Dwarf", "New Zealand", "Rex",
	}),
	"rodent": pick([]string{
		"Chinchilla", "Degu", "Fancy Mouse", "Fancy Rat", "Gerbil", "Guinea Pig",
		"Roborovski Hamster", "Syrian Hamster", "Red Squirrel",
	}),
	"snake": pick([]string{
		"Ball Python", "Boa Constrictor", "Corn Snake", "Garter Snake", "Green Tree Python",
		"King Cobra", "Kingsnake", "Milk Snake", "Rosy Boa",
	}),
}

// Categories returns the supported category tokens in sorted order.
func Categories() []string {
	out := make([]string, 0, len(breeds))
	for token := range breeds {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

// FakerSource is a Source backed by a gofakeit faker.
type FakerSource struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// NewFakerSource returns a source seeded with seed. A zero seed draws a random crypto seed.
func NewFakerSource(seed uint64) *FakerSource {
	return &FakerSource{faker: gofakeit.New(seed)}
}

func (s *FakerSource) FirstName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faker.FirstName()
}

func (s *FakerSource) PetName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faker.PetName()
}

func (s *FakerSource) BreedFor(category string) string {
	fn, ok := breeds[category]
	if !ok || isReserved(category) {
		panic(fmt.Sprintf("namegen: no breed generator for category %q", category))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.faker)
}

func (s *FakerSource) SupportsCategory(category string) bool {
	if isReserved(category) {
		return false
	}
	_, ok := breeds[category]
	return ok
}

func isReserved(category string) bool {
	_, ok := reservedCategories[category]
	return ok
}

var _ Source = (*FakerSource)(nil)

// Categories lists the tokens this source supports.
func (s *FakerSource) Categories() []string {
	return Categories()
}
