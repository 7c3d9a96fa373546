package namegen

import (
	"context"
	"errors"

	"petnames/internal/domain"
)

type fakeSource struct {
	firstNames []string
	petNames   []string
	breed      string
	supported  map[string]bool
	panicOn    string

	firstNameCalls int
	petNameCalls   int
	breedCalls     []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		firstNames: []string{"Max", "Bella", "Charlie", "Luna", "Cooper"},
		petNames:   []string{"Coco"},
		breed:      "Golden Retriever",
		supported:  map[string]bool{"dog": true, "cat": true, "bird": true},
	}
}

func (f *fakeSource) FirstName() string {
	if f.panicOn == "first" {
		panic("first name generator exploded")
	}
	name := f.firstNames[f.firstNameCalls%len(f.firstNames)]
	f.firstNameCalls++
	return name
}

func (f *fakeSource) PetName() string {
	if f.panicOn == "pet" {
		panic("pet name generator exploded")
	}
	name := f.petNames[f.petNameCalls%len(f.petNames)]
	f.petNameCalls++
	return name
}

func (f *fakeSource) BreedFor(category string) string {
	f.breedCalls = append(f.breedCalls, category)
	if f.panicOn == "breed" {
		panic("breed generator exploded")
	}
	return f.breed
}

func (f *fakeSource) SupportsCategory(category string) bool {
	return f.supported[category]
}

type recorderStub struct {
	batches [][]domain.GeneratedName
	err     error
}

func (r *recorderStub) SaveAll(_ context.Context, names []domain.GeneratedName) error {
	if r.err != nil {
		return r.err
	}
	r.batches = append(r.batches, names)
	return nil
}

var errWriteFailed = errors.New("insert failed")
