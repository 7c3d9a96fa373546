package namegen

// composeNames draws count first names. Non-positive counts draw nothing.
func composeNames(source Source, count int) []string {
	if count <= 0 {
		return []string{}
	}
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		names = append(names, source.FirstName())
	}
	return names
}

// composeAnimalName builds "<pet> the <breed>" for an already validated category token.
func composeAnimalName(source Source, category string) string {
	pet := source.PetName()
	breed := source.BreedFor(category)
	return pet + " the " + breed
}
