package creational

import "patternlab/internal/domain"

// animalSounds is the closed product set of the factory example.
var animalSounds = map[string]struct {
	name  string
	sound string
}{
	"dog": {name: "Dog", sound: "Woof!"},
	"cat": {name: "Cat", sound: "Meow!"},
	"cow": {name: "Cow", sound: "Moo!"},
}

// FactoryMethod creates the animal named by each input argument through the
// factory and makes it speak.
func FactoryMethod(in domain.Input) domain.Trace {
	kinds := in.Args
	if in.IsZero() {
		kinds = []string{"dog", "cat"}
	}

	trace := domain.Trace{}
	for _, kind := range kinds {
		product, ok := animalSounds[kind]
		if !ok {
			trace = append(trace, "No factory for: "+kind)
			continue
		}
		trace = append(trace, product.name+" says: "+product.sound)
	}
	return trace
}
