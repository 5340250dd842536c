// Package naming defines how the components of a model instance are named.
package naming

import "strings"

// Named describes an object that has a name.
type Named interface {
	// Name returns the name of the object.
	Name() string
}

// NamedBase is a base implementation of Named.
type NamedBase struct {
	name string
}

func (b *NamedBase) Name() string {
	return b.name
}

// MakeNamedBase creates a new NamedBase.
func MakeNamedBase(name string) NamedBase {
	return NamedBase{name: name}
}

// NameMustBeValid panics if the name does not follow the naming convention:
// dot-separated elements, each non-empty, starting with a capital letter,
// and free of underscores, dashes, and quote characters.
func NameMustBeValid(name string) {
	for _, elem := range strings.Split(name, ".") {
		elemMustBeValid(name, elem)
	}
}

func elemMustBeValid(name, elem string) {
	if elem == "" {
		panic("name " + name + " is not valid: element must not be empty")
	}

	if strings.ContainsAny(elem, "_-\"'") {
		panic("name " + name +
			" is not valid: element must not contain _, -, or quotes")
	}

	if elem[0] < 'A' || elem[0] > 'Z' {
		panic("name " + name +
			" is not valid: element must start with a capital letter")
	}
}
