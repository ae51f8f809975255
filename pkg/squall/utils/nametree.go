package utils

import "strings"

// NameTree groups dotted test names by their components, e.g. "Math.Add" and
// "Math.Sub" end up under the same "Math" node. It marshals to nested JSON
// objects.
type NameTree map[string]interface{}

func NewNameTree() NameTree {
	return make(map[string]interface{})
}

func (t NameTree) Add(name string) {
	segments := strings.Split(name, ".")
	current := t

	for _, segment := range segments {
		if _, ok := current[segment]; !ok {
			current[segment] = make(map[string]interface{})
		}
		current = current[segment].(map[string]interface{})
	}
}
