package list

import (
	"fmt"
	"slices"

	"squall/pkg/squall/core"
)

type ListNamespacesCmd struct {
}

func (cmd *ListNamespacesCmd) Run(suite core.SuiteContext) error {
	log := suite.Logger()
	log.Info("Listing all namespaces")

	// Create a map to store the namespaces
	var namespaceSet map[string]bool = make(map[string]bool)

	for _, test := range suite.Tests() {
		namespaceSet[test.Namespace] = true
	}

	// Sort the namespaces
	var namespaces []string
	for namespace := range namespaceSet {
		namespaces = append(namespaces, namespace)
	}

	slices.Sort(namespaces)

	for _, namespace := range namespaces {
		fmt.Fprintln(suite.Output(), namespace)
	}
	return nil
}
