package list

import (
	"fmt"
	"text/tabwriter"

	"squall/pkg/squall/core"
)

type ListTestsCmd struct {
}

func (cmd *ListTestsCmd) Run(suite core.SuiteContext) error {
	log := suite.Logger()
	log.Info("Listing tests")

	tests := suite.Tests()

	w := tabwriter.NewWriter(suite.Output(), 0, 4, 2, ' ', 0)
	for _, test := range tests {
		kind := "test"
		if test.IsFixture() {
			kind = "fixture"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", test.FullName(), kind, test.Location())
	}

	log.Infof("Listed %d tests", len(tests))
	return w.Flush()
}
