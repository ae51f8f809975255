package list

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"squall/pkg/squall/core"
	"squall/pkg/squall/utils"
)

type ListTreeCmd struct {
	Json bool `short:"j" long:"json" help:"Output in JSON format"`
}

func (cmd *ListTreeCmd) Run(suite core.SuiteContext) error {
	log := suite.Logger()
	log.Info("Listing test tree")

	tree := utils.NewNameTree()
	for _, test := range suite.Tests() {
		tree.Add(test.FullName())
	}

	if cmd.Json {
		data, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal test tree to JSON: %w", err)
		}

		fmt.Fprintln(suite.Output(), string(data))
		return nil
	}

	printTree(suite.Output(), tree, 0)
	return nil
}

func printTree(out io.Writer, node map[string]interface{}, depth int) {
	keys := make([]string, 0, len(node))
	for key := range node {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), key)
		printTree(out, node[key].(map[string]interface{}), depth+1)
	}
}
