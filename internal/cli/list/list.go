package list

type ListCmd struct {
	Tests      ListTestsCmd      `cmd:"" default:"1" help:"List tests in registration order (default)"`
	Namespaces ListNamespacesCmd `cmd:"" help:"List all namespaces"`
	Tree       ListTreeCmd       `cmd:"" help:"List tests grouped by namespace"`
}
