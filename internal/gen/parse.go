package gen

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
)

const (
	nodeComment              = "comment"
	nodeFunctionDeclaration  = "function_declaration"
	nodePackageClause        = "package_clause"
	nodePackageIdentifier    = "package_identifier"
	nodeParameterDeclaration = "parameter_declaration"
	nodeIdentifier           = "identifier"
)

// SourceFile is the result of scanning one Go file.
type SourceFile struct {
	Path        string
	Package     string
	Annotations []Annotation
}

// ParseFile scans src for annotated functions. Parsers are not shared, so
// ParseFile may be called from several goroutines.
func ParseFile(ctx context.Context, path string, src []byte) (*SourceFile, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(golang.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	file := &SourceFile{Path: path}

	attached := make(map[uint32]bool)
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		switch node.Type() {
		case nodePackageClause:
			file.Package = packageName(node, src)
		case nodeFunctionDeclaration:
			annotations, err := functionAnnotations(node, src, path, attached)
			if err != nil {
				return nil, err
			}
			file.Annotations = append(file.Annotations, annotations...)
		}
	}

	// Directives that did not precede a function declaration.
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		if node.Type() != nodeComment || attached[node.StartByte()] {
			continue
		}
		if _, _, ok, _ := parseDirective(node.Content(src)); ok {
			return nil, fmt.Errorf("%s:%d: squall directive is not attached to a function declaration", path, line(node))
		}
	}

	if file.Package == "" {
		return nil, fmt.Errorf("%s: missing package clause", path)
	}

	return file, nil
}

func packageName(clause *sitter.Node, src []byte) string {
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		child := clause.NamedChild(i)
		if child.Type() == nodePackageIdentifier {
			return child.Content(src)
		}
	}
	return ""
}

// Walks the comment block directly above fn.
func functionAnnotations(fn *sitter.Node, src []byte, path string, attached map[uint32]bool) ([]Annotation, error) {
	var annotations []Annotation

	name := ""
	if nameNode := fn.ChildByFieldName("name"); nameNode != nil {
		name = nameNode.Content(src)
	}

	expectedRow := fn.StartPoint().Row
	for node := fn.PrevNamedSibling(); node != nil && node.Type() == nodeComment; node = node.PrevNamedSibling() {
		if node.EndPoint().Row+1 != expectedRow {
			break
		}
		expectedRow = node.StartPoint().Row

		kind, args, ok, err := parseDirective(node.Content(src))
		if !ok {
			continue
		}
		attached[node.StartByte()] = true
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line(node), err)
		}

		if got := parameterCount(fn); got != kind.arity() {
			return nil, fmt.Errorf("%s:%d: function %s annotated with squall:%s must take %d parameters, takes %d",
				path, line(fn), name, kind, kind.arity(), got)
		}

		annotations = append(annotations, Annotation{
			Kind:   kind,
			Target: args[0],
			Name:   args[1],
			Func:   name,
			File:   path,
			Line:   line(fn),
		})
	}

	// Comments were visited bottom-up.
	for i, j := 0, len(annotations)-1; i < j; i, j = i+1, j-1 {
		annotations[i], annotations[j] = annotations[j], annotations[i]
	}

	return annotations, nil
}

func parameterCount(fn *sitter.Node) int {
	params := fn.ChildByFieldName("parameters")
	if params == nil {
		return 0
	}

	count := 0
	for i := 0; i < int(params.NamedChildCount()); i++ {
		decl := params.NamedChild(i)
		if decl.Type() != nodeParameterDeclaration {
			continue
		}

		names := 0
		for j := 0; j < int(decl.NamedChildCount()); j++ {
			if decl.NamedChild(j).Type() == nodeIdentifier {
				names++
			}
		}
		count += max(names, 1)
	}
	return count
}

func line(node *sitter.Node) int {
	return int(node.StartPoint().Row) + 1
}

func isGenerated(src []byte) bool {
	first, _, _ := strings.Cut(string(src), "\n")
	return strings.HasPrefix(first, "// Code generated") && strings.HasSuffix(strings.TrimSpace(first), "DO NOT EDIT.")
}
