package devops

import (
	"fmt"
	"io"
)

// Printer emits Azure DevOps logging commands. Groups function as a stack,
// so it keeps track of the open groups.
type Printer struct {
	out    io.Writer
	groups []*Group
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:    out,
		groups: make([]*Group, 0),
	}
}

// Opens a new group and adds it to the stack.
func (p *Printer) OpenGroup(name string) *Group {
	newGroup := &Group{printer: p}
	p.groups = append(p.groups, newGroup)
	fmt.Fprintf(p.out, "##[group]%s\n", name)
	return newGroup
}

func (p *Printer) logEndGroup() {
	fmt.Fprintln(p.out, "##[endgroup]")
}

type Group struct {
	printer *Printer
}

// Closes the group and removes all groups above it from the stack.
// This is done by popping the stack until we reach the group we want to close.
func (g *Group) Close() {
	p := g.printer
	var index int = len(p.groups) - 1
	for index >= 0 {
		// Pop the last group from the stack
		last := p.groups[index]
		p.groups = p.groups[:index]
		p.logEndGroup()
		if last == g {
			break
		}
		index--
	}
}
