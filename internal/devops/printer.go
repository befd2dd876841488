package devops

import (
	"fmt"
	"io"
)

// Printer emits Azure DevOps logging commands to a writer. It also keeps the
// stack of open groups.
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

func (p *Printer) LogError(msg string, a ...any) {
	fmt.Fprintf(p.out, "##vso[task.logissue type=error]%s\n", fmt.Sprintf(msg, a...))
}

func (p *Printer) LogWarning(msg string, a ...any) {
	fmt.Fprintf(p.out, "##vso[task.logissue type=warning]%s\n", fmt.Sprintf(msg, a...))
}

// CompleteTask sets the result of the current pipeline task.
func (p *Printer) CompleteTask(result string) {
	fmt.Fprintf(p.out, "##vso[task.complete result=%s;]DONE\n", result)
}
