package devops

import (
	"fmt"

	"squall/pkg/squall/utils"
)

// Logging commands are parsed line by line by the agent, so messages are
// kept on one line and stripped of color codes.
func sanitize(msg string) string {
	msg = utils.StripANSI(msg)
	return newlineReplacer.Replace(msg)
}

func (p *Printer) LogError(msg string, a ...any) {
	fmt.Fprintf(p.out, "##vso[task.logissue type=error]%s\n", sanitize(fmt.Sprintf(msg, a...)))
}

func (p *Printer) LogErrorAt(file string, line int, msg string, a ...any) {
	fmt.Fprintf(p.out, "##vso[task.logissue type=error;sourcepath=%s;linenumber=%d]%s\n", file, line, sanitize(fmt.Sprintf(msg, a...)))
}

func (p *Printer) LogWarning(msg string, a ...any) {
	fmt.Fprintf(p.out, "##vso[task.logissue type=warning]%s\n", sanitize(fmt.Sprintf(msg, a...)))
}
