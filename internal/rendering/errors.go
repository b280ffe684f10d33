// Package rendering turns a week and a language profile into a front-matter stub document.
package rendering

import "fmt"

// TemplateError reports a profile or front-matter template that failed to
// parse or execute. Template names look like "en/title" or "front-matter".
type TemplateError struct {
	Template string
	Stage    string // "parse" or "execute"
	Cause    error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: %s failed: %v", e.Template, e.Stage, e.Cause)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
