package display

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for render templates.
var templateFuncs = sprig.TxtFuncMap()

var (
	cacheMu sync.Mutex
	cache   = map[string]*template.Template{}
)

// Render expands a template string using the provided data. Parsed templates
// are cached by their source text; render blocks are static strings baked
// into the binary, so the cache is small and never invalidated.
func Render(tmplStr string, data any) (string, error) {
	cacheMu.Lock()
	tmpl, ok := cache[tmplStr]
	cacheMu.Unlock()

	if !ok {
		var err error
		tmpl, err = template.New("").Funcs(templateFuncs).Parse(tmplStr)
		if err != nil {
			return "", fmt.Errorf("parsing template: %w", err)
		}
		cacheMu.Lock()
		cache[tmplStr] = tmpl
		cacheMu.Unlock()
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}
