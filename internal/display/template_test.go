package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestRender(t *testing.T) {
	tests := map[string]struct {
		tmpl   string
		data   any
		exp    string
		expErr bool
	}{
		"static text": {
			tmpl: "== VOID STATION ==",
			exp:  "== VOID STATION ==",
		},
		"field expansion": {
			tmpl: "HP {{.HP}}/{{.Max}}",
			data: struct{ HP, Max int }{11, 18},
			exp:  "HP 11/18",
		},
		"sprig function": {
			tmpl: "{{ .Name | upper }}",
			data: struct{ Name string }{"null warden"},
			exp:  "NULL WARDEN",
		},
		"parse error": {
			tmpl:   "{{ .Broken",
			expErr: true,
		},
		"execute error": {
			tmpl:   "{{ .Missing }}",
			data:   struct{ Name string }{"x"},
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.expErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "output", got, tt.exp)
		})
	}
}

func TestRenderCachesTemplates(t *testing.T) {
	const tmpl = "tick {{.}}"

	if _, err := Render(tmpl, 1); err != nil {
		t.Fatalf("first render: %v", err)
	}

	cacheMu.Lock()
	_, cached := cache[tmpl]
	cacheMu.Unlock()
	if !cached {
		t.Fatal("expected template to be cached")
	}

	got, err := Render(tmpl, 2)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	testutil.AssertEqual(t, "output", got, "tick 2")
}

func TestWrap(t *testing.T) {
	long := strings.Repeat("gravity ", 15) // 120 chars

	wrapped := Wrap(long)
	for _, line := range strings.Split(wrapped, "\n") {
		if len(line) > DefaultWidth {
			t.Errorf("line longer than %d: %q", DefaultWidth, line)
		}
	}
	if !strings.Contains(wrapped, "\n") {
		t.Error("expected long text to wrap")
	}

	testutil.AssertEqual(t, "short text untouched", Wrap("hello"), "hello")
}

func TestTitle(t *testing.T) {
	tests := map[string]struct {
		in  string
		exp string
	}{
		"lowercase":  {in: "med kit", exp: "Med Kit"},
		"mixed":      {in: "null WARDEN", exp: "Null Warden"},
		"empty":      {in: "", exp: ""},
		"hyphenated": {in: "warden-key", exp: "Warden-Key"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "title", Title(tt.in), tt.exp)
		})
	}
}
