package rewrite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeRules(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeRules(t, `
- find: "const struct ffi_entry *xffi_table = imp_table;"
  replace: "// xffi_table defined in midi_ffi_wrappers.c"
- find: "aa"
  replace: "b"
  count: 2
  when: content contains "marker"
`)
	rs, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Rules{
		{
			Find:    `const struct ffi_entry *xffi_table = imp_table;`,
			Replace: `// xffi_table defined in midi_ffi_wrappers.c`,
		},
		{
			Find:    "aa",
			Replace: "b",
			Count:   2,
			When:    `content contains "marker"`,
		},
	}
	if d := cmp.Diff(want, rs); d != "" {
		t.Errorf("rules mismatch (-want +got):\n%s", d)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		Name string
		Body string
		Err  string
	}{
		{Name: "empty list", Body: "[]\n", Err: "no rules defined"},
		{Name: "not yaml", Body: ":\n\t-", Err: "unable to parse"},
		{Name: "invalid rule", Body: "- replace: b\n", Err: "empty find"},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := Load(writeRules(t, tt.Body))
			if err == nil || !strings.Contains(err.Error(), tt.Err) {
				t.Fatalf("got error %v, want %q", err, tt.Err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "unable to read") {
		t.Fatalf("got error %v, want read failure", err)
	}
}
