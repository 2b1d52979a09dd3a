// Package xffi names the one substitution the tool ships for: removing
// the generated FFI dispatch table definition from an interpreter
// source so the MIDI wrapper module can define its own.
package xffi

import "github.com/mhs-embed/srcpatch/rewrite"

const (
	// TableDef is the line the generator emits.
	TableDef = `const struct ffi_entry *xffi_table = imp_table;`
	// TableComment replaces it; midi_ffi_wrappers.c carries the
	// actual definition and must be linked in.
	TableComment = `// xffi_table defined in midi_ffi_wrappers.c`
)

func Rules() rewrite.Rules {
	return rewrite.Rules{
		{Find: TableDef, Replace: TableComment},
	}
}
