package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/mhs-embed/srcpatch/rewrite"
	"github.com/mhs-embed/srcpatch/xffi"
)

type MainConfig struct {
	Diff    bool `cli:"name=diff desc='print a preview diff of the change to stderr'"`
	DryRun  bool `cli:"name=n aliases=dry-run desc='transform and report, write nothing'"`
	Strict  bool `cli:"name=strict desc='fail when no occurrence of the target is found'"`
	Color   bool `cli:"name=color desc='force colored diff output'"`
	NoColor bool `cli:"name=no-color desc='disable colored diff output'"`

	// Rules defaults to the built-in xffi table rule; -rules replaces it.
	Rules     rewrite.Rules
	RulesPath string

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{Rules: xffi.Rules()}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts,
		&cli.Opt{
			Name:        "rules",
			Description: "yaml rules file replacing the built-in xffi rule",
			Type:        cli.NamedFuncOpt(cfg.rulesOpt, "(file.yaml)"),
		})

	return cli.NewCommandAt(&cfg.Main, "mhs-patch-xffi").
		WithSynopsis("mhs-patch-xffi [opts] <input.c> <output.c>").
		WithDescription(`mhs-patch-xffi patches a generated interpreter source before it is
compiled, replacing the xffi dispatch table definition with a comment so
that midi_ffi_wrappers.c can provide its own table.

The substitution is literal and applies to every occurrence. Input
without the target line is copied through unchanged unless -strict is
given.`).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchMain(cfg, cc, args)
		})
}

// rulesOpt only records the path; the file is read after the
// positional arguments have been validated, so a usage error never
// performs file I/O.
func (cfg *MainConfig) rulesOpt(cc *cli.Context, a string) (any, error) {
	if a == "" {
		return nil, fmt.Errorf("%w: -rules requires a file path", cli.ErrUsage)
	}
	cfg.RulesPath = a
	return a, nil
}
