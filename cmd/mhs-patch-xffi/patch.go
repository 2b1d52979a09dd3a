package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/mhs-embed/srcpatch/libdiff"
	"github.com/mhs-embed/srcpatch/rewrite"
	"github.com/mhs-embed/srcpatch/srcfile"
)

func patchMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: at most one of -color -no-color", cli.ErrUsage)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: mhs-patch-xffi requires 2 arguments, got %d", cli.ErrUsage, len(args))
	}
	rules := cfg.Rules
	if cfg.RulesPath != "" {
		rs, err := rewrite.Load(cfg.RulesPath)
		if err != nil {
			return err
		}
		rules = rs
	}
	colored := isatty.IsTerminal(os.Stderr.Fd())
	if cfg.Color {
		colored = true
	}
	if cfg.NoColor {
		colored = false
	}
	color.NoColor = !colored

	p := &patcher{
		rules:   rules,
		strict:  cfg.Strict,
		dryRun:  cfg.DryRun,
		diff:    cfg.Diff || cfg.DryRun,
		printer: &libdiff.Printer{Colored: colored},
		log:     os.Stderr,
	}
	return p.patchFile(args[0], args[1])
}

type patcher struct {
	rules   rewrite.Rules
	strict  bool
	dryRun  bool
	diff    bool
	printer *libdiff.Printer
	log     io.Writer
}

// patchFile is the whole pipeline: read, transform in memory, then (and
// only then) touch the output path. A failure on the read or transform
// side leaves the output untouched.
func (p *patcher) patchFile(inPath, outPath string) error {
	content, err := srcfile.Read(inPath)
	if err != nil {
		return err
	}
	res, n, err := p.rules.Apply(content)
	if err != nil {
		return fmt.Errorf("patching %s: %w", inPath, err)
	}
	if p.diff {
		if _, err := p.printer.Print(p.log, content, res); err != nil {
			return err
		}
		fmt.Fprintf(p.log, "%s: %s\n", inPath, libdiff.Summary(n))
	}
	if p.strict && n == 0 {
		return fmt.Errorf("no occurrences of target in %s", inPath)
	}
	if p.dryRun {
		return nil
	}
	return srcfile.WriteAtomic(outPath, res)
}
