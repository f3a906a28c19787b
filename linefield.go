// Replays input scripts against single line text fields.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/jmigpin/linefield/core"
)

func main() {
	log.SetFlags(log.Llongfile)

	opt := core.DefaultOptions()
	flag.StringVar(&opt.Script, "script", "", "replay script filename (yaml)")
	flag.StringVar(&opt.Out, "out", "", "write the final screen to a png file")
	flag.StringVar(&opt.Font, "font", "", "truetype font filename (default: go regular)")
	flag.Float64Var(&opt.FontSize, "fontsize", opt.FontSize, "default font size")
	flag.Float64Var(&opt.DPI, "dpi", opt.DPI, "monitor dots per inch")
	flag.IntVar(&opt.Cells, "cells", 0, "measure text in monospace cells of this width")
	flag.DurationVar(&opt.RepeatDelay, "repeatdelay", opt.RepeatDelay, "key repeat delay")
	flag.DurationVar(&opt.RepeatRate, "repeatrate", opt.RepeatRate, "key repeat rate")
	flag.BoolVar(&opt.Watch, "watch", false, "run again when the script changes")
	flag.Parse()

	if opt.Script == "" && flag.NArg() > 0 {
		opt.Script = flag.Arg(0)
	}
	if opt.Script == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(opt); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opt *core.Options) error {
	if !opt.Watch {
		rep, err := core.RunFile(opt)
		if err != nil {
			return err
		}
		fmt.Print(rep)
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := core.Watch(ctx, opt, func(rep string, err error) {
		if err != nil {
			log.Print(err)
			return
		}
		fmt.Print(rep)
	})
	if err == context.Canceled {
		return nil
	}
	return err
}
