package core

import (
	"context"
	"log"

	"github.com/jmigpin/linefield/core/fswatcher"
)

// Runs the script, and runs it again each time the file changes, until ctx is done.
func Watch(ctx context.Context, opt *Options, fn func(report string, err error)) error {
	w, err := fswatcher.NewFileWatcher(opt.Script)
	if err != nil {
		return err
	}
	defer w.Close()

	fn(RunFile(opt))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			switch t := ev.(type) {
			case error:
				return t
			case *fswatcher.Event:
				log.Printf("watch: %v: %v", t.Op, t.Name)
				fn(RunFile(opt))
			}
		}
	}
}
