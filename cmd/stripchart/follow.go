package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long follow waits for further changes before rendering.
const settle = 200 * time.Millisecond

// follow renders once and then again after every change to one of files
// until the watcher fails. Directories are watched instead of the files
// themselves so that editors replacing a file are noticed too.
func follow(files []string, opts *options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer watcher.Close()

	wanted := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		wanted[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		if err := watcher.Add(d); err != nil {
			return fmt.Errorf("watching %s: %w", d, err)
		}
	}

	if err := render(files, opts); err != nil {
		log.Print(err)
	} else {
		log.Printf("wrote %s", opts.output)
	}

	timer := time.NewTimer(settle)
	timer.Stop()
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(ev.Name)
			if !wanted[abs] || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(settle)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err

		case <-timer.C:
			if err := render(files, opts); err != nil {
				log.Print(err)
				continue
			}
			log.Printf("wrote %s", opts.output)
		}
	}
}
