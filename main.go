/*
c3d evaluates a TOML scene description and prints the CSS transform of every
node. With -watch it keeps running and prints again whenever the file changes.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/c3d/engine/core"
	"github.com/spaghettifunk/c3d/engine/scene"
)

func main() {
	scenePath := flag.String("scene", "testdata/scene.toml", "scene file to evaluate")
	configPath := flag.String("config", "", "optional c3d.toml configuration file")
	watch := flag.Bool("watch", false, "re-evaluate the scene whenever it changes")
	logLevel := flag.String("log-level", "", "overrides the configured log level")
	flag.Parse()

	cfg := core.DefaultConfig()
	if *configPath != "" {
		c, err := core.LoadConfig(*configPath)
		if err != nil {
			core.LogFatal("failed to load config %s: %s", *configPath, err)
		}
		cfg = c
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *watch {
		cfg.Watch = true
	}
	if err := cfg.Apply(); err != nil {
		core.LogFatal("invalid config: %s", err)
	}

	if !cfg.Watch {
		s, err := scene.Load(*scenePath)
		if err != nil {
			core.LogFatal("failed to load scene %s: %s", *scenePath, err)
		}
		printOutput(os.Stdout, s.Evaluate())
		return
	}

	w, err := scene.NewWatcher(*scenePath, func(out *scene.Output, err error) {
		if err != nil {
			return
		}
		printOutput(os.Stdout, out)
	})
	if err != nil {
		core.LogFatal("failed to create watcher: %s", err)
	}
	if err := w.Start(); err != nil {
		core.LogFatal("failed to watch %s: %s", *scenePath, err)
	}
	core.LogInfo("watching %s", *scenePath)

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	<-sigCh

	if err := w.Close(); err != nil {
		core.LogError("failed to close watcher: %s", err)
	}
}

func printOutput(wr io.Writer, out *scene.Output) {
	if out.Projection != nil {
		fmt.Fprintf(wr, "projection %s\n", out.Projection.CSSString())
	}
	for _, r := range out.Nodes {
		fmt.Fprintf(wr, "%s transform: %s;\n", r.Name, r.CSS)
	}
	for _, r := range out.Nodes2D {
		fmt.Fprintf(wr, "%s transform: %s;\n", r.Name, r.CSS)
	}
}
