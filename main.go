package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"helios/app"
	"helios/hal"
	"helios/internal/buildinfo"
)

func main() {
	var hcfg hal.HeadlessConfig
	var acfg app.Config
	var width, height int
	var version bool
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&width, "width", 800, "Framebuffer width in pixels.")
	flag.IntVar(&height, "height", 600, "Framebuffer height in pixels.")
	flag.IntVar(&acfg.Scene, "scene", 1, "Initial scene index (1-7).")
	flag.StringVar(&acfg.Listen, "listen", "", "Serve rendered frames over websocket on this address (e.g. :8080).")
	flag.BoolVar(&version, "version", false, "Print the build identifier and exit.")
	flag.Parse()

	if version {
		fmt.Println("helios " + buildinfo.Short())
		return
	}

	newApp := func(h hal.HAL) func() error {
		return app.New(h, acfg)
	}

	if hcfg.Enabled {
		hcfg.Width = width
		hcfg.Height = height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, width, height); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
