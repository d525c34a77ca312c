package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"demo-scenes/internal/config"
	"demo-scenes/internal/controls"
	"demo-scenes/internal/env"
	"demo-scenes/internal/graphics"
	"demo-scenes/internal/hud"
	"demo-scenes/internal/input"
	"demo-scenes/internal/logger"
	"demo-scenes/internal/render"
	"demo-scenes/internal/scene"
	"demo-scenes/internal/terminal"
	"demo-scenes/internal/texture"
)

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "env:", err)
	}

	configPath := flag.String("config", env.Get(env.ConfigVar, config.DefaultPath), "path to the YAML config")
	demoName := flag.String("demo", os.Getenv(env.DemoVar), "demo to run: "+strings.Join(scene.Names(), ", "))
	list := flag.Bool("list", false, "list the demos and exit")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	if *list {
		for _, n := range scene.Names() {
			fmt.Println(n)
		}
		return
	}

	cfg, cfgErr := config.Load(*configPath)
	if *demoName != "" {
		cfg.Demo = *demoName
	}
	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(1)
		}
		return
	}

	log := logger.New(cfg.Log.Path)
	if cfgErr != nil {
		log.Logf("config: %v (using defaults)", cfgErr)
	}

	demo, err := scene.New(cfg.Demo, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.Logf("demo %s", demo.Name())

	reg := controls.NewRegistry()
	demo.Register(reg)

	overlay := hud.New(demo.Status)
	hudFlags := controls.NewFlagSet("hud")
	reg.Register("hud", "hud fps|mem|status: toggle an overlay", hudFlags, func() error {
		return overlay.Toggle(hudFlags.Arg(0))
	})

	keys, err := input.Keymap(scene.Keys(demo, cfg))
	if err != nil {
		log.Logf("keys: %v", err)
	}
	term := terminal.New(log, reg)
	poller := input.NewPoller(keys, reg, log)
	poller.Paused = term.IsOpen

	renderer := render.New(log, demo, texture.Options{FlipY: cfg.Textures.FlipY, Size: cfg.Textures.Size})

	update := func() {
		term.Update()
		poller.Update()
		demo.Step()
	}
	draw := func() {
		renderer.Draw(demo)
		overlay.Draw()
		term.Draw()
	}
	graphics.Run(cfg.Window, update, draw, renderer.Close)
}
