// Command viewer opens a window onto a field of spinning cubes and flies a
// first-person camera through it: WASD to move, E/Q up and down, shift to
// sprint, mouse to look, scroll to zoom, M to toggle the cursor, Esc to quit.
package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/Carmen-Shannon/oxy-viewer/config"
	"github.com/Carmen-Shannon/oxy-viewer/engine"
	"github.com/Carmen-Shannon/oxy-viewer/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewer/engine/profiler"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewer/engine/window"
)

func init() {
	// GLFW must be driven from the main OS thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	watch := flag.Bool("watch", true, "reload the runtime section when the config file changes")
	flag.Parse()

	// ── Config ──────────────────────────────────────────────────────
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Viewer] %v", err)
	}

	// ── Window + Renderer ───────────────────────────────────────────
	win, err := window.NewWindow(cfg.WindowOptions()...)
	if err != nil {
		log.Fatalf("[Viewer] window: %v", err)
	}
	defer win.Close()

	r, err := renderer.NewRenderer(win.SurfaceDescriptor(), win.Width(), win.Height(), cfg.RendererOptions()...)
	if err != nil {
		log.Fatalf("[Viewer] renderer: %v", err)
	}
	defer r.Release()

	// ── Camera + Controls ───────────────────────────────────────────
	controllerOptions, err := cfg.ControllerOptions()
	if err != nil {
		log.Fatalf("[Viewer] controls: %v", err)
	}

	// ── Engine ──────────────────────────────────────────────────────
	eng, err := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithCamera(cfg.NewCamera()),
		engine.WithController(camera.NewCameraController(controllerOptions...)),
		engine.WithScene(cfg.NewScene()),
		engine.WithLight(cfg.NewLight()),
		engine.WithMaterial(cfg.NewMaterial()),
		engine.WithModelScale(cfg.Lighting.ModelScale),
		engine.WithRuntimeSettings(cfg.Runtime.RuntimeSettings()),
		engine.WithProfiler(profiler.NewProfiler(cfg.Runtime.ProfileInterval, nil)),
		engine.WithCaptureOnStart(cfg.Controls.CaptureOnStart),
		engine.WithCaptureToggleKey(cfg.CaptureToggleKey()),
	)
	if err != nil {
		log.Fatalf("[Viewer] engine: %v", err)
	}

	// ── Live reload ─────────────────────────────────────────────────
	if *watch {
		w, err := config.Watch(*configPath, func(c config.Config) {
			eng.ApplySettings(c.Runtime.RuntimeSettings())
		})
		if err != nil {
			log.Printf("[Viewer] config watch disabled: %v", err)
		} else {
			defer w.Close()
		}
	}

	log.Printf("[Viewer] %d objects in scene, %dx%d", eng.Scene().Count(), win.Width(), win.Height())
	eng.Run()
}
