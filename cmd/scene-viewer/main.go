package main

import (
	"flag"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"forward-gl/internal/config"
	"forward-gl/internal/graphics"
	"forward-gl/internal/renderer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config/viewer.json", "path to the viewer configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("config: %v (continuing with defaults)", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("init glfw: %v", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}

	device, err := graphics.NewDevice()
	if err != nil {
		log.Fatalf("init opengl: %v", err)
	}

	r, err := renderer.New(device, cfg.Window.Width, cfg.Window.Height, cfg.Render)
	if err != nil {
		// A failed sky or post-process setup disables that feature but
		// the frame loop still runs.
		log.Printf("renderer: %v", err)
	}
	defer r.Destroy()

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if width == 0 || height == 0 {
			return
		}
		if err := r.Resize(width, height); err != nil {
			log.Printf("resize: %v", err)
		}
	})

	demo, err := buildDemoScene(device)
	if err != nil {
		log.Fatalf("build scene: %v", err)
	}
	defer demo.Release()

	limiter := NewFPSLimiter(120)
	last := time.Now()
	for !window.ShouldClose() {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		demo.Update(dt)

		frameStart := time.Now()
		r.Render(demo.World)
		if d := time.Since(frameStart); d > 50*time.Millisecond {
			log.Printf("Slow frame: %v", d)
		}

		window.SwapBuffers()
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}
		limiter.Wait()
	}
}

func setupWindow(cfg config.Window) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(0)

	return window, nil
}
