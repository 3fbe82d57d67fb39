package main

import (
	"flag"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/vantage3d/vantage/app"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := app.DefaultOptions()
	flag.IntVar(&opts.Width, "width", opts.Width, "Window width in pixels")
	flag.IntVar(&opts.Height, "height", opts.Height, "Window height in pixels")
	flag.StringVar(&opts.Title, "title", opts.Title, "Window title")
	flag.BoolVar(&opts.Debug, "debug", opts.Debug, "Enable debug logging")
	flag.StringVar(&opts.FontPath, "font", opts.FontPath, "TTF font for the readout overlay")
	flag.StringVar(&opts.LogPath, "logfile", opts.LogPath, "Also log to this rotated file")
	flag.Parse()

	logger := app.NewDefaultLogger("vantage", opts.Debug, opts.LogPath)

	if err := glfw.Init(); err != nil {
		logger.Errorf("glfw init failed: %v", err)
		return
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		logger.Errorf("create window failed: %v", err)
		return
	}
	defer window.Destroy()

	viewer, err := app.New(window, opts, logger)
	if err != nil {
		logger.Errorf("startup failed: %v", err)
		return
	}
	defer viewer.Release()

	viewer.BindCallbacks()

	for !window.ShouldClose() {
		glfw.PollEvents()
		if err := viewer.Frame(); err != nil {
			// A dropped frame is recoverable; the next acquire usually
			// succeeds after the swapchain settles.
			logger.Errorf("frame failed: %v", err)
		}
	}
}
