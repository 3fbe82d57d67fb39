package app

// Options configures a viewer instance.
type Options struct {
	Width    int
	Height   int
	Title    string
	Debug    bool
	FontPath string
	LogPath  string
}

func DefaultOptions() Options {
	return Options{
		Width:  1280,
		Height: 720,
		Title:  "Vantage",
	}
}
