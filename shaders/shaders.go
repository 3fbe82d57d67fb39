package shaders

import (
	_ "embed"
)

//go:embed cube.wgsl
var CubeWGSL string

//go:embed lines.wgsl
var LinesWGSL string

//go:embed grid.wgsl
var GridWGSL string

//go:embed text.wgsl
var TextWGSL string
