package ui

import "image/color"

var (
	colBackground = color.RGBA{28, 96, 180, 255}

	// white at 40% and plain white, as premultiplied RGBA
	colTrack          = color.RGBA{102, 102, 102, 102}
	colTrackHighlight = color.RGBA{255, 255, 255, 255}

	colThumb       = color.RGBA{0, 0, 0, 102}
	colThumbActive = color.RGBA{0, 0, 0, 160}

	colLabelFill   = color.RGBA{20, 20, 30, 200}
	colLabelBorder = color.RGBA{240, 240, 240, 255}
	colResetButton = color.RGBA{40, 160, 200, 255}
)

const (
	defaultTrackHeight = 10
	defaultThumbSize   = 20
)
