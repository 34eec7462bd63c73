package render

import "time"

// SystemRenderer is implemented by anything with visual output
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Now    time.Time
	Width  int
	Height int
	Layout *Layout
}
