package render

import "github.com/gdamore/tcell/v2"

// Renderer draws one layer of a snapshot S
type Renderer[S any] interface {
	Render(ctx Context, snap *S, buf *Buffer)
}

// RendererFunc adapts a function to Renderer
type RendererFunc[S any] func(ctx Context, snap *S, buf *Buffer)

func (f RendererFunc[S]) Render(ctx Context, snap *S, buf *Buffer) { f(ctx, snap, buf) }

type rendererEntry[S any] struct {
	renderer Renderer[S]
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline for one snapshot type
// Stateless with respect to game logic: every frame is drawn from the snapshot alone
type Orchestrator[S any] struct {
	screen    tcell.Screen
	buffer    *Buffer
	renderers []rendererEntry[S]
	regCount  int
}

// NewOrchestrator creates an orchestrator sized to screen
func NewOrchestrator[S any](screen tcell.Screen) *Orchestrator[S] {
	w, h := screen.Size()
	return &Orchestrator[S]{
		screen:    screen,
		buffer:    NewBuffer(w, h),
		renderers: make([]rendererEntry[S], 0, 16),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator[S]) Register(r Renderer[S], priority Priority) {
	entry := rendererEntry[S]{renderer: r, priority: priority, index: o.regCount}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}
	o.renderers = append(o.renderers, rendererEntry[S]{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Buffer exposes the last composed frame
func (o *Orchestrator[S]) Buffer() *Buffer { return o.buffer }

// RenderFrame executes the render pipeline: resize, clear, render all, flush, show
func (o *Orchestrator[S]) RenderFrame(ctx Context, snap *S) {
	w, h := o.screen.Size()
	if bw, bh := o.buffer.Bounds(); bw != w || bh != h {
		o.buffer.Resize(w, h)
	} else {
		o.buffer.Clear()
	}
	ctx.Width, ctx.Height = w, h

	for _, entry := range o.renderers {
		entry.renderer.Render(ctx, snap, o.buffer)
	}

	o.buffer.Flush(o.screen)
	o.screen.Show()
}
