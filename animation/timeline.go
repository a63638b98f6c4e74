package animation

import (
	"time"

	"github.com/npillmayer/shelltk/style"
)

// Timeline is a reference implementation of a host timeline. It creates
// clips and advances all running clips on each call to Advance.
//
// Timelines are not safe for concurrent use; like everything else concerning
// widgets they live on the UI thread.
type Timeline struct {
	running []*Clip
	serial  uint64
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// NewAnimation creates a clip for spec. The clip is idle until Run is called.
//
// Interface Factory.
func (tl *Timeline) NewAnimation(spec Spec) Handle {
	tl.serial++
	c := &Clip{tl: tl, spec: spec, serial: tl.serial}
	if c.spec.Curve == nil {
		c.spec.Curve = LinearCurve
	}
	return c
}

var _ Factory = &Timeline{}

// Advance moves all running clips forward by dt. Clips reaching their
// duration complete during the call.
func (tl *Timeline) Advance(dt time.Duration) {
	clips := make([]*Clip, len(tl.running))
	copy(clips, tl.running) // completion callbacks may start or stop clips
	for _, c := range clips {
		if c.state == clipRunning {
			c.step(dt)
		}
	}
}

// Running returns the number of running clips.
func (tl *Timeline) Running() int {
	return len(tl.running)
}

func (tl *Timeline) start(c *Clip) {
	tl.running = append(tl.running, c)
}

func (tl *Timeline) stop(c *Clip) {
	for i, r := range tl.running {
		if r == c {
			tl.running = append(tl.running[:i], tl.running[i+1:]...)
			return
		}
	}
}

// --- Clips -----------------------------------------------------------------

type clipState uint8

const (
	clipIdle clipState = iota
	clipRunning
	clipDone
)

// Clip is the Handle implementation of Timeline.
type Clip struct {
	tl        *Timeline
	spec      Spec
	serial    uint64
	state     clipState
	elapsed   time.Duration
	progress  float64
	cancelled bool
	from, to  style.Box
	listeners []func(Handle)
}

var _ Handle = &Clip{}
var _ BoxAnimator = &Clip{}

// ID returns the animation name of the clip's spec.
func (c *Clip) ID() string {
	return c.spec.ID
}

// Spec returns the spec the clip has been created from.
func (c *Clip) Spec() Spec {
	return c.spec
}

// Run starts the clip. Clips with zero duration complete immediately.
func (c *Clip) Run() {
	if c.state != clipIdle {
		return
	}
	c.state = clipRunning
	tracer().Debugf("clip %s#%d started (%s)", c.spec.ID, c.serial, c.spec.Duration)
	if c.spec.Duration <= 0 {
		c.progress = 1
		c.finish()
		return
	}
	c.tl.start(c)
}

func (c *Clip) step(dt time.Duration) {
	c.elapsed += dt
	if c.elapsed >= c.spec.Duration {
		c.progress = 1
		c.finish()
		return
	}
	c.progress = float64(c.elapsed) / float64(c.spec.Duration)
}

// ForceComplete jumps to the end of the clip and signals completion.
func (c *Clip) ForceComplete() {
	if c.state == clipDone {
		return
	}
	c.progress = 1
	c.finish()
}

// Release cancels an unfinished clip. The clip signals completion.
func (c *Clip) Release() {
	if c.state == clipDone {
		return
	}
	c.cancelled = true
	c.finish()
}

func (c *Clip) finish() {
	c.state = clipDone
	c.tl.stop(c)
	tracer().Debugf("clip %s#%d done (cancelled=%v)", c.spec.ID, c.serial, c.cancelled)
	listeners := c.listeners
	c.listeners = nil
	for _, l := range listeners {
		l(c)
	}
}

// OnCompleted subscribes to the completion signal of the clip. Subscribing to
// a clip which is already done has no effect.
func (c *Clip) OnCompleted(fn func(Handle)) {
	if fn == nil || c.state == clipDone {
		return
	}
	c.listeners = append(c.listeners, fn)
}

// Running is true between Run and completion.
func (c *Clip) Running() bool {
	return c.state == clipRunning
}

// Done is true after completion or cancellation.
func (c *Clip) Done() bool {
	return c.state == clipDone
}

// Cancelled is true if the clip has been released before completing.
func (c *Clip) Cancelled() bool {
	return c.cancelled
}

// Progress returns the linear progress of the clip in [0, 1].
func (c *Clip) Progress() float64 {
	return c.progress
}

// SetBoxes sets the geometry the clip interpolates.
//
// Interface BoxAnimator.
func (c *Clip) SetBoxes(from, to style.Box) {
	c.from, c.to = from, to
}

// Box returns the interpolated geometry for the current progress.
func (c *Clip) Box() style.Box {
	return c.from.Lerp(c.to, c.spec.Curve(c.progress))
}
