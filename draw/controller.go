// Package draw contains the domain logic of the number draw: input
// validation, sampling without replacement and the Controller state machine
// that reveals a draw over time.
//
// Maintenance notes:
//   - The Controller is not safe for concurrent use. Every method, including
//     the tick callbacks it hands to its control.Scheduler, must run on the
//     UI event loop. control.UIScheduler guarantees that for the real window.
//   - A tick schedules the next tick only after it has updated the display,
//     so ticks of one draw never overlap and run in time order.
//   - There is no cancellation. The draw button stays disabled for the whole
//     animation, which is the only thing keeping a second draw out.
package draw

import (
	"log"
	"time"

	"NumberDraw/control"
)

// State is the Controller's position in the draw lifecycle.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSampling
	StateAnimating
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSampling:
		return "sampling"
	case StateAnimating:
		return "animating"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Mode selects how a draw is revealed.
type Mode int

const (
	ModeNone Mode = iota
	ModeSingle
	ModeMulti
)

// Cue names the sound played alongside a frame.
type Cue int

const (
	CueTick   Cue = iota // single-draw decoy frame
	CueReveal            // multi-draw frame
	CueFinal             // animation finished
)

// Animation is the state of the running reveal. Index counts frames shown
// in single mode and values revealed in multi mode.
type Animation struct {
	Mode  Mode
	Index int
	Start time.Time
}

// View is what the Controller drives: a display label, the draw button and
// a speaker.
type View interface {
	ShowValue(value int)
	ShowRevealed(values []int)
	SetDrawEnabled(enabled bool)
	PlaySound(cue Cue)
}

// Inputs exposes the current text of the two entry fields.
type Inputs interface {
	MaxNumberText() string
	QuantityText() string
}

// Controller owns one draw at a time.
type Controller struct {
	cfg     *Config
	view    View
	inputs  Inputs
	sampler *Sampler
	sched   control.Scheduler
	clock   control.Clock

	state     State
	anim      Animation
	maxNumber int
	result    Result
}

// NewController wires a Controller to its collaborators.
func NewController(cfg *Config, view View, inputs Inputs, sampler *Sampler, sched control.Scheduler, clock control.Clock) *Controller {
	return &Controller{
		cfg:     cfg,
		view:    view,
		inputs:  inputs,
		sampler: sampler,
		sched:   sched,
		clock:   clock,
		state:   StateIdle,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Animation returns the current animation state.
func (c *Controller) Animation() Animation {
	return c.anim
}

// Animating reports whether a reveal is in progress.
func (c *Controller) Animating() bool {
	return c.anim.Mode != ModeNone
}

// Result returns the most recent draw.
func (c *Controller) Result() Result {
	return c.result
}

// Revealed returns the values of the current or last multi draw that have
// been displayed so far.
func (c *Controller) Revealed() []int {
	if c.result.Len() < 2 {
		return nil
	}
	n := c.result.Len()
	if c.anim.Mode == ModeMulti {
		n = c.anim.Index
	}
	return c.result.Values()[:n]
}

// RefreshDrawEnabled pushes the InputValidator verdict to the draw button.
func (c *Controller) RefreshDrawEnabled() {
	c.view.SetDrawEnabled(c.Ready())
}

// Ready reports whether a draw can start with the current field texts.
func (c *Controller) Ready() bool {
	return IsReady(c.inputs.MaxNumberText(), c.inputs.QuantityText(), c.Animating())
}

// Draw validates the inputs, samples a Result and starts the reveal. On a
// validation error nothing changes and the error is returned for the
// caller to show.
func (c *Controller) Draw() error {
	if c.state != StateIdle {
		return ErrDrawInProgress
	}

	c.state = StateValidating
	conf, err := ParseConfiguration(c.inputs.MaxNumberText(), c.inputs.QuantityText(), c.cfg.MaxQuantity)
	if err != nil {
		c.state = StateIdle
		log.Printf("Draw rejected: %v", err)
		return err
	}

	c.state = StateSampling
	result, err := c.sampler.Sample(conf.MaxNumber, conf.Quantity)
	if err != nil {
		c.state = StateIdle
		log.Printf("Draw rejected: %v", err)
		return err
	}
	c.result = result
	c.maxNumber = conf.MaxNumber
	c.view.SetDrawEnabled(false)

	c.state = StateAnimating
	if conf.Quantity == 1 {
		log.Printf("Starting single draw from 1..%d", conf.MaxNumber)
		c.anim = Animation{Mode: ModeSingle, Start: c.clock.Now()}
		c.view.ShowRevealed(nil)
		c.singleTick()
	} else {
		log.Printf("Starting multi draw of %d from 1..%d", conf.Quantity, conf.MaxNumber)
		c.anim = Animation{Mode: ModeMulti}
		c.multiTick()
	}
	return nil
}

// singleTick flashes a decoy until the configured duration has elapsed
// since Start, then shows the drawn value. Elapsed wall time, not the frame
// count, bounds the animation.
func (c *Controller) singleTick() {
	if c.clock.Now().Sub(c.anim.Start) < c.cfg.SingleDuration {
		c.view.ShowValue(c.sampler.Decoy(c.maxNumber))
		c.view.PlaySound(CueTick)
		c.anim.Index++
		c.sched.After(c.cfg.SingleTick, c.singleTick)
		return
	}
	c.view.ShowValue(c.result.At(0))
	c.finish()
}

// multiTick reveals the next value; the tick after the last value ends the
// animation, leaving the last value on screen.
func (c *Controller) multiTick() {
	if c.anim.Index < c.result.Len() {
		c.view.ShowValue(c.result.At(c.anim.Index))
		c.anim.Index++
		c.view.ShowRevealed(c.Revealed())
		c.view.PlaySound(CueReveal)
		c.sched.After(c.cfg.MultiTick, c.multiTick)
		return
	}
	c.finish()
}

func (c *Controller) finish() {
	c.state = StateDone
	c.anim = Animation{}
	c.view.PlaySound(CueFinal)
	log.Printf("Draw finished: %v", c.result.values)

	c.state = StateIdle
	c.RefreshDrawEnabled()
}
