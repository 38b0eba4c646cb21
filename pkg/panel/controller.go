// Package panel models the floating copilot chat panel: its open/docked/expanded
// lifecycle, drag and resize gestures while docked, and the chat transcript with
// delayed assistant replies.
package panel

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Option func(*Controller)

func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

func WithReplyLatency(d time.Duration) Option {
	return func(c *Controller) { c.latency = d }
}

func WithViewport(v Viewport) Option {
	return func(c *Controller) { c.viewport = v }
}

// WithReplyFunc replaces the canned assistant reply.
func WithReplyFunc(fn func(prompt string) string) Option {
	return func(c *Controller) { c.reply = fn }
}

// WithListener registers fn to receive every change in order. fn runs outside
// the state lock and may call Snapshot, but must not call mutating methods.
func WithListener(fn func(Event)) Option {
	return func(c *Controller) { c.listener = fn }
}

type pendingReply struct {
	prompt string
	timer  Timer
}

// Controller is safe for concurrent use.
type Controller struct {
	mu       sync.Mutex
	notifyMu sync.Mutex

	state    State
	gesture  Gesture
	size     Size
	position Point
	viewport Viewport

	// pointer position when a drag began, or the last pointer position of a resize
	gestureOrigin Point
	// panel offset when a drag began
	dragStart Point

	input      string
	transcript []Message

	pending  []pendingReply
	epoch    uint64
	disposed bool

	scheduler Scheduler
	latency   time.Duration
	reply     func(string) string
	listener  func(Event)
}

func NewController(opts ...Option) *Controller {
	c := &Controller{
		state:     StateClosed,
		gesture:   GestureIdle,
		size:      Size{Width: DefaultWidth, Height: DefaultHeight},
		position:  Point{X: DefaultOffsetX, Y: DefaultOffsetY},
		viewport:  Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight},
		scheduler: RealScheduler,
		latency:   DefaultReplyLatency,
		reply:     EchoReply,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.transcript = []Message{newMessage(RoleAssistant, Greeting)}
	return c
}

func newMessage(role Role, content string) Message {
	return Message{Id: uuid.NewString(), Role: role, Content: content}
}

// lock takes the notification lock before the state lock. Every operation that
// may commit events locks this way, so a listener may read the controller.
func (c *Controller) lock() {
	c.notifyMu.Lock()
	c.mu.Lock()
}

func (c *Controller) unlock() {
	c.mu.Unlock()
	c.notifyMu.Unlock()
}

// commit releases the state lock and hands events to the listener while still
// holding the notification lock, keeping listener order identical to mutation order.
func (c *Controller) commit(events []Event) {
	c.mu.Unlock()
	defer c.notifyMu.Unlock()
	if c.listener == nil {
		return
	}
	for _, e := range events {
		c.listener(e)
	}
}

func (c *Controller) event(t EventType, msg *Message) Event {
	return Event{Type: t, Message: msg, Snapshot: c.snapshotLocked()}
}

// Open shows the panel docked. It reports false if the panel was already open.
func (c *Controller) Open() bool {
	c.lock()
	if c.disposed || c.state != StateClosed {
		c.unlock()
		return false
	}
	c.state = StateDocked
	c.gesture = GestureIdle
	c.commit([]Event{c.event(EventPanelChanged, nil)})
	return true
}

// Close hides the panel and cancels any replies still on their way.
// Geometry and transcript survive for the next Open.
func (c *Controller) Close() bool {
	c.lock()
	if c.disposed || c.state == StateClosed {
		c.unlock()
		return false
	}
	c.state = StateClosed
	c.gesture = GestureIdle
	c.cancelPendingLocked()
	c.commit([]Event{c.event(EventPanelChanged, nil)})
	return true
}

// ToggleExpand switches between docked and expanded. Any gesture in progress ends.
func (c *Controller) ToggleExpand() bool {
	c.lock()
	if c.disposed || !c.state.IsOpen() {
		c.unlock()
		return false
	}
	if c.state == StateDocked {
		c.state = StateExpanded
	} else {
		c.state = StateDocked
	}
	c.gesture = GestureIdle
	c.commit([]Event{c.event(EventPanelChanged, nil)})
	return true
}

// SetViewport records the window size used for clamping. Existing geometry is
// not re-clamped until the next gesture.
func (c *Controller) SetViewport(v Viewport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewport = Viewport{Width: max(0, v.Width), Height: max(0, v.Height)}
}

// PointerDown routes a press: the header starts a drag, the resize handle
// starts a resize, anything else is ignored.
func (c *Controller) PointerDown(target Target, p Point) bool {
	switch target {
	case TargetHeader:
		return c.BeginDrag(p)
	case TargetResizeHandle:
		return c.BeginResize(p)
	}
	return false
}

func (c *Controller) BeginDrag(p Point) bool {
	return c.beginGesture(GestureDragging, p)
}

func (c *Controller) BeginResize(p Point) bool {
	return c.beginGesture(GestureResizing, p)
}

func (c *Controller) beginGesture(g Gesture, p Point) bool {
	c.lock()
	if c.disposed || c.state != StateDocked || c.gesture != GestureIdle {
		c.unlock()
		return false
	}
	c.gesture = g
	c.gestureOrigin = p
	c.dragStart = c.position
	c.commit([]Event{c.event(EventPanelChanged, nil)})
	return true
}

// PointerMove updates geometry for the active gesture and reports whether one was active.
func (c *Controller) PointerMove(p Point) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.gesture {
	case GestureDragging:
		// the offset is measured from the bottom-right corner, so moving the
		// pointer right or down shrinks it
		dx := p.X - c.gestureOrigin.X
		dy := p.Y - c.gestureOrigin.Y
		c.position = Point{
			X: clamp(c.dragStart.X-dx, 0, c.viewport.Width-c.size.Width),
			Y: clamp(c.dragStart.Y-dy, 0, c.viewport.Height-c.size.Height-DragBottomMargin),
		}
		return true
	case GestureResizing:
		dx := p.X - c.gestureOrigin.X
		dy := p.Y - c.gestureOrigin.Y
		c.size = Size{
			Width:  clamp(c.size.Width+dx, MinWidth, MaxWidth),
			Height: clamp(c.size.Height+dy, MinHeight, c.viewport.Height-ResizeHeadroom),
		}
		c.gestureOrigin = p
		return true
	}
	return false
}

// PointerUp ends any gesture, wherever the pointer was released.
func (c *Controller) PointerUp() bool {
	c.lock()
	if c.gesture == GestureIdle {
		c.unlock()
		return false
	}
	c.gesture = GestureIdle
	c.commit([]Event{c.event(EventPanelChanged, nil)})
	return true
}

// clamp is max(lo, min(hi, v)); lo wins when the range is empty.
func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = text
}

// ChooseSuggestedPrompt copies prompt i into the input. Prompts are only on
// offer while the transcript holds nothing but the greeting.
func (c *Controller) ChooseSuggestedPrompt(i int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed || !c.state.IsOpen() || !c.offersPromptsLocked() {
		return false
	}
	if i < 0 || i >= len(SuggestedPrompts) {
		return false
	}
	c.input = SuggestedPrompts[i]
	return true
}

func (c *Controller) offersPromptsLocked() bool {
	return len(c.transcript) == 1
}

// Submit appends the input as a user message and schedules the assistant reply.
// Blank input and a closed panel are no-ops.
func (c *Controller) Submit() (Message, bool) {
	c.lock()
	if c.disposed || !c.state.IsOpen() || strings.TrimSpace(c.input) == "" {
		c.unlock()
		return Message{}, false
	}

	prompt := c.input
	msg := newMessage(RoleUser, prompt)
	c.transcript = append(c.transcript, msg)
	c.input = ""

	epoch := c.epoch
	timer := c.scheduler.AfterFunc(c.latency, func() { c.deliverReply(epoch) })
	c.pending = append(c.pending, pendingReply{prompt: prompt, timer: timer})

	c.commit([]Event{
		c.event(EventMessageAppended, &msg),
		c.event(EventReplyPending, nil),
	})
	return msg, true
}

// deliverReply answers the oldest outstanding prompt. Every live timer pops
// exactly one entry, so replies arrive in submission order.
func (c *Controller) deliverReply(epoch uint64) {
	c.lock()
	if c.disposed || epoch != c.epoch || len(c.pending) == 0 {
		c.unlock()
		return
	}
	head := c.pending[0]
	c.pending = c.pending[1:]

	msg := newMessage(RoleAssistant, c.reply(head.prompt))
	c.transcript = append(c.transcript, msg)

	events := []Event{c.event(EventMessageAppended, &msg)}
	if len(c.pending) == 0 {
		events = append(events, c.event(EventReplyPending, nil))
	}
	c.commit(events)
}

func (c *Controller) cancelPendingLocked() {
	for _, p := range c.pending {
		p.timer.Stop()
	}
	c.pending = nil
	c.epoch++
}

// Dispose cancels outstanding replies and freezes the controller.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.cancelPendingLocked()
	c.gesture = GestureIdle
	c.disposed = true
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		State:          c.state,
		Gesture:        c.gesture,
		Size:           c.size,
		Position:       c.position,
		Viewport:       c.viewport,
		Input:          c.input,
		Transcript:     append([]Message(nil), c.transcript...),
		Pending:        len(c.pending) > 0,
		PendingReplies: len(c.pending),
	}
	if c.offersPromptsLocked() {
		s.SuggestedPrompts = append([]string(nil), SuggestedPrompts...)
	} else {
		s.SuggestedPrompts = []string{}
	}
	return s
}
