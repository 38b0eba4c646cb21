package panel

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	MinWidth  = 300
	MaxWidth  = 800
	MinHeight = 400

	// ResizeHeadroom is kept free above a resized panel: max height is viewport height minus this.
	ResizeHeadroom = 100
	// DragBottomMargin is kept free below a dragged panel.
	DragBottomMargin = 50

	DefaultWidth   = 400
	DefaultHeight  = 600
	DefaultOffsetX = 20
	DefaultOffsetY = 20

	DefaultViewportWidth  = 1920
	DefaultViewportHeight = 1080

	DefaultReplyLatency = time.Second
)

// Greeting opens every transcript.
const Greeting = "I can help you explore past campaigns, find insights, and answer questions."

// SuggestedPrompts are offered until the user sends a first message.
var SuggestedPrompts = []string{
	"Show campaigns with highest ROI",
	"What strategies work best for finance?",
	"Compare 2024 vs 2023 results",
}

const replyTemplate = "I've analyzed your query: \"%s\". Here's what I found based on our project database:\n\n" +
	"• This is a mock response for now\n" +
	"• When the backend is connected, I'll provide real insights\n" +
	"• I'll reference specific projects and data points\n\n" +
	"Would you like me to explore any specific aspect further?"

// EchoReply is the canned assistant answer referencing the submitted text.
func EchoReply(prompt string) string {
	return fmt.Sprintf(replyTemplate, prompt)
}

// State is the panel's visibility.
type State int

const (
	StateClosed State = iota
	StateDocked
	StateExpanded
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateDocked:
		return "docked"
	case StateExpanded:
		return "expanded"
	}
	return "unknown"
}

func (s State) IsOpen() bool {
	return s == StateDocked || s == StateExpanded
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for _, known := range []State{StateClosed, StateDocked, StateExpanded} {
		if known.String() == string(text) {
			*s = known
			return nil
		}
	}
	return fmt.Errorf("unknown panel state %q", text)
}

// Gesture is the pointer interaction in progress while docked.
type Gesture int

const (
	GestureIdle Gesture = iota
	GestureDragging
	GestureResizing
)

func (g Gesture) String() string {
	switch g {
	case GestureIdle:
		return "idle"
	case GestureDragging:
		return "dragging"
	case GestureResizing:
		return "resizing"
	}
	return "unknown"
}

func (g Gesture) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Gesture) UnmarshalText(text []byte) error {
	for _, known := range []Gesture{GestureIdle, GestureDragging, GestureResizing} {
		if known.String() == string(text) {
			*g = known
			return nil
		}
	}
	return fmt.Errorf("unknown gesture %q", text)
}

// Target is the region of the panel under a pointer-down.
type Target int

const (
	TargetBody Target = iota
	TargetHeader
	// TargetHeaderControl is a button or input inside the header; it never starts a drag.
	TargetHeaderControl
	TargetResizeHandle
)

func (t Target) String() string {
	switch t {
	case TargetBody:
		return "body"
	case TargetHeader:
		return "header"
	case TargetHeaderControl:
		return "header_control"
	case TargetResizeHandle:
		return "resize_handle"
	}
	return "unknown"
}

var ErrUnknownTarget = errors.New("unknown pointer target")

func ParseTarget(raw string) (Target, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for _, t := range []Target{TargetBody, TargetHeader, TargetHeaderControl, TargetResizeHandle} {
		if t.String() == name {
			return t, nil
		}
	}
	return TargetBody, fmt.Errorf("%w %q", ErrUnknownTarget, raw)
}

// Point is a pointer position in screen pixels, or a panel offset from the
// bottom-right corner of the viewport.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Id      string `json:"id"`
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Snapshot is a copy of the whole panel state.
type Snapshot struct {
	State            State     `json:"state"`
	Gesture          Gesture   `json:"gesture"`
	Size             Size      `json:"size"`
	Position         Point     `json:"position"`
	Viewport         Viewport  `json:"viewport"`
	Input            string    `json:"input"`
	Transcript       []Message `json:"transcript"`
	Pending          bool      `json:"pending"`
	PendingReplies   int       `json:"pending_replies"`
	SuggestedPrompts []string  `json:"suggested_prompts"`
}

type EventType string

const (
	EventMessageAppended EventType = "message_appended"
	EventReplyPending    EventType = "reply_pending"
	EventPanelChanged    EventType = "panel_state"
)

// Event reports a change; Snapshot is the state right after it.
type Event struct {
	Type     EventType
	Message  *Message
	Snapshot Snapshot
}

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealScheduler schedules on the runtime timer heap.
var RealScheduler Scheduler = realScheduler{}
