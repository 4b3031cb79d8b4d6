// Package replay drives a navigation tree with a sequence of events and
// records what happened at every step.
package replay

import (
	"context"
	"fmt"
	"strings"

	"github.com/oakwood-commons/navtree/pkg/logger"
	"github.com/oakwood-commons/navtree/pkg/navtree"
)

// Notification is one focus change delivered to a node.
type Notification struct {
	Node    string   `json:"node" yaml:"node"`
	Path    []string `json:"path,omitempty" yaml:"path,omitempty"`
	Focused bool     `json:"focused" yaml:"focused"`
}

func (n Notification) String() string {
	if !n.Focused {
		return n.Node + " -"
	}
	return fmt.Sprintf("%s +[%s]", n.Node, strings.Join(n.Path, "/"))
}

// Step is the result of resolving a single event.
type Step struct {
	Index         int            `json:"index" yaml:"index"`
	Event         navtree.Event  `json:"event" yaml:"event"`
	Outcome       string         `json:"outcome" yaml:"outcome"`
	Target        string         `json:"target,omitempty" yaml:"target,omitempty"`
	Focused       []string       `json:"focused" yaml:"focused"`
	Notifications []Notification `json:"notifications,omitempty" yaml:"notifications,omitempty"`
}

// Report is a complete replay.
type Report struct {
	Layout  string   `json:"layout,omitempty" yaml:"layout,omitempty"`
	Initial []string `json:"initial" yaml:"initial"`
	Steps   []Step   `json:"steps" yaml:"steps"`
}

// Recorder collects notifications from every node it observes.
type Recorder struct {
	pending []Notification
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe returns a notification sink for n. It matches the Observe hook
// of layout.BuildOptions.
func (r *Recorder) Observe(n *navtree.Node) navtree.NotifyFunc {
	label := Label(n)
	return func(path []string, focused bool) {
		r.pending = append(r.pending, Notification{Node: label, Path: path, Focused: focused})
	}
}

// Drain returns the notifications recorded since the last call.
func (r *Recorder) Drain() []Notification {
	out := r.pending
	r.pending = nil
	return out
}

// Label names a node by its ids from the root, including the root's own.
func Label(n *navtree.Node) string {
	return strings.Join(append([]string{n.Root().ID()}, n.Path()...), "/")
}

// Apply resolves a single event on root's tree.
func Apply(root *navtree.Node, rec *Recorder, index int, ev navtree.Event) Step {
	if rec != nil {
		rec.Drain()
	}
	target, outcome := root.Resolve(ev)
	step := Step{
		Index:   index,
		Event:   ev,
		Outcome: outcome.String(),
		Focused: root.FocusedPath(),
	}
	if target != nil {
		step.Target = Label(target)
	}
	if rec != nil {
		step.Notifications = rec.Drain()
	}
	return step
}

// Run applies events in order. It stops early when ctx is cancelled.
func Run(ctx context.Context, root *navtree.Node, rec *Recorder, events []navtree.Event) (*Report, error) {
	lgr := logger.FromContext(ctx)
	report := &Report{Initial: root.FocusedPath(), Steps: make([]Step, 0, len(events))}
	for i, ev := range events {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("replay interrupted at step %d: %w", i+1, err)
		}
		step := Apply(root, rec, i+1, ev)
		lgr.V(1).Info("replayed event", "step", step.Index, "event", ev, "outcome", step.Outcome, "focused", step.Focused)
		report.Steps = append(report.Steps, step)
	}
	return report, nil
}

// ParseEvents turns event names into events. Names are lower-cased; any
// name is accepted since resolvers may react to custom events.
func ParseEvents(names []string) ([]navtree.Event, error) {
	events := make([]navtree.Event, 0, len(names))
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			if strings.ContainsAny(part, " \t") {
				return nil, fmt.Errorf("invalid event name %q", part)
			}
			events = append(events, navtree.Event(part))
		}
	}
	return events, nil
}
