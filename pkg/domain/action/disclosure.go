package action

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Disclosure states. Untyped so they convert to statekit.StateID directly.
const (
	StateCollapsed = "collapsed"
	StateExpanded  = "expanded"
)

// Disclosure events.
const (
	EventExpand   = "expand"
	EventCollapse = "collapse"
	EventToggle   = "toggle"
)

type disclosureContext struct{}

// Disclosure tracks whether a view shows its top items or the full list.
type Disclosure struct {
	interpreter *statekit.Interpreter[disclosureContext]
}

// NewDisclosure builds the collapsed/expanded machine starting in the
// expanded state when showAll is set.
func NewDisclosure(showAll bool) (*Disclosure, error) {
	initial := StateCollapsed
	if showAll {
		initial = StateExpanded
	}

	builder := statekit.NewMachine[disclosureContext]("disclosure").
		WithInitial(statekit.StateID(initial)).
		WithContext(disclosureContext{})

	builder.State(StateCollapsed).
		On(EventExpand).Target(StateExpanded).
		On(EventToggle).Target(StateExpanded).
		Done()

	builder.State(StateExpanded).
		On(EventCollapse).Target(StateCollapsed).
		On(EventToggle).Target(StateCollapsed).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build disclosure machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &Disclosure{interpreter: interpreter}, nil
}

// Send applies an event. Events that do not apply in the current state
// (expanding an expanded view) leave it unchanged.
func (d *Disclosure) Send(event string) {
	d.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
}

func (d *Disclosure) Current() string {
	return string(d.interpreter.State().Value)
}

// Expanded returns true if the full list is shown.
func (d *Disclosure) Expanded() bool {
	return d.Current() == StateExpanded
}
