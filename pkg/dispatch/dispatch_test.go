package dispatch

import (
	"fmt"
	"time"

	"commandkit/pkg/command"
	"commandkit/pkg/platform"
)

// --- test doubles -----------------------------------------------------------

// fakeSender records messages and answers permission checks from a set.
type fakeSender struct {
	name     string
	id       string // empty means anonymous
	perms    map[string]bool
	messages []string
}

func newFakeSender(name, id string, perms ...string) *fakeSender {
	s := &fakeSender{name: name, id: id, perms: map[string]bool{}}
	for _, p := range perms {
		s.perms[p] = true
	}
	return s
}

func (s *fakeSender) Name() string { return s.name }
func (s *fakeSender) HasPermission(permission string) bool {
	return s.perms[permission]
}
func (s *fakeSender) SendMessage(message string) {
	s.messages = append(s.messages, message)
}

// identifiedSender adds the Identifiable capability.
type identifiedSender struct{ *fakeSender }

func (s identifiedSender) ID() string { return s.id }

func player(name string, perms ...string) identifiedSender {
	return identifiedSender{newFakeSender(name, name, perms...)}
}

// fakeTable records installed entries and can be told to fail.
type fakeTable struct {
	entries    map[string]platform.Entry
	installErr error
}

func newFakeTable() *fakeTable {
	return &fakeTable{entries: map[string]platform.Entry{}}
}

func (t *fakeTable) Install(entry platform.Entry) error {
	if t.installErr != nil {
		return t.installErr
	}
	t.entries[entry.Name] = entry
	return nil
}

// inlineScheduler runs tasks immediately on the calling goroutine and counts
// which path was taken.
type inlineScheduler struct {
	syncRuns  int
	asyncRuns int
}

func (s *inlineScheduler) RunSync(task platform.Task) {
	s.syncRuns++
	task()
}

func (s *inlineScheduler) RunAsync(task platform.Task) {
	s.asyncRuns++
	task()
}

// fakeClock drives cooldown windows deterministically.
type fakeClock struct{ now time.Time }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// --- handlers ---------------------------------------------------------------

// scriptedHandler is a configurable handler whose callbacks count invocations.
type scriptedHandler struct {
	desc     command.Descriptor
	rootRuns int
	rootArgs []string
	suggest  func(ctx *command.Context) []string
}

func (h *scriptedHandler) Describe() command.Descriptor { return h.desc }
func (h *scriptedHandler) Execute(ctx *command.Context) {
	h.rootRuns++
	h.rootArgs = ctx.Args
}

// suggestingHandler is a scriptedHandler with the Suggester capability.
type suggestingHandler struct{ scriptedHandler }

func (h *suggestingHandler) Suggest(ctx *command.Context) []string {
	if h.suggest == nil {
		return nil
	}
	return h.suggest(ctx)
}

func strptr(s string) *string { return &s }

// testEngine builds an engine over fresh fakes.
func testEngine(opts ...Option) (*Engine, *fakeTable, *inlineScheduler, *fakeClock) {
	table := newFakeTable()
	sched := &inlineScheduler{}
	clk := newClock()
	all := append([]Option{WithClock(clk)}, opts...)
	return New(table, sched, all...), table, sched, clk
}

// invoke runs a command through the executor installed in the table, the way
// a host would.
func invoke(t *fakeTable, name string, sender platform.Sender, label string, args ...string) bool {
	entry, ok := t.entries[name]
	if !ok {
		panic(fmt.Sprintf("no entry installed for %q", name))
	}
	return entry.Executor.OnCommand(sender, label, args)
}

func complete(t *fakeTable, name string, sender platform.Sender, label string, args ...string) []string {
	entry, ok := t.entries[name]
	if !ok {
		panic(fmt.Sprintf("no entry installed for %q", name))
	}
	return entry.Executor.OnTabComplete(sender, label, args)
}
