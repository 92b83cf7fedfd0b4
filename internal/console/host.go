package console

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"commandkit/pkg/platform"
)

// Host binds the dispatch engine to an interactive readline session. It is
// the installation table commands land in and the loop that feeds them.
type Host struct {
	entries map[string]platform.Entry
	order   []string
	store   *Store
	log     *zap.Logger

	// current is whoever is logged in; nil means the anonymous console
	// operator. The REPL is single-goroutine so no lock is needed.
	current platform.Sender
	user    string
}

// NewHost creates a Host backed by the given store.
func NewHost(store *Store, log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	return &Host{
		entries: make(map[string]platform.Entry),
		store:   store,
		log:     log,
	}
}

// Install registers an entry under its name and every alias.
func (h *Host) Install(entry platform.Entry) error {
	labels := append([]string{entry.Name}, entry.Aliases...)
	for _, label := range labels {
		if existing, ok := h.entries[label]; ok {
			return fmt.Errorf("label %q already installed for %q", label, existing.Name)
		}
	}
	for _, label := range labels {
		h.entries[label] = entry
	}
	h.order = append(h.order, entry.Name)
	return nil
}

// Sender returns whoever is currently driving the session.
func (h *Host) Sender() platform.Sender {
	if h.current != nil {
		return h.current
	}
	return consoleSender{}
}

// Login switches the session to the named user. Their permission grants come
// from the store.
func (h *Host) Login(name string) {
	h.user = name
	h.current = &userSender{name: name, store: h.store}
}

// Logout drops back to the anonymous console operator.
func (h *Host) Logout() {
	h.user = ""
	h.current = nil
}

// Run drives the REPL until EOF, interrupt, or quit.
func (h *Host) Run(rl *readline.Instance) error {
	rl.Config.AutoComplete = &completer{host: h}
	base := rl.Config.Prompt
	for {
		rl.SetPrompt(h.prompt(base))
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		if h.builtin(tokens) {
			continue
		}
		if quitRequested(tokens[0]) {
			fmt.Println("Bye.")
			return nil
		}
		h.dispatch(line, tokens)
	}
}

func (h *Host) prompt(base string) string {
	if h.user == "" {
		return base
	}
	return h.user + base
}

func quitRequested(token string) bool {
	switch strings.ToLower(token) {
	case "quit", "exit", "q":
		return true
	}
	return false
}

// builtin handles session commands that never reach the engine. Returns true
// when the line was consumed.
func (h *Host) builtin(tokens []string) bool {
	switch strings.ToLower(tokens[0]) {
	case "help", "?":
		h.printHelp()
		return true
	case "login":
		if len(tokens) < 2 {
			fmt.Println("Usage: login <name>")
			return true
		}
		h.Login(tokens[1])
		fmt.Printf("Logged in as %s.\n", tokens[1])
		return true
	case "logout":
		h.Logout()
		fmt.Println("Back to console.")
		return true
	case "whoami":
		fmt.Println(h.Sender().Name())
		return true
	}
	return false
}

func (h *Host) printHelp() {
	names := append([]string(nil), h.order...)
	sort.Strings(names)
	fmt.Println("Commands:")
	for _, name := range names {
		fmt.Printf("  %-12s %s\n", name, h.entries[name].Description)
	}
	fmt.Println("Session: help, login <name>, logout, whoami, quit")
}

func (h *Host) dispatch(line string, tokens []string) {
	label := strings.ToLower(tokens[0])
	entry, ok := h.entries[label]
	if !ok {
		fmt.Printf("Unknown command %q. Try 'help'.\n", tokens[0])
		return
	}

	sender := h.Sender()
	if !entry.Executor.OnCommand(sender, label, tokens[1:]) {
		return
	}

	if h.user != "" {
		err := h.store.AppendHistory(h.user, HistoryRecord{
			Command:  entry.Name,
			Line:     line,
			Datetime: time.Now(),
		})
		if err != nil {
			h.log.Warn("failed to record history",
				zap.String("user", h.user), zap.Error(err))
		}
	}
}

// completer adapts installed entries to readline's tab completion. The first
// token completes command labels; later tokens are delegated to the entry.
type completer struct {
	host *Host
}

func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	tokens := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ") || text == ""

	// Completing the command name itself.
	if len(tokens) == 0 || (len(tokens) == 1 && !trailingSpace) {
		prefix := ""
		if len(tokens) == 1 {
			prefix = tokens[0]
		}
		return candidates(c.labelMatches(prefix), len(prefix))
	}

	label := strings.ToLower(tokens[0])
	entry, ok := c.host.entries[label]
	if !ok {
		return nil, 0
	}

	args := tokens[1:]
	if trailingSpace {
		args = append(args, "")
	}
	partial := args[len(args)-1]

	options := entry.Executor.OnTabComplete(c.host.Sender(), label, args)
	var matches []string
	for _, option := range options {
		if strings.HasPrefix(strings.ToLower(option), strings.ToLower(partial)) {
			matches = append(matches, option)
		}
	}
	return candidates(matches, len(partial))
}

func (c *completer) labelMatches(prefix string) []string {
	lower := strings.ToLower(prefix)
	var matches []string
	for label := range c.host.entries {
		if strings.HasPrefix(label, lower) {
			matches = append(matches, label)
		}
	}
	sort.Strings(matches)
	return matches
}

// candidates converts matches to readline's suffix form: each candidate is
// the remainder after the typed prefix, plus a trailing space.
func candidates(matches []string, prefixLen int) ([][]rune, int) {
	out := make([][]rune, 0, len(matches))
	for _, match := range matches {
		if len(match) < prefixLen {
			continue
		}
		out = append(out, []rune(match[prefixLen:]+" "))
	}
	return out, prefixLen
}
