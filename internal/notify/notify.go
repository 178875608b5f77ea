// Package notify posts desktop notifications after exports and clipboard
// copies.
package notify

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const appName = "troid"

// Event identifies a notification trigger.
type Event string

const (
	// EventSave fires when a drawing is written to disk.
	EventSave Event = "save"
	// EventCopy fires when the ink layer is copied to the clipboard.
	EventCopy Event = "copy"
)

// Preferences holds the notification title and a body template per event.
type Preferences struct {
	Title     string
	Templates map[Event]string
}

// DefaultPreferences returns the built in wording.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "troid",
		Templates: map[Event]string{
			EventSave: "Saved %s",
			EventCopy: "Copied %s to clipboard",
		},
	}
}

// LoadPreferences applies TROID_NOTIFY_* environment overrides to the defaults.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("TROID_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			prefs.Templates[event] = v
		}
	}
	apply("TROID_NOTIFY_SAVE_TEXT", EventSave)
	apply("TROID_NOTIFY_COPY_TEXT", EventCopy)
	return prefs
}

// send is swapped out in tests.
var send = desktopNotify

// Notifier sends notifications for the events that are enabled. A nil
// Notifier is silent.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
}

// New creates a Notifier with every event disabled.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Templates: make(map[Event]string, len(prefs.Templates))}
	for k, v := range prefs.Templates {
		cloned.Templates[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool)}
}

// Enable toggles event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	n.enabled[event] = enabled
}

// Save announces a written file. The saved image doubles as the icon.
func (n *Notifier) Save(path string) {
	if !n.enabledFor(EventSave) {
		return
	}
	detail := strings.TrimSpace(path)
	icon := ""
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
		if strings.HasSuffix(abs, ".png") {
			if _, err := os.Stat(abs); err == nil {
				icon = abs
			}
		}
	}
	n.dispatch(EventSave, detail, icon)
}

// Copy announces a clipboard copy.
func (n *Notifier) Copy(detail string) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "drawing"
	}
	n.dispatch(EventCopy, detail, "")
}

func (n *Notifier) enabledFor(event Event) bool {
	return n != nil && n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail, icon string) {
	template := strings.TrimSpace(n.prefs.Templates[event])
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := send(n.prefs.Title, body, icon); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}
