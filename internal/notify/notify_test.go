package notify

import (
	"os"
	"path/filepath"
	"testing"
)

type sent struct{ title, body, icon string }

func capture(t *testing.T) *[]sent {
	t.Helper()
	var got []sent
	prev := send
	send = func(title, body, icon string) error {
		got = append(got, sent{title, body, icon})
		return nil
	}
	t.Cleanup(func() { send = prev })
	return &got
}

func TestDisabledEventsAreSilent(t *testing.T) {
	got := capture(t)
	n := New(DefaultPreferences())
	n.Save("a.png")
	n.Copy("")
	var nilNotifier *Notifier
	nilNotifier.Copy("x")
	nilNotifier.Enable(EventCopy, true)
	if len(*got) != 0 {
		t.Fatalf("unexpected notifications: %+v", *got)
	}
}

func TestSaveUsesImageAsIcon(t *testing.T) {
	got := capture(t)
	path := filepath.Join(t.TempDir(), "troid-x.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	n := New(DefaultPreferences())
	n.Enable(EventSave, true)
	n.Save(path)
	if len(*got) != 1 {
		t.Fatalf("got %d notifications", len(*got))
	}
	if (*got)[0].body != "Saved "+path || (*got)[0].icon != path {
		t.Fatalf("notification = %+v", (*got)[0])
	}
}

func TestCopyDefaultDetail(t *testing.T) {
	got := capture(t)
	n := New(DefaultPreferences())
	n.Enable(EventCopy, true)
	n.Copy(" ")
	if len(*got) != 1 || (*got)[0].body != "Copied drawing to clipboard" || (*got)[0].title != "troid" {
		t.Fatalf("notifications = %+v", *got)
	}
}

func TestLoadPreferencesEnv(t *testing.T) {
	t.Setenv("TROID_NOTIFY_TITLE", "Sketch")
	t.Setenv("TROID_NOTIFY_SAVE_TEXT", "Wrote %s")
	prefs := LoadPreferences()
	if prefs.Title != "Sketch" {
		t.Errorf("title = %q", prefs.Title)
	}
	if prefs.Templates[EventSave] != "Wrote %s" {
		t.Errorf("save template = %q", prefs.Templates[EventSave])
	}
	if prefs.Templates[EventCopy] != DefaultPreferences().Templates[EventCopy] {
		t.Errorf("copy template changed: %q", prefs.Templates[EventCopy])
	}
}
