// Package external holds the side-effecting collaborators the tracker calls
// but does not implement: opening a voting site and copying the display name.
package external

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// ActionError reports a failed best-effort action. Callers show it as a
// transient message; it never changes tracker state.
type ActionError struct {
	Action string
	Err    error
}

func (e ActionError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Action, e.Err)
}

func (e ActionError) Unwrap() error { return e.Err }

type Opener interface {
	Open(url string) error
}

type Clipboard interface {
	Copy(text string) error
}

// BrowserOpener opens URLs in the user's default browser.
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return ActionError{Action: "open " + url, Err: err}
	}
	return nil
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return ActionError{Action: "copy", Err: fmt.Errorf("no clipboard utility available")}
	}
	if err := clipboard.WriteAll(text); err != nil {
		return ActionError{Action: "copy", Err: err}
	}
	return nil
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error { return f(url) }

// ClipboardFunc adapts a function to Clipboard.
type ClipboardFunc func(text string) error

func (f ClipboardFunc) Copy(text string) error { return f(text) }
