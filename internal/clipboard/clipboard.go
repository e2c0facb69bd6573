// Package clipboard holds the most recently copied text and keeps it in step
// with the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrSync is wrapped by errors from the system clipboard integration.
var ErrSync = errors.New("clipboard sync failed")

// ErrUnavailable is returned by SystemSyncer when no clipboard utility is
// present on the host.
var ErrUnavailable = errors.New("system clipboard unavailable")

// Kind tells paste how to place copied text.
type Kind uint8

const (
	// None means nothing has been copied.
	None Kind = iota
	// Inline is text from a character-wise selection, pasted at the cursor.
	Inline
	// Block is text from a line-wise selection, pasted as whole lines.
	Block
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Inline:
		return "inline"
	case Block:
		return "block"
	default:
		return "none"
	}
}

// Content is the tagged clipboard payload.
type Content struct {
	Kind Kind
	Text string
}

// NewInline returns character-wise content.
func NewInline(text string) Content {
	return Content{Kind: Inline, Text: text}
}

// NewBlock returns line-wise content.
func NewBlock(text string) Content {
	return Content{Kind: Block, Text: text}
}

// IsEmpty reports whether there is nothing to paste.
func (c Content) IsEmpty() bool {
	return c.Kind == None
}

// Syncer mirrors clipboard text to and from another store.
type Syncer interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

// SystemSyncer syncs with the operating system clipboard.
type SystemSyncer struct{}

// WriteAll copies text to the system clipboard.
func (SystemSyncer) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// ReadAll returns the system clipboard text.
func (SystemSyncer) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

// Clipboard is the single copy slot. Each SetContent replaces the previous
// content.
type Clipboard struct {
	mu      sync.Mutex
	content Content
	syncer  Syncer

	// synced is the text last exchanged with the syncer, used to tell
	// whether the system clipboard changed behind our back.
	synced string
}

// New creates a clipboard. A nil syncer keeps the clipboard in-process.
func New(syncer Syncer) *Clipboard {
	return &Clipboard{syncer: syncer}
}

// SetContent stores content and pushes its text to the syncer.
// The content is stored even when the sync fails; the returned error
// wraps ErrSync.
func (c *Clipboard) SetContent(content Content) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.content = content
	if c.syncer == nil {
		return nil
	}
	if err := c.syncer.WriteAll(content.Text); err != nil {
		return fmt.Errorf("%w: %v", ErrSync, err)
	}
	c.synced = content.Text
	return nil
}

// Content returns the text to paste. When the system clipboard holds text
// that was not written by this clipboard, that text wins and is returned as
// Inline content.
func (c *Clipboard) Content() Content {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.syncer == nil {
		return c.content
	}
	text, err := c.syncer.ReadAll()
	if err != nil || text == "" || text == c.synced {
		return c.content
	}

	c.synced = text
	c.content = NewInline(text)
	return c.content
}

// Stored returns the stored content without consulting the syncer.
func (c *Clipboard) Stored() Content {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content
}
