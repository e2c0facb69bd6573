package app

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/cutline/internal/engine"
)

// Document represents an open buffer with its associated editor state.
type Document struct {
	// Path is the absolute file path (empty for scratch buffers).
	Path string

	// Name is the display name (filename or "Untitled").
	Name string

	// Engine is the text buffer and editing engine.
	Engine *engine.Engine

	// Modified indicates unsaved changes.
	modified atomic.Bool
}

// NewDocument creates a new document from a file path and its content.
func NewDocument(path string, content string) *Document {
	name := filepath.Base(path)
	if path == "" {
		name = "Untitled"
	}

	return &Document{
		Path:   path,
		Name:   name,
		Engine: engine.New(engine.WithContent(content), engine.WithPath(path)),
	}
}

// ID returns the document's identifier, shared with its engine.
func (d *Document) ID() uuid.UUID {
	return d.Engine.ID()
}

// IsModified returns true if the document has unsaved changes.
func (d *Document) IsModified() bool {
	return d.modified.Load()
}

// SetModified sets the modified flag.
func (d *Document) SetModified(modified bool) {
	d.modified.Store(modified)
}

// IsScratch returns true if this is a scratch buffer (no file path).
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// Content returns the full document content.
func (d *Document) Content() string {
	return d.Engine.Data()
}

// Save writes the document content to its path.
func (d *Document) Save() error {
	if d.IsScratch() {
		return NewOperationError("save", d.Name, ErrDocumentNotFound)
	}
	if err := os.WriteFile(d.Path, []byte(d.Content()), 0o644); err != nil {
		return NewOperationError("save", d.Path, err)
	}
	d.SetModified(false)
	return nil
}

// Workspace holds the open documents in the order they were added and
// tracks the current one.
type Workspace struct {
	mu        sync.RWMutex
	documents map[uuid.UUID]*Document
	order     []uuid.UUID
	current   *Document
}

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		documents: make(map[uuid.UUID]*Document),
	}
}

// Add appends doc and makes it current.
func (w *Workspace) Add(doc *Document) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := doc.ID()
	if _, exists := w.documents[id]; !exists {
		w.order = append(w.order, id)
	}
	w.documents[id] = doc
	w.current = doc
}

// Open reads the file at path into a new current document.
// A file that is already open becomes current instead.
func (w *Workspace) Open(path string) (*Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	w.mu.Lock()
	for _, id := range w.order {
		if doc := w.documents[id]; doc.Path == absPath {
			w.current = doc
			w.mu.Unlock()
			return doc, nil
		}
	}
	w.mu.Unlock()

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, NewOperationError("open", absPath, err)
	}

	doc := NewDocument(absPath, string(content))
	w.Add(doc)
	return doc, nil
}

// Current returns the current document, or nil when none is open.
func (w *Workspace) Current() *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Select makes the document with id current.
func (w *Workspace) Select(id uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc, exists := w.documents[id]
	if !exists {
		return ErrDocumentNotFound
	}
	w.current = doc
	return nil
}

// Get returns a document by id.
func (w *Workspace) Get(id uuid.UUID) (*Document, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	doc, exists := w.documents[id]
	return doc, exists
}

// Next makes the document after the current one current, wrapping around,
// and returns it.
func (w *Workspace) Next() *Document {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.order) == 0 || w.current == nil {
		return nil
	}

	idx := w.indexLocked(w.current.ID())
	if idx < 0 {
		return w.current
	}
	w.current = w.documents[w.order[(idx+1)%len(w.order)]]
	return w.current
}

// Close removes the document with id. Closing the current document makes
// the most recently added remaining document current.
func (w *Workspace) Close(id uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc, exists := w.documents[id]
	if !exists {
		return ErrDocumentNotFound
	}

	delete(w.documents, id)
	if idx := w.indexLocked(id); idx >= 0 {
		w.order = append(w.order[:idx], w.order[idx+1:]...)
	}

	if w.current == doc {
		w.current = nil
		if len(w.order) > 0 {
			w.current = w.documents[w.order[len(w.order)-1]]
		}
	}
	return nil
}

// All returns all open documents in order.
func (w *Workspace) All() []*Document {
	w.mu.RLock()
	defer w.mu.RUnlock()

	docs := make([]*Document, 0, len(w.order))
	for _, id := range w.order {
		docs = append(docs, w.documents[id])
	}
	return docs
}

// Count returns the number of open documents.
func (w *Workspace) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.documents)
}

func (w *Workspace) indexLocked(id uuid.UUID) int {
	for i, candidate := range w.order {
		if candidate == id {
			return i
		}
	}
	return -1
}
