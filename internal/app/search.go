package app

import (
	"github.com/dshills/cutline/internal/input/mode"
	"github.com/dshills/cutline/internal/search"
)

// searchController runs search mode commands against the current document.
type searchController struct {
	app *Application
}

func (s searchController) searchMode() (mode.Search, error) {
	m, ok := s.app.modeManager.Current().(mode.Search)
	if !ok {
		return mode.Search{}, ErrNotSearching
	}
	return m, nil
}

// SetQuery replaces the pending query and drops earlier results.
func (s searchController) SetQuery(query string) error {
	if _, err := s.searchMode(); err != nil {
		return err
	}
	s.app.modeManager.Update(mode.Search{Query: query})
	return nil
}

// Accept runs the pending query, selects the match closest to the cursor
// and moves the cursor to it.
func (s searchController) Accept() error {
	m, err := s.searchMode()
	if err != nil {
		return err
	}
	doc := s.app.current()
	if doc == nil {
		return ErrBufferMissing
	}
	if m.Query == "" {
		return ErrNoQuery
	}

	results := search.Find(m.Query, doc.Engine.Data(), s.app.config.Search.CaseInsensitive)

	s.app.mu.Lock()
	s.app.lastQuery = m.Query
	s.app.mu.Unlock()

	if results.Len() == 0 {
		s.app.modeManager.Update(mode.Search{Query: m.Query})
		return NewOperationError("search", m.Query, ErrNoMatches)
	}

	results.SelectClosest(doc.Engine.Cursor().Position())
	s.app.modeManager.Update(mode.Search{Query: m.Query, Results: results})

	s.app.Logger().WithField("query", m.Query).Debug("search found %d matches", results.Len())
	return s.moveToSelection(doc, results)
}

// Next selects the following match, wrapping around.
func (s searchController) Next() error {
	return s.step((*search.ResultSet).SelectNext)
}

// Previous selects the preceding match, wrapping around.
func (s searchController) Previous() error {
	return s.step((*search.ResultSet).SelectPrevious)
}

func (s searchController) step(advance func(*search.ResultSet)) error {
	m, err := s.searchMode()
	if err != nil {
		return err
	}
	doc := s.app.current()
	if doc == nil {
		return ErrBufferMissing
	}
	if m.Results.Len() == 0 {
		return ErrNoMatches
	}
	advance(m.Results)
	return s.moveToSelection(doc, m.Results)
}

func (s searchController) moveToSelection(doc *Document, results *search.ResultSet) error {
	match, ok := results.Selection()
	if !ok {
		return ErrNoMatches
	}
	doc.Engine.Cursor().MoveTo(match.Start)
	s.app.Logger().WithComponent("search").Debug("match %d of %d at %s", results.Index()+1, results.Len(), match.Start)
	return viewController{s.app}.ScrollToCursor()
}
