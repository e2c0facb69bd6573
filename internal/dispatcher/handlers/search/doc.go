// Package search provides handlers for search mode.
//
// Actions:
//
//   - search.setQuery: set the query from the pattern (or text) argument
//   - search.accept: find every match and select the one nearest the cursor
//   - search.next, search.previous: step through matches [count] times,
//     wrapping at either end
//
// The handlers delegate to the application's search commands, which
// operate on the search mode state of the current buffer.
package search
