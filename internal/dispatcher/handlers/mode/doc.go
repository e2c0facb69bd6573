// Package mode provides handlers for switching between editor modes.
//
// Each action asks the mode manager to enter one mode:
//
//   - mode.normal
//   - mode.insert
//   - mode.select (anchored at the cursor)
//   - mode.selectLine (anchored at the cursor line)
//   - mode.search (seeded with the last accepted query)
//
// Entering any mode other than normal needs an open buffer; the manager
// reports the error and the mode is left unchanged.
package mode
