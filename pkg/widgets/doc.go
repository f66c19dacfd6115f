// Package widgets provides the interactive widgets: toggles, like buttons,
// a counter, a star rating, a chip input, a progress card, a task list, a
// pulse button, a hover card and a loading spinner.
//
// Every widget follows the same transition shape:
//
//  1. Check the event is legal in the current state. Illegal events are
//     reported at debug level and otherwise ignored.
//  2. Commit the new state to its cells. Bindings project it into the DOM.
//  3. Request animations for the affected slots.
//  4. Emit output events.
//
// Insertion and toggles mutate first and animate second. Removal animates
// first and mutates only when the exit animation completes; a superseded
// exit never removes anything.
//
// # Lifecycle
//
//	like := widgets.NewLikeButton(false, widgets.DefaultLikeCount)
//	like.LikedChange.Listen(func(c widgets.LikeChange) { ... })
//	like.Mount(host)
//	like.Click()
//	...
//	like.Dispose()
//
// Events may arrive before Mount. State commits immediately; animations wait
// for the DOM.
//
// # Pointer Effects
//
// Hover and press scaling is driven by [Press], one slot per element role,
// so a press that lands mid-hover supersedes the hover tween instead of
// fighting it.
package widgets
