// Package core provides the widget instance lifecycle shared by every widget.
//
// An [Instance] moves through two phases:
//
//	Constructed ──Mount──► Mounted ──Dispose──► Disposed
//
// While Constructed the widget's cells exist but its DOM subtree does not.
// Bindings declared in this phase wait in the [binding.Binder], animation
// requests wait in the [animation.Scheduler]. Mount builds the subtree, then
// installs bindings, then starts queued animations, so the DOM always exists
// before anything writes to it.
//
// Dispose cancels every animation (infinite loops included), closes every
// binding, runs disposers in reverse registration order and detaches the
// subtree.
//
// # Events
//
// Widgets talk to their parent only through [Event] values. Emit is called
// after a committed transition, never on intermediate animation frames.
//
// # Hooks
//
// [UseDisposable], [UseSubscription] and [UseInterval] tie resources to the
// instance lifetime so teardown is automatic.
package core
