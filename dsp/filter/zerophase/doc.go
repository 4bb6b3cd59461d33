// Package zerophase implements forward-backward ("filtfilt") filtering.
//
// [Apply] runs a signal through a forward pass, reverses it, runs it through
// an independent backward pass and reverses it again. The phase responses of
// the two passes cancel and the magnitude response is squared.
//
// Both passes must own their own state. Passing the same instance twice is
// rejected with [ErrSharedState].
//
// Three edge policies are available:
//
//   - [EdgeNone] runs both passes from a cold state with no padding. The first
//     and last samples carry start-up transients.
//   - [EdgeWarmUp] first feeds the unreversed signal through the backward
//     pass and discards the output, so the backward pass starts warm. This is
//     a heuristic: it shortens the tail transient but does not remove it.
//   - [EdgeOddExtension] pads both ends with an odd reflection of the signal,
//     primes each pass at steady state when it implements [SteadyStater], and
//     strips the padding afterwards (Gustafsson, 1996).
package zerophase
