// Package jsonscan provides a minimal, single-sweep scanner over the
// JSON subset used by spatial-network exports (objects, arrays, raw
// strings), designed so that graph construction can be driven directly
// off the byte stream with no intermediate document tree.
//
// What:
//
//   - Scanner: a character-at-a-time reader that maintains exactly three
//     pieces of state — object depth, array depth, and an in-string
//     flag. A double quote toggles the string flag; while inside a
//     string, delimiter characters are inert. Every higher-level
//     operation is a monotonic forward scan expressed as "read until
//     the depth counters satisfy a condition".
//   - ScanField / ScanList: the any-order cursor. ScanField enters the
//     next object and performs streaming multi-pattern matching against
//     a set of candidate keys, invoking a handler once per full match;
//     only keys one object level below the entry point are considered.
//     ScanList enters the next array and invokes a handler per element.
//   - ReadToKey / BeginField / EndField / BeginList / EndList: the
//     strict-order cursor. Faster, but only correct when keys appear in
//     the exact canonical order of the export.
//   - ExtractString: copies the next quoted string verbatim (backslash
//     sequences are NOT unescaped) and appends the Terminator byte.
//     The terminator is part of the identifier's canonical form; every
//     lookup elsewhere must apply the same convention.
//
// Why:
//
//	Network exports run to gigabytes; a DOM parse would dominate the
//	whole analysis. The scanner reads each byte exactly once and keeps
//	O(1) state, so parsing cost is the cost of streaming the file.
//
// Failure policy:
//
//	A failed field/list scan (structure closed before the target was
//	found) is reported via the boolean result and is non-fatal; callers
//	skip the record. Running out of input before a structure closes is
//	a hard failure: every primitive returns ErrUnexpectedEOF.
//
// Complexity:
//
//   - All primitives: Time O(bytes consumed), Memory O(1)
//     (ScanField adds O(#keys) match-position state).
//
// Errors:
//
//   - ErrUnexpectedEOF — input ended before the expected structure closed.
package jsonscan
