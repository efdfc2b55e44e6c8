// Package errs collects the sentinel errors shared across the codec
// and bridge layers, so callers can use errors.Is/errors.As instead of
// matching on message text.
package errs

import "errors"

var (
	// ErrShortRead is wrapped whenever a binary cursor runs out of bytes
	// mid-record.
	ErrShortRead = errors.New("short read")
	// ErrShortWrite is wrapped whenever a binary cursor runs out of room
	// mid-record.
	ErrShortWrite = errors.New("short write")
	// ErrBadMagic is returned when a save file's header does not begin
	// with the expected "COLONIZE\x00" signature.
	ErrBadMagic = errors.New("bad magic: not a Colonization save file")
	// ErrMapTooSmall is returned when a map's declared dimensions are
	// smaller than the minimum 3x3 the outer invisible ring requires.
	ErrMapTooSmall = errors.New("map dimensions must be at least 3x3")
	// ErrCountMismatch is returned when a header's declared vector count
	// does not match the actual vector length being written.
	ErrCountMismatch = errors.New("header count does not match vector length")

	// ErrIndependenceInvariant is returned by the bridge when a save's
	// independence-declared state does not match exactly one human
	// declarer and exactly one AI REF slot.
	ErrIndependenceInvariant = errors.New("invalid independence/REF slot configuration")
	// ErrMultipleREF is returned when more than one modern player is
	// flagged as REF during a modern-to-legacy conversion.
	ErrMultipleREF = errors.New("more than one REF player present")
	// ErrHumanREF is returned when a modern REF player is human-controlled.
	ErrHumanREF = errors.New("REF player cannot be human-controlled")

	// ErrTooManyTradeRoutes is returned when a modern save has more
	// trade routes than the legacy format's fixed capacity of 12.
	ErrTooManyTradeRoutes = errors.New("too many trade routes (legacy format supports at most 12)")
	// ErrTooManyStops is returned when a trade route has more than 4 stops.
	ErrTooManyStops = errors.New("too many stops (legacy format supports at most 4 per route)")
	// ErrTooManyCargoSlots is returned when a stop has more than 6
	// load/unload commodity slots.
	ErrTooManyCargoSlots = errors.New("too many cargo slots (legacy format supports at most 6 per stop)")
	// ErrRouteNameTooLong is returned when a trade route name exceeds 32 bytes.
	ErrRouteNameTooLong = errors.New("trade route name exceeds 32 bytes")
	// ErrNotHumanOwned is returned when a trade route is owned by a
	// non-human player (the legacy format only supports the human player
	// owning trade routes).
	ErrNotHumanOwned = errors.New("trade routes must be owned by the human player")

	// ErrUnsupportedTerrain names the case of a tile's terrain
	// combination (e.g. a major river on mountains) having no
	// representation in the target format. The bridge's terrain
	// translation reports those cases with its own error messages and
	// does not return or wrap this value.
	ErrUnsupportedTerrain = errors.New("unsupported terrain feature")
)
