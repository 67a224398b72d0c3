package diagram

import "errors"

// Decode and encode failures are deterministic validation errors; callers
// match them with errors.Is.
var (
	// ErrEmpty is returned when encoding a diagram with no populated cells.
	ErrEmpty = errors.New("diagram is empty")
	// ErrChecksum is returned when the trailing checksum byte does not match.
	ErrChecksum = errors.New("invalid checksum")
	// ErrVersion is returned when the indices version bits do not match the layout.
	ErrVersion = errors.New("invalid diagram version")
	// ErrSize is returned when the encoded data is too short to hold the layout.
	ErrSize = errors.New("invalid secret size")
	// ErrUTF8 is returned when the character region is not valid UTF-8.
	ErrUTF8 = errors.New("invalid utf8 chars")
	// ErrCellOverflow is returned when a complex cell exceeds 50 characters.
	ErrCellOverflow = errors.New("cell value too long")
	// ErrParameter is returned when lengths or indices are inconsistent.
	ErrParameter = errors.New("invalid parameter")
)
