package codec

import (
	"github.com/blang/semver/v4"
)

// FormatVersion is the canonical-encoding schema version. It changes
// only when Encode's byte layout changes, independent of any module
// release version. CheckFormatVersion plays the same compatibility-gate
// role here that constraint.System.CheckSerializationHeader plays for
// GnarkVersion: a hard mismatch is surfaced to the caller rather than
// silently accepted, since a layout change without a bump would
// corrupt every downstream hash comparison.
var FormatVersion = semver.MustParse("1.0.0")

// formatVersionTag packs FormatVersion's major/minor/patch into the 4
// bytes PersistWithVersion prepends: one byte each for major, minor,
// patch, and a reserved zero byte.
var formatVersionTag = uint32(FormatVersion.Major)<<24 | uint32(FormatVersion.Minor)<<16 | uint32(FormatVersion.Patch)<<8

// CheckFormatVersion parses the 4-byte tag produced by
// PersistWithVersion and reports whether it is exactly FormatVersion.
// A caller that reads a mismatched tag should treat the payload as
// untrustworthy rather than attempt to decode it.
func CheckFormatVersion(tag uint32) error {
	major := byte(tag >> 24)
	minor := byte(tag >> 16)
	patch := byte(tag >> 8)
	if uint64(major) != FormatVersion.Major || uint64(minor) != FormatVersion.Minor || uint64(patch) != FormatVersion.Patch {
		return ErrFormatVersionMismatch
	}
	return nil
}
