package cache

import "errors"

// Entries carry a one byte tag so a cached miss marker can never be
// confused with a resolved value, whatever bytes the value contains.
const (
	tagValue byte = 'v'
	tagMiss  byte = 'm'
)

var errCorruptEntry = errors.New("cache: corrupt entry encoding")

func encodeValue(value string) []byte {
	buf := make([]byte, 1+len(value))
	buf[0] = tagValue
	copy(buf[1:], value)
	return buf
}

func encodeMiss() []byte {
	return []byte{tagMiss}
}

func decodeEntry(data []byte) (string, ProbeState, error) {
	if len(data) == 0 {
		return "", ProbeUnknown, errCorruptEntry
	}
	switch data[0] {
	case tagValue:
		return string(data[1:]), ProbeHit, nil
	case tagMiss:
		return "", ProbeMissing, nil
	default:
		return "", ProbeUnknown, errCorruptEntry
	}
}
