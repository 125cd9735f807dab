package proto

// SplitSpeeds expands one packed byte into independent left/right
// wheel-speed magnitudes. The high nibble is the left wheel, the low
// nibble the right; each nibble is rescaled to 0-100 with truncating
// integer arithmetic, so the 16 achievable values per wheel are
// 0, 6, 13, 20, 26, 33, 40, 46, 53, 60, 66, 73, 80, 86, 93, 100.
func SplitSpeeds(b byte) (left, right int) {
	return int(b>>4) * 100 / 15, int(b&0x0f) * 100 / 15
}

// PackSpeeds is the inverse direction: it quantizes two 0-100
// magnitudes into one packed byte. Out-of-range values are clamped.
func PackSpeeds(left, right int) byte {
	return clampNibble(left)<<4 | clampNibble(right)
}

func clampNibble(speed int) byte {
	if speed <= 0 {
		return 0
	}
	if speed >= 100 {
		return 15
	}
	// Round to the nearest nibble so SplitSpeeds round-trips.
	return byte((speed*15 + 50) / 100)
}
