package cbor

// GetKeyTstr scans c, a map body already produced by [Cursor.EnterMap],
// for a text-string key equal to key. On a match, c is left positioned at
// the matching value (as GetTstr would leave it after reading the key).
// The scan starts from c's current position, not necessarily the map's
// first key. NotFound, not an error, is returned when no key matches; c
// is then left exhausted, having scanned every remaining pair.
func (c *Cursor) GetKeyTstr(key string) Result {
	for !c.AtEnd() {
		s, res := c.GetTstr()
		if res >= 0 && s == key {
			return OK
		}
		if res < 0 {
			// Key wasn't a text string; skip over whatever it was.
			if res = c.Skip(); res < 0 {
				return res
			}
		}
		if res := c.Skip(); res < 0 {
			return res
		}
	}
	return NotFound
}
