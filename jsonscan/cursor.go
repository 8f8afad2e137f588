package jsonscan

// This file implements the any-order cursor: field and list scans that
// tolerate keys appearing in any order within an object. For the faster
// strict-order variant see strict.go.

// Quote wraps a bare key name in the double quotes it carries on the
// wire, producing the literal text ScanField and ReadToKey match
// against. Callers should precompute quoted keys once.
func Quote(key string) string { return `"` + key + `"` }

// ScanField advances to the next object (field) and streams its content
// through a multi-pattern matcher over keys. Whenever the full text of
// keys[i] has been read at exactly one object level below the entry
// point (nested sub-objects are scanned through but never matched),
// action(i) is invoked. The handler may itself consume input through
// the same Scanner — depth bookkeeping keeps the scan consistent.
//
// keys must be the quoted wire form (see Quote). Matching is a
// best-effort longest-prefix comparison run independently per key; it
// does not distinguish key position from value text, which is the
// documented tradeoff of this grammar subset.
//
// Returns false (with a nil error) when the enclosing array closes
// before any field is entered — the caller skips that record.
func (s *Scanner) ScanField(keys []string, action func(i int) error) (bool, error) {
	// 1. Remember the entry depths; pos[i] tracks the match prefix of keys[i].
	objLevel, arrLevel := s.objDepth, s.arrDepth
	pos := make([]int, len(keys))

	// 2. Read into the next field, or bail out if the list closes first.
	for objLevel == s.objDepth {
		if _, err := s.ReadByte(); err != nil {
			return false, err
		}
		if s.arrDepth < arrLevel {
			return false, nil // no field to read
		}
	}

	// 3. Stream the field, matching keys one level below the entry point.
	for objLevel < s.objDepth {
		c, err := s.ReadByte()
		if err != nil {
			return false, err
		}
		if s.objDepth > objLevel+1 || s.arrDepth > arrLevel {
			continue // inside a nested structure: not our keys
		}
		for i, key := range keys {
			if pos[i] < len(key) && c == key[pos[i]] {
				pos[i]++
				if pos[i] == len(key) {
					// Key fully matched; hand control to the caller.
					if err = action(i); err != nil {
						return true, err
					}
					pos[i] = 0
				}
			} else {
				pos[i] = 0 // mismatch, restart this pattern
			}
		}
	}

	return true, nil
}

// ScanList advances to the next array (list) and repeatedly invokes
// action until the array closes. action must consume input through the
// same Scanner on every call; an element handler that reads nothing
// would never terminate the scan.
//
// Returns false (with a nil error) when the enclosing object closes
// before any list is entered.
func (s *Scanner) ScanList(action func() error) (bool, error) {
	// 1. Remember the entry depths.
	arrLevel, objLevel := s.arrDepth, s.objDepth

	// 2. Read into the next list, or bail out if the object closes first.
	for arrLevel == s.arrDepth {
		if _, err := s.ReadByte(); err != nil {
			return false, err
		}
		if s.objDepth < objLevel {
			return false, nil // no list to read
		}
	}

	// 3. Repeatedly hand control to the caller until the list is exited.
	for arrLevel < s.arrDepth {
		if err := action(); err != nil {
			return true, err
		}
	}

	return true, nil
}
