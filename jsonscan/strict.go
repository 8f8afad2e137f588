package jsonscan

// This file implements the strict-order cursor: a leaner set of
// primitives that assumes keys appear in the exact canonical order of
// the export. It avoids multi-pattern matching entirely, which makes it
// measurably faster on large inputs, at the cost of silently desyncing
// on reordered documents. Select it deliberately (netgraph's
// WithStrictOrder), never by default.

// ReadToKey scans forward until the literal quoted key text has been
// read, stopping early if the enclosing object closes first. Returns
// whether the key was found. key must be the quoted wire form (Quote).
func (s *Scanner) ReadToKey(key string) (bool, error) {
	objLevel, match := s.objDepth, 0
	for match < len(key) && objLevel <= s.objDepth {
		c, err := s.ReadByte()
		if err != nil {
			return false, err
		}
		if c == key[match] {
			match++
		} else {
			match = 0
		}
	}

	return match == len(key), nil
}

// BeginField reads until a new object is entered, stopping early if the
// enclosing array closes first. Returns whether a field was entered.
func (s *Scanner) BeginField() (bool, error) {
	objLevel, stop := s.objDepth, s.arrDepth
	for objLevel == s.objDepth && stop <= s.arrDepth {
		if _, err := s.ReadByte(); err != nil {
			return false, err
		}
	}

	return stop <= s.arrDepth, nil
}

// EndField reads until the current object has been exited.
func (s *Scanner) EndField() error {
	objLevel := s.objDepth
	for objLevel <= s.objDepth {
		if _, err := s.ReadByte(); err != nil {
			return err
		}
	}

	return nil
}

// BeginList reads until a new array is entered, stopping early if the
// enclosing object closes first. Returns whether a list was entered.
func (s *Scanner) BeginList() (bool, error) {
	arrLevel, stop := s.arrDepth, s.objDepth
	for arrLevel == s.arrDepth && stop <= s.objDepth {
		if _, err := s.ReadByte(); err != nil {
			return false, err
		}
	}

	return stop <= s.objDepth, nil
}

// EndList reads until the current array has been exited.
func (s *Scanner) EndList() error {
	arrLevel := s.arrDepth
	for arrLevel <= s.arrDepth {
		if _, err := s.ReadByte(); err != nil {
			return err
		}
	}

	return nil
}
