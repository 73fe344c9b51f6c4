package saju

// Presentation helpers for a pillar. Colors are derived from Elements, so
// the two always refer to the same stem/branch element pair.

// Format returns the Korean reading, e.g. "갑자".
func (p Pillar) Format() string {
	return p.Stem.String() + p.Branch.String()
}

// FormatHanja returns the hanja reading, e.g. "甲子".
func (p Pillar) FormatHanja() string {
	return p.Stem.Hanja() + p.Branch.Hanja()
}

// String implements fmt.Stringer.
func (p Pillar) String() string { return p.Format() }

// Elements returns the stem element and branch element.
func (p Pillar) Elements() [2]Element {
	return [2]Element{p.Stem.Element(), p.Branch.Element()}
}

// Colors returns the stem and branch element colors.
func (p Pillar) Colors() [2]string {
	els := p.Elements()
	return [2]string{els[0].Color(), els[1].Color()}
}

// Valid reports whether both indices are in range.
func (p Pillar) Valid() bool { return p.Stem.Valid() && p.Branch.Valid() }
