package font

// AddAccidentals inserts the musical accidental glyphs the base font lacks,
// plus the ligatures that render stacked accidentals as a single cell. It is
// meant to run once, right after ParseBDF.
func AddAccidentals(f *Font) {
	// double sharp
	f.Glyphs['\U0001D12A'] = Glyph{
		Width: 5, Height: 5, XOff: 1, YOff: 0,
		Bitmap: []byte{0b11011000, 0b11011000, 0b00100000, 0b11011000, 0b11011000},
	}
	// double flat
	f.Glyphs['\U0001D12B'] = Glyph{
		Width: 5, Height: 7, XOff: 1, YOff: 0,
		Bitmap: []byte{
			0b10100000, 0b10100000, 0b10100000, 0b11111000,
			0b10101000, 0b10101000, 0b11110000,
		},
	}
	// half sharp
	f.Glyphs['\U0001D132'] = Glyph{
		Width: 3, Height: 7, XOff: 2, YOff: -1,
		Bitmap: []byte{
			0b01000000, 0b01100000, 0b11000000, 0b01000000,
			0b01100000, 0b11000000, 0b01000000,
		},
	}
	// half flat
	f.Glyphs['\U0001D133'] = Glyph{
		Width: 3, Height: 7, XOff: 2, YOff: 0,
		Bitmap: []byte{
			0b00100000, 0b00100000, 0b00100000, 0b11100000,
			0b10100000, 0b10100000, 0b01100000,
		},
	}
	// three halves sharp: half sharp followed by sharp
	f.Ligatures[[2]rune{'\U0001D132', '♯'}] = Glyph{
		Width: 5, Height: 9, XOff: 1, YOff: -1,
		Bitmap: []byte{
			0b00001000, 0b00101000, 0b10111000, 0b11101000, 0b10101000,
			0b10111000, 0b11101000, 0b10100000, 0b10000000,
		},
	}
	// three halves flat: half flat followed by flat
	f.Ligatures[[2]rune{'\U0001D133', '♭'}] = Glyph{
		Width: 5, Height: 7, XOff: 1, YOff: 0,
		Bitmap: []byte{
			0b00100000, 0b00100000, 0b00100000, 0b11111000,
			0b10101000, 0b10101000, 0b01110000,
		},
	}
}
