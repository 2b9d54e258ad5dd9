package linebuf

// Insert splices p at the cursor and advances the cursor past it.
// It reports whether the buffer changed; an insert that would exceed
// capacity is dropped without touching the buffer.
func (b *Buffer) Insert(p []byte) bool {
	if len(p) == 0 {
		return false
	}
	if len(b.b)+len(p) > b.max {
		return false
	}

	b.b = append(b.b, p...)
	copy(b.b[b.pos+len(p):], b.b[b.pos:])
	copy(b.b[b.pos:], p)
	b.pos += len(p)
	return true
}

// Delete removes the character at the cursor without moving it.
func (b *Buffer) Delete() bool {
	n, _ := b.enc.NextCharLen(b.b, b.pos)
	if n == 0 {
		return false
	}
	b.b = append(b.b[:b.pos], b.b[b.pos+n:]...)
	return true
}

// Backspace removes the character before the cursor.
func (b *Buffer) Backspace() bool {
	n, _ := b.enc.PrevCharLen(b.b, b.pos)
	if n == 0 {
		return false
	}
	b.b = append(b.b[:b.pos-n], b.b[b.pos:]...)
	b.pos -= n
	return true
}

// DeletePrevWord removes spaces behind the cursor and then the word
// before them. The cursor lands at the deleted word's start.
func (b *Buffer) DeletePrevWord() bool {
	old := b.pos
	for b.pos > 0 && b.b[b.pos-1] == ' ' {
		b.pos--
	}
	for b.pos > 0 && b.b[b.pos-1] != ' ' {
		b.pos--
	}
	if b.pos == old {
		return false
	}
	b.b = append(b.b[:b.pos], b.b[old:]...)
	return true
}

// DeleteNextWord removes spaces ahead of the cursor and then the word
// after them, leaving the cursor in place.
func (b *Buffer) DeleteNextWord() bool {
	end := b.pos
	for end < len(b.b) && b.b[end] == ' ' {
		end++
	}
	for end < len(b.b) && b.b[end] != ' ' {
		end++
	}
	if end == b.pos {
		return false
	}
	b.b = append(b.b[:b.pos], b.b[end:]...)
	return true
}

// KillToEnd truncates the buffer at the cursor.
func (b *Buffer) KillToEnd() bool {
	if b.pos == len(b.b) {
		return false
	}
	b.b = b.b[:b.pos]
	return true
}

// KillWholeLine clears the buffer and resets the cursor.
func (b *Buffer) KillWholeLine() bool {
	if len(b.b) == 0 && b.pos == 0 {
		return false
	}
	b.b = b.b[:0]
	b.pos = 0
	return true
}

// Transpose swaps the characters on either side of the cursor and
// advances past the pair unless it ends the line. A cursor at the start
// or end of the buffer leaves the buffer untouched.
func (b *Buffer) Transpose() bool {
	if b.pos == 0 || b.pos == len(b.b) {
		return false
	}

	pn, _ := b.enc.PrevCharLen(b.b, b.pos)
	nn, _ := b.enc.NextCharLen(b.b, b.pos)
	if pn == 0 || nn == 0 {
		return false
	}

	swapped := make([]byte, 0, pn+nn)
	swapped = append(swapped, b.b[b.pos:b.pos+nn]...)
	swapped = append(swapped, b.b[b.pos-pn:b.pos]...)
	copy(b.b[b.pos-pn:], swapped)

	if b.pos+nn != len(b.b) {
		b.pos += nn
	} else {
		// Keep the cursor between the pair, on the new boundary.
		b.pos += nn - pn
	}
	return true
}
