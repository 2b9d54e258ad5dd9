package linebuf

// MoveLeft moves the cursor one character left.
func (b *Buffer) MoveLeft() bool {
	n, _ := b.enc.PrevCharLen(b.b, b.pos)
	if n == 0 {
		return false
	}
	b.pos -= n
	return true
}

// MoveRight moves the cursor one character right.
func (b *Buffer) MoveRight() bool {
	n, _ := b.enc.NextCharLen(b.b, b.pos)
	if n == 0 {
		return false
	}
	b.pos += n
	return true
}

// MoveHome moves the cursor to the start of the line.
func (b *Buffer) MoveHome() bool {
	if b.pos == 0 {
		return false
	}
	b.pos = 0
	return true
}

// MoveEnd moves the cursor to the end of the line.
func (b *Buffer) MoveEnd() bool {
	if b.pos == len(b.b) {
		return false
	}
	b.pos = len(b.b)
	return true
}

// MoveWordStart moves the cursor to the start of the current or previous
// word. Words are delimited by ASCII spaces.
func (b *Buffer) MoveWordStart() bool {
	old := b.pos
	for b.pos > 0 && b.b[b.pos-1] == ' ' {
		b.pos--
	}
	for b.pos > 0 && b.b[b.pos-1] != ' ' {
		b.pos--
	}
	return b.pos != old
}

// MoveWordEnd moves the cursor to the end of the current or next word.
func (b *Buffer) MoveWordEnd() bool {
	old := b.pos
	for b.pos < len(b.b) && b.b[b.pos] == ' ' {
		b.pos++
	}
	for b.pos < len(b.b) && b.b[b.pos] != ' ' {
		b.pos++
	}
	return b.pos != old
}

// SetPos places the cursor at pos. Out-of-range positions are clamped.
// The caller is responsible for keeping pos on a character boundary.
func (b *Buffer) SetPos(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.b) {
		pos = len(b.b)
	}
	b.pos = pos
}
