package editor

import "io"

// completeLine runs the Tab-completion protocol: preview each candidate
// in turn on repeated Tab, commit the shown candidate on any other key,
// restore the original line on Escape. The returned Key is the
// character that ended the cycle, already classified for the main loop;
// ActionNone means nothing further to do.
func (s *session) completeLine(dec *Decoder) (Key, error) {
	candidates := s.ed.completer.Complete(s.buf.String())
	if len(candidates) == 0 {
		s.beep()
		return Key{Action: ActionNone}, nil
	}

	orig := s.buf.String()
	origPos := s.buf.Pos()
	i := 0

	for {
		if i < len(candidates) {
			// Preview: paint the candidate, keep the real state.
			s.buf.Set(candidates[i])
			err := s.refresh(true)
			s.buf.Set(orig)
			s.buf.SetPos(origPos)
			if err != nil {
				return Key{}, err
			}
		} else {
			if err := s.refresh(true); err != nil {
				return Key{}, err
			}
		}

		b, code, err := s.enc.ReadChar(s.ed.in)
		if err != nil {
			return Key{}, err
		}

		switch code {
		case keyTab:
			i = (i + 1) % (len(candidates) + 1)
			if i == len(candidates) {
				s.beep()
			}
		case keyEsc:
			// Re-show the original buffer and resume editing it.
			if i < len(candidates) {
				if err := s.refresh(true); err != nil {
					return Key{}, err
				}
			}
			return Key{Action: ActionNone}, nil
		default:
			if i < len(candidates) {
				s.buf.Set(candidates[i])
			}
			return dec.Decode(b, code)
		}
	}
}

func (s *session) beep() {
	io.WriteString(s.ed.bell, "\a")
}
