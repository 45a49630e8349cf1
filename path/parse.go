package path

import "strconv"

func isCommandLetter(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'Z', 'z', 'A', 'a':
		return true
	default:
		return false
	}
}

func kindForLetter(c byte) (Kind, bool) {
	switch c {
	case 'M':
		return Move, true
	case 'm':
		return RMove, true
	case 'L':
		return Line, true
	case 'l':
		return RLine, true
	case 'H':
		return HLine, true
	case 'h':
		return RHLine, true
	case 'V':
		return VLine, true
	case 'v':
		return RVLine, true
	case 'C':
		return Cubic, true
	case 'c':
		return RCubic, true
	case 'S':
		return SCubic, true
	case 's':
		return RSCubic, true
	case 'Q':
		return Quad, true
	case 'q':
		return RQuad, true
	case 'T':
		return TQuad, true
	case 't':
		return RTQuad, true
	case 'A':
		return Arc, true
	case 'a':
		return RArc, true
	case 'Z', 'z':
		return Close, true
	default:
		return 0, false
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == ','
}

// scanNumber reads one float token starting at i, returning the index
// just past it. A '+'/'-' is consumed as the token's leading sign; a
// later '+'/'-' is only consumed when it immediately follows 'e' or
// 'E' (scientific-notation exponent sign) — any other sign terminates
// the token so SVG's unseparated "1-2" tokenizes as two numbers.
func scanNumber(s string, i int) (end int, ok bool) {
	start := i
	n := len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	hasDigits := false
	for i < n && isDigit(s[i]) {
		i++
		hasDigits = true
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && isDigit(s[i]) {
			i++
			hasDigits = true
		}
	}
	if !hasDigits {
		return start, false
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < n && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i, true
}

// Parse tokenizes SVG path data d into a Path. Empty input produces an
// empty command list.
func Parse(d string) (*Path, error) {
	p := &Path{}
	n := len(d)

	var kind Kind
	armed := false
	var numbers []float32

	finish := func() error {
		if !armed {
			return nil
		}
		arity := kind.Arity()
		if arity == 0 {
			if len(numbers) != 0 {
				return errInvalid("command %q takes no parameters, got %d", kind.Letter(), len(numbers))
			}
			p.Commands = append(p.Commands, Command{Kind: kind})
			return nil
		}
		if len(numbers) == 0 || len(numbers)%arity != 0 {
			return errInvalid("command %q expects a positive multiple of %d numbers, got %d", kind.Letter(), arity, len(numbers))
		}
		for off := 0; off < len(numbers); off += arity {
			nums := make([]float32, arity)
			copy(nums, numbers[off:off+arity])
			p.Commands = append(p.Commands, Command{Kind: kind, Numbers: nums})
		}
		return nil
	}

	i := 0
	for i < n {
		c := d[i]
		switch {
		case isCommandLetter(c):
			if err := finish(); err != nil {
				return nil, err
			}
			k, ok := kindForLetter(c)
			if !ok {
				return nil, errInvalid("unknown command %q", c)
			}
			kind = k
			armed = true
			numbers = numbers[:0]
			i++
		case isSeparator(c):
			i++
		case isDigit(c) || c == '.' || c == '+' || c == '-':
			end, ok := scanNumber(d, i)
			if !ok {
				return nil, errInvalid("invalid number at offset %d", i)
			}
			v, err := strconv.ParseFloat(d[i:end], 32)
			if err != nil {
				return nil, errInvalid("invalid number %q", d[i:end])
			}
			numbers = append(numbers, float32(v))
			i = end
		default:
			return nil, errInvalid("unexpected character %q at offset %d", c, i)
		}
	}
	if err := finish(); err != nil {
		return nil, err
	}
	return p, nil
}
