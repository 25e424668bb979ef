package semver

// recognizer matches a prefix of s. It returns the number of bytes consumed,
// which is always at least 1 on a match. Zero-width matches are not supported.
type recognizer interface {
	recognize(s []byte) (int, bool)
}

// lit matches a single literal byte.
type lit byte

func (l lit) recognize(s []byte) (int, bool) {
	if len(s) > 0 && s[0] == byte(l) {
		return 1, true
	}
	return 0, false
}

// class matches a single byte for which the predicate holds.
type class func(b byte) bool

func (c class) recognize(s []byte) (int, bool) {
	if len(s) > 0 && c(s[0]) {
		return 1, true
	}
	return 0, false
}

// oneOrMore matches the longest run of consecutive matches of r.
type oneOrMore struct {
	r recognizer
}

func (o oneOrMore) recognize(s []byte) (int, bool) {
	i := 0
	for i < len(s) {
		n, ok := o.r.recognize(s[i:])
		if !ok {
			break
		}
		i += n
	}
	return i, i > 0
}

var (
	dot   = lit('.')
	minus = lit('-')
	plus  = lit('+')

	digit = class(func(b byte) bool {
		return '0' <= b && b <= '9'
	})
	alphanumeric = class(func(b byte) bool {
		return '0' <= b && b <= '9' ||
			'a' <= b && b <= 'z' ||
			'A' <= b && b <= 'Z' ||
			b == '-'
	})

	digits        = oneOrMore{digit}
	alphanumerics = oneOrMore{alphanumeric}
)
