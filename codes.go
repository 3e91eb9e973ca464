package errno

import "strconv"

// Code is an errno compatible status code. The zero Code means that no
// error occurred.
//
// Code implements error with its description, so the exported codes
// work as sentinels:
//
//	if errors.Is(err, errno.EINVAL) { ... }
type Code uint16

// OK is the zero Code.
const OK Code = 0

// Error implements error.
func (c Code) Error() string { return c.Description() }

// String returns the symbolic name of c, see Name.
func (c Code) String() string { return c.Name() }

// Description returns the platform's standard text for c. The zero
// Code is described as "success".
func (c Code) Description() string {
	if c == OK {
		return "success"
	}
	return describe(c)
}

// Name returns the symbolic name of c (EINVAL) or, for codes the
// platform does not name, "E" followed by the number.
func (c Code) Name() string {
	if c == OK {
		return "OK"
	}
	if name := name(c); name != "" {
		return name
	}
	return "E" + strconv.FormatUint(uint64(c), 10)
}

// ParseCode resolves a numeric ("22") or symbolic ("EINVAL") code. The
// "E22" form Name gives unnamed codes is accepted as well.
func ParseCode(s string) (Code, bool) {
	if s == "" {
		return OK, false
	}
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		return Code(n), true
	}
	if s == "OK" {
		return OK, true
	}
	if s[0] == 'E' {
		if n, err := strconv.ParseUint(s[1:], 10, 16); err == nil && n != 0 {
			return Code(n), true
		}
	}
	for c := Code(1); c < 1<<10; c++ {
		if n := name(c); n != "" && n == s {
			return c, true
		}
	}
	return OK, false
}
