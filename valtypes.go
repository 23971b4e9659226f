package texelfw

import (
	"strconv"
	"strings"
)

// strValTypeDesc is the built-in "str" value type: an identity
// round-trip over arbitrary text.
type strValTypeDesc struct{}

func (strValTypeDesc) Name() string { return "str" }

func (strValTypeDesc) Parse(t ValType, s string) (Val, bool) {
	return t.Box(s), true
}

func (strValTypeDesc) Format(v Val) string {
	return UnboxVal[string](v)
}

// boolValTypeDesc is the built-in "bool" value type: only the exact
// strings "True" and "False" parse.
type boolValTypeDesc struct{}

func (boolValTypeDesc) Name() string { return "bool" }

func (boolValTypeDesc) Parse(t ValType, s string) (Val, bool) {
	switch s {
	case "True":
		return t.Box(true), true
	case "False":
		return t.Box(false), true
	default:
		return Val{}, false
	}
}

func (boolValTypeDesc) Format(v Val) string {
	if UnboxVal[bool](v) {
		return "True"
	}
	return "False"
}

// rectValTypeDesc is the built-in "rect" value type: the empty string
// round-trips to the empty Rect; otherwise "t,l,h,w" with exactly
// four comma-separated signed integers, each part trimmed of
// surrounding whitespace. A non-positive h or w fails, matching
// TLHW's own empty-collapsing rule.
type rectValTypeDesc struct{}

func (rectValTypeDesc) Name() string { return "rect" }

func (rectValTypeDesc) Parse(t ValType, s string) (Val, bool) {
	if s == "" {
		return t.Box(EmptyRect()), true
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Val{}, false
	}
	var nums [4]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Val{}, false
		}
		nums[i] = n
	}
	top, left, height, width := nums[0], nums[1], nums[2], nums[3]
	if height <= 0 || width <= 0 {
		return Val{}, false
	}
	return t.Box(TLHW(top, left, height, width)), true
}

func (rectValTypeDesc) Format(v Val) string {
	r := UnboxVal[Rect](v)
	top, left, ok := r.Loc()
	if !ok {
		return ""
	}
	height, width := r.Size()
	return strconv.Itoa(top) + "," + strconv.Itoa(left) + "," + strconv.Itoa(height) + "," + strconv.Itoa(width)
}

// RegBuiltinValTypes registers the toolkit's three built-in value
// types (str, bool, rect) into fw and returns their handles.
func RegBuiltinValTypes(fw *Fw) (strType, boolType, rectType ValType) {
	strType = fw.RegValType(strValTypeDesc{})
	boolType = fw.RegValType(boolValTypeDesc{})
	rectType = fw.RegValType(rectValTypeDesc{})
	return
}
