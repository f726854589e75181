package robinson

import (
	"fmt"
	"math"
	"strings"
)

// Type identifies one of the four Robinson triangle shapes
type Type uint8

const (
	ThinLeft Type = iota
	ThinRight
	ThickLeft
	ThickRight
)

// Types lists every triangle type in declaration order
var Types = [...]Type{ThinLeft, ThinRight, ThickLeft, ThickRight}

const (
	thinVertexAngle  = math.Pi / 5     // 36°
	thinBaseAngle    = 2 * math.Pi / 5 // 72°
	thickVertexAngle = 3 * math.Pi / 5 // 108°
	thickBaseAngle   = math.Pi / 5     // 36°
)

// Valid reports whether t is one of the four known types
func (t Type) Valid() bool {
	return t <= ThickRight
}

// IsThin reports whether t is a golden triangle
func (t Type) IsThin() bool {
	return t == ThinLeft || t == ThinRight
}

// IsThick reports whether t is a golden gnomon
func (t Type) IsThick() bool {
	return t == ThickLeft || t == ThickRight
}

// IsLeft reports whether t has left-handed chirality
func (t Type) IsLeft() bool {
	return t == ThinLeft || t == ThickLeft
}

// Mirror returns the type of the same shape with the opposite chirality
func (t Type) Mirror() Type {
	switch t {
	case ThinLeft:
		return ThinRight
	case ThinRight:
		return ThinLeft
	case ThickLeft:
		return ThickRight
	case ThickRight:
		return ThickLeft
	}
	return t
}

// VertexAngle returns the interior angle at the apex in radians
func (t Type) VertexAngle() float64 {
	if t.IsThin() {
		return thinVertexAngle
	}
	return thickVertexAngle
}

// BaseAngle returns the interior angle at each base corner in radians
func (t Type) BaseAngle() float64 {
	if t.IsThin() {
		return thinBaseAngle
	}
	return thickBaseAngle
}

// VertexAngle returns the apex angle of the given type
func VertexAngle(t Type) float64 {
	return t.VertexAngle()
}

// BaseAngle returns the base angle of the given type
func BaseAngle(t Type) float64 {
	return t.BaseAngle()
}

func (t Type) String() string {
	switch t {
	case ThinLeft:
		return "ThinLeft"
	case ThinRight:
		return "ThinRight"
	case ThickLeft:
		return "ThickLeft"
	case ThickRight:
		return "ThickRight"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType converts a type name to a Type. Matching ignores case and accepts
// dash or underscore separated spellings such as "thin-left".
func ParseType(s string) (Type, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for _, t := range Types {
		if strings.ToLower(t.String()) == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown triangle type %q", s)
}
