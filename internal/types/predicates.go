package types

// identical reports whether x and y are the same basic type. Function
// types are never values, so they are identical to nothing.
func identical(x, y Type) bool {
	bx, ok := x.(*Basic)
	if !ok {
		return false
	}
	by, ok := y.(*Basic)
	return ok && bx.kind == by.kind
}

// AssignableTo reports whether a value of type V can be stored in a
// variable of type T. The only implicit conversion is int to float.
func AssignableTo(V, T Type) bool {
	if IsVoid(V) || IsVoid(T) || IsInvalid(V) || IsInvalid(T) {
		return false
	}
	if identical(V, T) {
		return true
	}
	return IsInteger(V) && IsFloat(T)
}

// Promote returns the result type of an arithmetic operation on x and y:
// float if either operand is float, int otherwise. Both must be numeric.
func Promote(x, y Type) Type {
	if IsFloat(x) || IsFloat(y) {
		return Typ[Float]
	}
	return Typ[Int]
}

func basicInfo(T Type) BasicInfo {
	if b, ok := T.(*Basic); ok {
		return b.info
	}
	return 0
}

// IsInteger reports whether T is int.
func IsInteger(T Type) bool { return basicInfo(T)&InfoInteger != 0 }

// IsFloat reports whether T is float.
func IsFloat(T Type) bool { return basicInfo(T)&InfoFloat != 0 }

// IsNumeric reports whether T is int or float.
func IsNumeric(T Type) bool { return basicInfo(T)&InfoNumeric != 0 }

// IsString reports whether T is string.
func IsString(T Type) bool { return basicInfo(T)&InfoString != 0 }

// IsVoid reports whether T is void.
func IsVoid(T Type) bool { return basicInfo(T)&InfoVoid != 0 }

// IsInvalid reports whether T is missing or the invalid type.
func IsInvalid(T Type) bool {
	if T == nil {
		return true
	}
	b, ok := T.(*Basic)
	return ok && b.kind == Invalid
}
