package document

import "strconv"

// Equal reports canonical deep equality between two values.
//
// Numbers compare numerically, so "10", "10.0", and "1e1" are equal even
// though their literals differ. Object key order does not affect equality;
// it only affects encoding.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		// Numbers are the only kind with multiple spellings of the same
		// value, and spelling never changes kind, so kinds must match.
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return numberEqual(a.num.String(), b.num.String())
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for _, key := range a.obj.keys {
			bv, ok := b.obj.Get(key)
			if !ok {
				return false
			}
			if !Equal(a.obj.values[key], bv) {
				return false
			}
		}
		return true
	}
	return false
}

func numberEqual(a, b string) bool {
	if a == b {
		return true
	}
	// Integers first to keep full 64-bit precision.
	ai, aerr := strconv.ParseInt(a, 10, 64)
	bi, berr := strconv.ParseInt(b, 10, 64)
	if aerr == nil && berr == nil {
		return ai == bi
	}
	af, aerr := strconv.ParseFloat(a, 64)
	bf, berr := strconv.ParseFloat(b, 64)
	if aerr != nil || berr != nil {
		return false
	}
	return af == bf
}
