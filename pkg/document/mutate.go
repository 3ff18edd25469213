package document

// GetAt resolves path within root, descending object keys and "[index]"
// array segments. It reports false when the path does not resolve.
func GetAt(root Value, path Path) (Value, bool) {
	current := root
	for _, seg := range path {
		switch current.kind {
		case KindObject:
			child, ok := current.obj.Get(seg)
			if !ok {
				return Value{}, false
			}
			current = child
		case KindArray:
			idx, ok := ParseIndexSegment(seg)
			if !ok || idx >= len(current.arr) {
				return Value{}, false
			}
			current = current.arr[idx]
		default:
			return Value{}, false
		}
	}
	return current, true
}

// SetAt returns a new snapshot of root with value written at path. Missing
// intermediate containers are created as objects. Only the containers along
// the path are cloned; untouched subtrees are shared with root.
//
// Array segments address existing elements only: an index that does not
// resolve leaves the snapshot unchanged at that branch.
func SetAt(root Value, path Path, value Value) Value {
	if len(path) == 0 {
		return value
	}
	seg, rest := path[0], path[1:]

	if root.kind == KindArray {
		idx, ok := ParseIndexSegment(seg)
		if !ok || idx >= len(root.arr) {
			return root
		}
		elems := make([]Value, len(root.arr))
		copy(elems, root.arr)
		elems[idx] = SetAt(elems[idx], rest, value)
		return Array(elems...)
	}

	var clone *Object
	if root.kind == KindObject {
		clone = root.obj.Clone()
	} else {
		clone = NewObject()
	}
	if len(rest) == 0 {
		clone.Set(seg, value)
	} else {
		child, _ := clone.Get(seg)
		clone.Set(seg, SetAt(child, rest, value))
	}
	return ObjectValue(clone)
}

// RemoveAt returns a new snapshot of root with the value at path removed.
// An unresolvable parent, a missing key, or a malformed array segment makes
// the removal a silent no-op; root is never mutated either way.
func RemoveAt(root Value, path Path) Value {
	if len(path) == 0 {
		return root
	}
	seg, rest := path[0], path[1:]

	switch root.kind {
	case KindObject:
		if len(rest) == 0 {
			if !root.obj.Has(seg) {
				return root
			}
			clone := root.obj.Clone()
			clone.Delete(seg)
			return ObjectValue(clone)
		}
		child, ok := root.obj.Get(seg)
		if !ok {
			return root
		}
		clone := root.obj.Clone()
		clone.Set(seg, RemoveAt(child, rest))
		return ObjectValue(clone)

	case KindArray:
		idx, ok := ParseIndexSegment(seg)
		if !ok || idx >= len(root.arr) {
			return root
		}
		if len(rest) == 0 {
			elems := make([]Value, 0, len(root.arr)-1)
			elems = append(elems, root.arr[:idx]...)
			elems = append(elems, root.arr[idx+1:]...)
			return Array(elems...)
		}
		elems := make([]Value, len(root.arr))
		copy(elems, root.arr)
		elems[idx] = RemoveAt(elems[idx], rest)
		return Array(elems...)

	default:
		return root
	}
}
