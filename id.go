package interact

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"unsafe"
)

// WidgetID identifies a widget across frames.
// There is no retained widget tree: the same inputs (label, position, bounds)
// hash to the same ID every frame. 0 means "no widget".
type WidgetID uint32

// HashLabel derives an ID from a label string.
func HashLabel(label string) WidgetID {
	h := fnv.New32a()
	h.Write([]byte(label))
	return nonZero(h.Sum32())
}

// HashPosition derives an ID from a screen position.
func HashPosition(x, y float32) WidgetID {
	h := fnv.New32a()
	writeFloats(h, x, y)
	return nonZero(h.Sum32())
}

// HashLabelAt derives an ID from a label and a position, for repeated labels
// at different places on screen.
func HashLabelAt(label string, pos Vec2) WidgetID {
	h := fnv.New32a()
	h.Write([]byte(label))
	writeFloats(h, pos.X, pos.Y)
	return nonZero(h.Sum32())
}

// HashBounds derives an ID from a widget's rectangle. Input capture uses this
// to recognise its owner without any other identity.
func HashBounds(r Rect) WidgetID {
	h := fnv.New32a()
	writeFloats(h, r.X, r.Y, r.W, r.H)
	return nonZero(h.Sum32())
}

func writeFloats(h interface{ Write([]byte) (int, error) }, vals ...float32) {
	var buf [4]byte
	for _, v := range vals {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
		h.Write(buf[:])
	}
}

// nonZero keeps 0 reserved for "no widget".
func nonZero(v uint32) WidgetID {
	if v == 0 {
		return 1
	}
	return WidgetID(v)
}

// GetID generates a stable ID from a label, seeded by the enclosing PushID scope.
func (ctx *Context) GetID(label string) WidgetID {
	h := fnv.New32a()
	var seed [4]byte
	binary.LittleEndian.PutUint32(seed[:], uint32(ctx.CurrentID()))
	h.Write(seed[:])
	h.Write([]byte(label))
	return nonZero(h.Sum32())
}

// PushID pushes an ID onto the stack for nested widgets.
// All GetID calls will be relative to this parent ID.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PopID removes the last ID from the stack.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the current parent ID (top of stack).
func (ctx *Context) CurrentID() WidgetID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}

// FieldKey identifies a text field by the address of its backing buffer.
type FieldKey uintptr

// KeyOf returns the FieldKey for a text buffer. The key is stable for as long
// as the buffer itself is alive and not reallocated by the caller.
func KeyOf[T any](p *T) FieldKey {
	return FieldKey(uintptr(unsafe.Pointer(p)))
}
