package runtime

import (
	"fmt"

	"auburn/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindStruct
	KindUnit
	KindFunction
	KindStructDefinition
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindStruct:
		return "struct_instance"
	case KindUnit:
		return "unit"
	case KindFunction:
		return "function"
	case KindStructDefinition:
		return "struct_def"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

// NumberValue carries every Auburn numeric as an IEEE-754 double;
// narrower declared types are promoted at the boundary.
type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

// UnitValue is the result of empty blocks and blocks ending in a
// non-expression statement.
type UnitValue struct{}

func (UnitValue) Kind() Kind { return KindUnit }

// StructDefinitionValue wraps a declared struct layout; instances point
// back at it so rendering can follow declaration field order.
type StructDefinitionValue struct {
	Node *ast.StructDefinition
}

func (v *StructDefinitionValue) Kind() Kind { return KindStructDefinition }

// Name returns the declared type name, or "" when the definition is
// malformed (defensive; load-time validation rejects that).
func (v *StructDefinitionValue) Name() string {
	if v == nil || v.Node == nil || v.Node.ID == nil {
		return ""
	}
	return v.Node.ID.Name
}

// HasField reports whether the declared layout includes name.
func (v *StructDefinitionValue) HasField(name string) bool {
	if v == nil || v.Node == nil {
		return false
	}
	for _, field := range v.Node.Fields {
		if field != nil && field.Name != nil && field.Name.Name == name {
			return true
		}
	}
	return false
}

// StructInstanceValue is a by-value record: the field set is fixed at
// construction and exactly matches the definition's field list.
type StructInstanceValue struct {
	Definition *StructDefinitionValue
	Fields     map[string]Value
}

func (v *StructInstanceValue) Kind() Kind { return KindStruct }

// TypeName returns the instance's type tag.
func (v *StructInstanceValue) TypeName() string {
	if v == nil {
		return ""
	}
	return v.Definition.Name()
}

// FunctionValue pairs a function or method declaration with nothing
// else: Auburn functions never close over caller locals, so there is no
// captured environment.
type FunctionValue struct {
	Declaration *ast.FunctionDefinition
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

// Copy produces an independent logical copy of val. Struct instances are
// copied field by field so no aliasing survives a call boundary or a
// binding; the shared Definition pointer is immutable and stays shared.
func Copy(val Value) Value {
	inst, ok := val.(*StructInstanceValue)
	if !ok {
		return val
	}
	fields := make(map[string]Value, len(inst.Fields))
	for name, field := range inst.Fields {
		fields[name] = Copy(field)
	}
	return &StructInstanceValue{Definition: inst.Definition, Fields: fields}
}

// Equal reports structural equality between two values. Structs compare
// type tag and every field recursively.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av.Val == bv.Val
	case UnitValue:
		_, ok := b.(UnitValue)
		return ok
	case *StructInstanceValue:
		bv, ok := b.(*StructInstanceValue)
		if !ok || av.TypeName() != bv.TypeName() || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for name, field := range av.Fields {
			other, ok := bv.Fields[name]
			if !ok || !Equal(field, other) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
