package interpreter

import (
	"math"
	"strconv"
	"strings"

	"auburn/interpreter-go/pkg/runtime"
)

// FormatValue renders a value the way `echo` prints it.
func FormatValue(val runtime.Value) string {
	switch v := val.(type) {
	case runtime.NumberValue:
		return formatNumber(v.Val)
	case runtime.UnitValue:
		return "()"
	case *runtime.StructInstanceValue:
		return formatStructInstance(v)
	case *runtime.StructDefinitionValue:
		name := v.Name()
		if name == "" {
			name = "struct"
		}
		return "<struct " + name + ">"
	case *runtime.FunctionValue:
		return "<function>"
	default:
		return "<unknown>"
	}
}

// formatNumber uses the shortest representation that round-trips the
// double. Integral values render with a trailing `.0`.
func formatNumber(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// formatStructInstance renders `Type { f1: v1, f2: v2 }`, walking the
// declaration's field order so output never depends on how the literal
// that built the instance was written.
func formatStructInstance(inst *runtime.StructInstanceValue) string {
	name := inst.TypeName()
	if name == "" {
		name = "<struct>"
	}
	if inst.Definition == nil || inst.Definition.Node == nil || len(inst.Definition.Node.Fields) == 0 {
		return name + " {}"
	}
	var builder strings.Builder
	builder.WriteString(name)
	builder.WriteString(" { ")
	for idx, fieldName := range inst.Definition.Node.FieldNames() {
		if idx > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(fieldName)
		builder.WriteString(": ")
		builder.WriteString(FormatValue(inst.Fields[fieldName]))
	}
	builder.WriteString(" }")
	return builder.String()
}
