package interpreter

import (
	"errors"
	"fmt"
	"io"
	"os"

	"auburn/interpreter-go/pkg/ast"
	"auburn/interpreter-go/pkg/runtime"
)

// DefaultMaxCallDepth bounds recursion before the host stack is at
// risk; exceeding it raises a StackOverflow fault.
const DefaultMaxCallDepth = 10000

// ErrNoMain is reported when a loaded module declares no zero-argument
// `main` function. It is a configuration error, not a runtime fault.
var ErrNoMain = errors.New("no 'main' function defined")

// Interpreter drives evaluation of Auburn AST modules. Evaluation is
// single-threaded; the only state shared across calls is the read-only
// declaration table built by LoadModule.
type Interpreter struct {
	decls    *DeclarationTable
	out      io.Writer
	depth    int
	maxDepth int
}

// New constructs an interpreter that echoes to stdout.
func New() *Interpreter {
	return NewWithOutput(os.Stdout)
}

// NewWithOutput constructs an interpreter with an explicit output sink
// for `echo`.
func NewWithOutput(out io.Writer) *Interpreter {
	return &Interpreter{
		decls:    NewDeclarationTable(),
		out:      out,
		maxDepth: DefaultMaxCallDepth,
	}
}

// Declarations exposes the declaration table (read-only once built).
func (i *Interpreter) Declarations() *DeclarationTable {
	return i.decls
}

// LoadModule builds the declaration table from a module's top-level
// statements. Nothing is evaluated; duplicate or malformed definitions
// are load errors.
func (i *Interpreter) LoadModule(module *ast.Module) error {
	if module == nil {
		return fmt.Errorf("load: module is nil")
	}
	for _, stmt := range module.Body {
		switch n := stmt.(type) {
		case *ast.StructDefinition:
			if err := i.decls.defineStruct(n); err != nil {
				return err
			}
		case *ast.MethodsDefinition:
			if err := i.decls.defineMethods(n); err != nil {
				return err
			}
		case *ast.FunctionDefinition:
			if err := i.decls.defineFunction(n); err != nil {
				return err
			}
		default:
			return fmt.Errorf("load: unexpected top-level statement %s", stmt.NodeType())
		}
	}
	return nil
}

// Run locates the zero-argument `main` function and evaluates its body.
// The returned Value is the value of main's body block.
func (i *Interpreter) Run() (runtime.Value, error) {
	fn, ok := i.decls.Function("main")
	if !ok {
		return nil, ErrNoMain
	}
	if len(fn.Declaration.Params) != 0 {
		return nil, fmt.Errorf("'main' must take no parameters, has %d", len(fn.Declaration.Params))
	}
	return i.dispatch(fn, nil, nil)
}

// RunModule loads a module and runs its `main` in one step.
func (i *Interpreter) RunModule(module *ast.Module) (runtime.Value, error) {
	if err := i.LoadModule(module); err != nil {
		return nil, err
	}
	return i.Run()
}

// emit renders a value per the echo formatting rules and appends it,
// newline-terminated, to the output stream.
func (i *Interpreter) emit(val runtime.Value) error {
	if _, err := fmt.Fprintln(i.out, FormatValue(val)); err != nil {
		return fmt.Errorf("echo: %w", err)
	}
	return nil
}

//-----------------------------------------------------------------------------
// Declaration table
//-----------------------------------------------------------------------------

// DeclarationTable maps names to struct layouts, per-type method and
// associated-function sets, and free functions. It is built once before
// evaluation begins and never mutated afterwards.
type DeclarationTable struct {
	structs    map[string]*runtime.StructDefinitionValue
	methods    map[string]map[string]*runtime.FunctionValue
	associated map[string]map[string]*runtime.FunctionValue
	functions  map[string]*runtime.FunctionValue
}

func NewDeclarationTable() *DeclarationTable {
	return &DeclarationTable{
		structs:    make(map[string]*runtime.StructDefinitionValue),
		methods:    make(map[string]map[string]*runtime.FunctionValue),
		associated: make(map[string]map[string]*runtime.FunctionValue),
		functions:  make(map[string]*runtime.FunctionValue),
	}
}

// Struct resolves a declared struct type by name.
func (t *DeclarationTable) Struct(name string) (*runtime.StructDefinitionValue, bool) {
	def, ok := t.structs[name]
	return def, ok
}

// HasStruct reports whether name is a declared struct type.
func (t *DeclarationTable) HasStruct(name string) bool {
	_, ok := t.structs[name]
	return ok
}

// Method resolves an instance method on the named type.
func (t *DeclarationTable) Method(typeName, name string) (*runtime.FunctionValue, bool) {
	bucket, ok := t.methods[typeName]
	if !ok {
		return nil, false
	}
	fn, ok := bucket[name]
	return fn, ok
}

// Associated resolves a no-receiver function on the named type.
func (t *DeclarationTable) Associated(typeName, name string) (*runtime.FunctionValue, bool) {
	bucket, ok := t.associated[typeName]
	if !ok {
		return nil, false
	}
	fn, ok := bucket[name]
	return fn, ok
}

// Function resolves a free function by name.
func (t *DeclarationTable) Function(name string) (*runtime.FunctionValue, bool) {
	fn, ok := t.functions[name]
	return fn, ok
}

func (t *DeclarationTable) defineStruct(def *ast.StructDefinition) error {
	if def.ID == nil {
		return fmt.Errorf("load: struct definition requires an identifier")
	}
	name := def.ID.Name
	if _, exists := t.structs[name]; exists {
		return fmt.Errorf("load: struct '%s' is already defined", name)
	}
	seen := make(map[string]struct{}, len(def.Fields))
	for _, field := range def.Fields {
		if field == nil || field.Name == nil {
			return fmt.Errorf("load: struct '%s' has a field without a name", name)
		}
		if _, dup := seen[field.Name.Name]; dup {
			return fmt.Errorf("load: struct '%s' declares field '%s' twice", name, field.Name.Name)
		}
		seen[field.Name.Name] = struct{}{}
	}
	t.structs[name] = &runtime.StructDefinitionValue{Node: def}
	return nil
}

func (t *DeclarationTable) defineMethods(def *ast.MethodsDefinition) error {
	if def.TargetType == nil {
		return fmt.Errorf("load: methods block requires a target type")
	}
	typeName := def.TargetType.Name
	if _, ok := t.structs[typeName]; !ok {
		return fmt.Errorf("load: methods block targets undefined struct '%s'", typeName)
	}
	for _, fn := range def.Definitions {
		if fn == nil || fn.ID == nil {
			return fmt.Errorf("load: method definition on '%s' requires an identifier", typeName)
		}
		bucket := t.methods
		if !fn.TakesSelf {
			bucket = t.associated
		}
		entries, ok := bucket[typeName]
		if !ok {
			entries = make(map[string]*runtime.FunctionValue)
			bucket[typeName] = entries
		}
		if _, exists := entries[fn.ID.Name]; exists {
			return fmt.Errorf("load: '%s.%s' is already defined", typeName, fn.ID.Name)
		}
		entries[fn.ID.Name] = &runtime.FunctionValue{Declaration: fn}
	}
	return nil
}

func (t *DeclarationTable) defineFunction(fn *ast.FunctionDefinition) error {
	if fn.ID == nil {
		return fmt.Errorf("load: function definition requires an identifier")
	}
	if fn.TakesSelf {
		return fmt.Errorf("load: free function '%s' cannot take self", fn.ID.Name)
	}
	if _, exists := t.functions[fn.ID.Name]; exists {
		return fmt.Errorf("load: function '%s' is already defined", fn.ID.Name)
	}
	t.functions[fn.ID.Name] = &runtime.FunctionValue{Declaration: fn}
	return nil
}
