package texelfw

import "fmt"

// Fw is a type registry: value-types and dependency-types are
// registered into it once, at startup, by a single owner; once the UI
// is running it is read only. It is never a hidden singleton — every
// operation that needs it takes it explicitly, so tests can build
// isolated registries.
type Fw struct {
	valTypes       []ValTypeDesc
	valTypesByName map[string]ValType

	depTypes       []*depTypeDesc
	depTypesByName map[string]DepType
}

// NewFw creates an empty registry.
func NewFw() *Fw {
	return &Fw{
		valTypesByName: make(map[string]ValType),
		depTypesByName: make(map[string]DepType),
	}
}

// ValTypeDesc describes a registered value type: its name, how to
// parse a value from text, and how to format one back.
type ValTypeDesc interface {
	Name() string
	Parse(t ValType, s string) (Val, bool)
	Format(v Val) string
}

// ValType is an opaque, cheap-to-copy handle to a registered value
// type. Handles are tagged with the registry that issued them; using
// one against a different *Fw panics, standing in for the phantom
// "instance" marker this registry uses in its reference
// implementation (Go has no phantom type parameters).
type ValType struct {
	fw    *Fw
	index int
}

func (t ValType) assertOwner(fw *Fw) {
	if t.fw != fw {
		panic("texelfw: value type handle from a foreign registry")
	}
}

// Name returns the value type's registered name.
func (t ValType) Name(fw *Fw) string {
	t.assertOwner(fw)
	return fw.valTypes[t.index].Name()
}

// Box wraps a Go value as a Val of this type. Callers are responsible
// for giving a value the descriptor's Parse/Format can round-trip.
func (t ValType) Box(data any) Val {
	return Val{typ: t, data: data}
}

// Parse asks the value type's descriptor to parse s, returning
// (value, false) on a malformed string.
func (t ValType) Parse(s string, fw *Fw) (Val, bool) {
	t.assertOwner(fw)
	return fw.valTypes[t.index].Parse(t, s)
}

// Val is a boxed instance of a registered ValType.
type Val struct {
	typ  ValType
	data any
}

// Type returns the value's ValType.
func (v Val) Type() ValType { return v.typ }

// Format renders v back to text via its type's descriptor.
func (v Val) Format(fw *Fw) string {
	v.typ.assertOwner(fw)
	return fw.valTypes[v.typ.index].Format(v)
}

// UnboxVal retrieves the underlying Go value boxed in v. Panics (a
// programmer error, consistent with a failed downcast) if v does not
// hold a T.
func UnboxVal[T any](v Val) T {
	t, ok := v.data.(T)
	if !ok {
		panic("texelfw: value unbox type mismatch")
	}
	return t
}

// depPropDesc describes one property registered on a dep-type.
type depPropDesc struct {
	name     string
	valType  Type
	attached *DepType
}

// depTypeDesc is the registry's record for one dependency type.
type depTypeDesc struct {
	base         *DepType
	name         string
	props        []depPropDesc
	propsByName  map[string]DepProp
	propClass    map[DepProp]*DepPropClass
	constructor  func(obj *DepObj, fw *Fw)
}

// DepType is an opaque handle to a registered dependency type.
// Dependency types form a single-parent tree rooted at types with no
// base.
type DepType struct {
	fw    *Fw
	index int
}

func (t DepType) assertOwner(fw *Fw) {
	if t.fw != fw {
		panic("texelfw: dependency type handle from a foreign registry")
	}
}

// Name returns the dep-type's registered name.
func (t DepType) Name(fw *Fw) string {
	t.assertOwner(fw)
	return fw.depTypes[t.index].name
}

// Base returns the dep-type's base type, if any.
func (t DepType) Base(fw *Fw) (DepType, bool) {
	t.assertOwner(fw)
	b := fw.depTypes[t.index].base
	if b == nil {
		return DepType{}, false
	}
	return *b, true
}

// Is reports whether t is other, or a descendant of other along the
// base chain.
func (t DepType) Is(other DepType, fw *Fw) bool {
	t.assertOwner(fw)
	other.assertOwner(fw)
	base := t
	for {
		if base == other {
			return true
		}
		next, ok := base.Base(fw)
		if !ok {
			return false
		}
		base = next
	}
}

// init runs constructors from the root of the base chain down to t,
// so a derived type's constructor observes a base already built.
func (t DepType) init(obj *DepObj, fw *Fw) {
	if base, ok := t.Base(fw); ok {
		base.init(obj, fw)
	}
	if ctor := fw.depTypes[t.index].constructor; ctor != nil {
		ctor(obj, fw)
	}
}

// Create allocates a fresh DepObj of type t and runs its constructor
// chain, base to derived.
func (t DepType) Create(fw *Fw) *DepObj {
	t.assertOwner(fw)
	obj := &DepObj{
		typ:        t,
		localProps: make(map[DepProp]PropVal),
		data:       make(map[DataKey]any),
	}
	t.init(obj, fw)
	return obj
}

// DepProp is an opaque handle to a property registered on some
// DepType. An owned property targets its owner; an attached property
// targets the type it was attached to.
type DepProp struct {
	fw    *Fw
	owner int
	index int
}

func (p DepProp) assertOwner(fw *Fw) {
	if p.fw != fw {
		panic("texelfw: dependency property handle from a foreign registry")
	}
}

// Owner returns the dep-type the property was registered on.
func (p DepProp) Owner() DepType { return DepType{fw: p.fw, index: p.owner} }

// Name returns the property's registered name.
func (p DepProp) Name(fw *Fw) string {
	p.assertOwner(fw)
	return fw.depTypes[p.owner].props[p.index].name
}

// ValType returns the property's declared value type.
func (p DepProp) ValType(fw *Fw) Type {
	p.assertOwner(fw)
	return fw.depTypes[p.owner].props[p.index].valType
}

// Attached returns the type the property is attached to, if any.
func (p DepProp) Attached(fw *Fw) (DepType, bool) {
	p.assertOwner(fw)
	a := fw.depTypes[p.owner].props[p.index].attached
	if a == nil {
		return DepType{}, false
	}
	return *a, true
}

// Target returns the dep-type a value of this property must belong
// to: the attached type if any, else the owner.
func (p DepProp) Target(fw *Fw) DepType {
	if attached, ok := p.Attached(fw); ok {
		return attached
	}
	return p.Owner()
}

func assertDepPropTarget(prop DepProp, depType DepType, fw *Fw) {
	if !depType.Is(prop.Target(fw), fw) {
		panic("texelfw: dependency property target type mismatch")
	}
}

func assertDepPropVal(prop DepProp, valType Type, fw *Fw) {
	if !valType.Is(prop.ValType(fw), fw) {
		panic("texelfw: dependency property value type mismatch")
	}
}

// RegValType registers a new value type. Panics if the name is
// already taken.
func (fw *Fw) RegValType(desc ValTypeDesc) ValType {
	fw.valTypes = append(fw.valTypes, desc)
	vt := ValType{fw: fw, index: len(fw.valTypes) - 1}
	name := desc.Name()
	if _, exists := fw.valTypesByName[name]; exists {
		panic(fmt.Sprintf("texelfw: the %q value type is already registered", name))
	}
	fw.valTypesByName[name] = vt
	return vt
}

// ValTypeByName looks up a previously registered value type.
func (fw *Fw) ValTypeByName(name string) (ValType, bool) {
	vt, ok := fw.valTypesByName[name]
	return vt, ok
}

// RegDepType registers a new dependency type, optionally deriving
// from base and running ctor (after base's own chain) on every
// instance created. Panics if the name is already taken.
func (fw *Fw) RegDepType(name string, base *DepType, ctor func(obj *DepObj, fw *Fw)) DepType {
	fw.depTypes = append(fw.depTypes, &depTypeDesc{
		base:        base,
		name:        name,
		propsByName: make(map[string]DepProp),
		propClass:   make(map[DepProp]*DepPropClass),
		constructor: ctor,
	})
	dt := DepType{fw: fw, index: len(fw.depTypes) - 1}
	if _, exists := fw.depTypesByName[name]; exists {
		panic(fmt.Sprintf("texelfw: the %q dependency type is already registered", name))
	}
	fw.depTypesByName[name] = dt
	return dt
}

// DepTypeByName looks up a previously registered dependency type.
func (fw *Fw) DepTypeByName(name string) (DepType, bool) {
	dt, ok := fw.depTypesByName[name]
	return dt, ok
}

// DepPropByName looks up a property registered directly on dt by
// name (not searching base types, mirroring the reference registry).
func (fw *Fw) DepPropByName(dt DepType, name string) (DepProp, bool) {
	dt.assertOwner(fw)
	p, ok := fw.depTypes[dt.index].propsByName[name]
	return p, ok
}

// TypeKind discriminates the variants of Type.
type TypeKind int

const (
	KindVal TypeKind = iota
	KindDep
	KindOpt
)

// Type is the meta-type of a registry: a value type, a dependency
// type, or an optional wrapping either.
type Type struct {
	kind TypeKind
	val  ValType
	dep  DepType
	opt  *Type
}

// ValT builds the Val(v) meta-type.
func ValT(v ValType) Type { return Type{kind: KindVal, val: v} }

// DepT builds the Dep(d) meta-type.
func DepT(d DepType) Type { return Type{kind: KindDep, dep: d} }

// OptT builds the Opt(t) meta-type.
func OptT(t Type) Type { return Type{kind: KindOpt, opt: &t} }

// Kind reports which variant t is.
func (t Type) Kind() TypeKind { return t.kind }

// Is implements the meta-type subtyping relation: Val is invariant on
// identity, Dep follows the base chain, Opt is covariant over its
// wrapped type, and there is no cross-variant subtyping.
func (t Type) Is(other Type, fw *Fw) bool {
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case KindVal:
		return t.val == other.val
	case KindDep:
		return t.dep.Is(other.dep, fw)
	case KindOpt:
		return t.opt.Is(*other.opt, fw)
	default:
		return false
	}
}
