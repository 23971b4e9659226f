package texelfw

import "sync"

// uniqueID is a process-unique opaque identity: equality is by
// pointer, never by value, so two separately-minted ids never compare
// equal even if every other field matches.
type uniqueID struct{ _ byte }

func newUniqueID() *uniqueID { return &uniqueID{} }

// DataKey is an anonymous handle for a DepObj's private data slot.
// Create one with NewDataKey and keep it; it identifies the slot by
// identity, not value.
type DataKey struct{ id *uniqueID }

// NewDataKey mints a fresh, process-unique data key.
func NewDataKey() DataKey { return DataKey{id: newUniqueID()} }

// ClassSetLock is a unique token gating writes to a class-locked
// property. Obtain one from Fw.LockClassSet.
type ClassSetLock struct{ id *uniqueID }

// PropValKind discriminates the variants of PropVal.
type PropValKind int

const (
	PropValKindVal PropValKind = iota
	PropValKindDep
	PropValKindNil
	PropValKindHas
)

// PropVal is the value stored for a dependency property: a boxed Val,
// a reference to a DepObj, an absent Opt(T) (Nil), or a present
// Opt(T) wrapping another PropVal (Has). Nil and Has together model a
// nullable dependency-typed or value-typed property.
type PropVal struct {
	kind PropValKind
	val  Val
	dep  *DepObj
	nilT Type
	has  *PropVal
}

// ValProp wraps a Val as a property value.
func ValProp(v Val) PropVal { return PropVal{kind: PropValKindVal, val: v} }

// DepObjProp wraps a DepObj reference as a property value.
func DepObjProp(d *DepObj) PropVal { return PropVal{kind: PropValKindDep, dep: d} }

// NilProp builds the absent value of Opt(t).
func NilProp(t Type) PropVal { return PropVal{kind: PropValKindNil, nilT: t} }

// HasProp wraps inner as the present value of an Opt.
func HasProp(inner PropVal) PropVal { return PropVal{kind: PropValKindHas, has: &inner} }

// Type returns p's meta-type.
func (p PropVal) Type() Type {
	switch p.kind {
	case PropValKindVal:
		return ValT(p.val.Type())
	case PropValKindDep:
		return DepT(p.dep.Type())
	case PropValKindNil:
		return OptT(p.nilT)
	case PropValKindHas:
		return OptT(p.has.Type())
	default:
		panic("texelfw: invalid property value")
	}
}

// Is reports whether p's type is a subtype of t.
func (p PropVal) Is(t Type, fw *Fw) bool {
	return p.Type().Is(t, fw)
}

// UnboxVal retrieves the Val this property value wraps. Panics if p
// does not hold a Val — consistent with "downcast to the wrong type
// is fatal".
func (p PropVal) UnboxVal() Val {
	if p.kind != PropValKindVal {
		panic("texelfw: cannot unbox a non-value property")
	}
	return p.val
}

// UnboxDep retrieves the DepObj this property value references.
// Panics if p does not hold a Dep.
func (p PropVal) UnboxDep() *DepObj {
	if p.kind != PropValKindDep {
		panic("texelfw: cannot unbox a non-dependency property")
	}
	return p.dep
}

// IsNil reports whether p is the absent value of an Opt.
func (p PropVal) IsNil() bool { return p.kind == PropValKindNil }

// Unwrap retrieves the PropVal a Has wraps. Panics if p is not a Has.
func (p PropVal) Unwrap() PropVal {
	if p.kind != PropValKindHas {
		panic("texelfw: cannot unwrap a non-present optional property")
	}
	return *p.has
}

// DepObj is an instance of a registered DepType: a local-value map
// keyed by DepProp (falling back to class defaults), and an opaque
// per-object data map keyed by DataKey. Both maps are guarded by a
// single private mutex; change callbacks run with that mutex held, so
// a callback must never re-enter the same object (undefined behavior
// if it does).
type DepObj struct {
	typ DepType

	mu         sync.Mutex
	localProps map[DepProp]PropVal
	data       map[DataKey]any
}

// Type returns the dep-object's dynamic type.
func (o *DepObj) Type() DepType { return o.typ }

// Is reports whether o's type is a subtype of dt.
func (o *DepObj) Is(dt DepType, fw *Fw) bool { return o.typ.Is(dt, fw) }

// getLocked returns the local value for prop, or the class default.
// Must be called with o.mu held.
func (o *DepObj) getLocked(prop DepProp, fw *Fw) PropVal {
	if v, ok := o.localProps[prop]; ok {
		return v
	}
	return o.typ.DefVal(prop, fw)
}

// Get returns prop's effective value: the local value if one has been
// set, else the inherited class default.
func (o *DepObj) Get(prop DepProp, fw *Fw) PropVal {
	assertDepPropTarget(prop, o.typ, fw)
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.getLocked(prop, fw)
}

// GetNonDef returns prop's local value only, never consulting the
// class default.
func (o *DepObj) GetNonDef(prop DepProp, fw *Fw) (PropVal, bool) {
	assertDepPropTarget(prop, o.typ, fw)
	o.mu.Lock()
	defer o.mu.Unlock()
	v, ok := o.localProps[prop]
	return v, ok
}

// checkSetLocked validates a write against prop's class lock. Must be
// called with o.mu held. Returns false for a soft failure (locked,
// no token presented) — the caller
// must not mutate state in that case. Panics (programmer error) if an
// unlocked property is written with a token, or a locked property is
// written with the wrong token.
func (o *DepObj) checkSetLocked(prop DepProp, lock *ClassSetLock, fw *Fw) bool {
	assertDepPropTarget(prop, o.typ, fw)
	setLock, locked := o.typ.setLock(prop, fw)
	if locked {
		if lock == nil {
			return false
		}
		if setLock != *lock {
			panic("texelfw: invalid class lock")
		}
	} else if lock != nil {
		panic("texelfw: invalid class lock")
	}
	return true
}

// fireChangedLocked invokes every subscriber registered for prop, with
// the object's mutex held: the object's own type's subscribers first,
// then each base type's, each class record's in registration order.
// Must be called with o.mu held.
func (o *DepObj) fireChangedLocked(prop DepProp, old, new PropVal, fw *Fw) {
	for _, cb := range o.typ.onChangedChain(prop, fw) {
		cb(o, old, new, fw)
	}
}

func (o *DepObj) setCore(prop DepProp, val PropVal, lock *ClassSetLock, fw *Fw) bool {
	assertDepPropVal(prop, val.Type(), fw)
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.checkSetLocked(prop, lock, fw) {
		return false
	}
	old := o.getLocked(prop, fw)
	o.localProps[prop] = val
	o.fireChangedLocked(prop, old, val, fw)
	return true
}

// Set writes prop's local value. Returns false without changing state
// if prop is class-locked and no token was presented.
func (o *DepObj) Set(prop DepProp, val PropVal, fw *Fw) bool {
	return o.setCore(prop, val, nil, fw)
}

// SetLocked writes prop's local value using a class-set-lock token.
// Panics if the token does not match the lock installed for prop.
func (o *DepObj) SetLocked(prop DepProp, val PropVal, lock ClassSetLock, fw *Fw) {
	if !o.setCore(prop, val, &lock, fw) {
		panic("texelfw: invalid class lock")
	}
}

func (o *DepObj) resetCore(prop DepProp, lock *ClassSetLock, fw *Fw) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.checkSetLocked(prop, lock, fw) {
		return false
	}
	old := o.getLocked(prop, fw)
	delete(o.localProps, prop)
	new := o.getLocked(prop, fw)
	o.fireChangedLocked(prop, old, new, fw)
	return true
}

// Reset removes prop's local value, reverting it to the inherited
// default. Idempotent. Returns false without changing state if prop
// is class-locked and no token was presented.
func (o *DepObj) Reset(prop DepProp, fw *Fw) bool {
	return o.resetCore(prop, nil, fw)
}

// ResetLocked removes prop's local value using a class-set-lock
// token.
func (o *DepObj) ResetLocked(prop DepProp, lock ClassSetLock, fw *Fw) bool {
	return o.resetCore(prop, &lock, fw)
}

// GetData returns the value stored at key, if any.
func (o *DepObj) GetData(key DataKey) (any, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	v, ok := o.data[key]
	return v, ok
}

// SetData stores value at key, overwriting any previous value there.
func (o *DepObj) SetData(key DataKey, value any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.data[key] = value
}

// ResetData removes whatever value is stored at key.
func (o *DepObj) ResetData(key DataKey) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.data, key)
}
