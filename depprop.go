package texelfw

// DepPropClass is the per-(dep-type, dep-prop) class record: the
// default value installed at this point in the base chain (if any),
// a class-wide write lock (if the property has been locked here), and
// the change-notification subscribers.
type DepPropClass struct {
	defVal    *PropVal
	setLock   *ClassSetLock
	onChanged []func(obj *DepObj, old, new PropVal, fw *Fw)
}

// depPropClass returns (creating if absent) the class record for
// prop at target.
func (fw *Fw) depPropClass(target DepType, prop DepProp) *DepPropClass {
	desc := fw.depTypes[target.index]
	class, ok := desc.propClass[prop]
	if !ok {
		class = &DepPropClass{}
		desc.propClass[prop] = class
	}
	return class
}

// RegDepProp registers a new property named name on owner, with the
// given value type and default value. If attached is non-nil, the
// property's target (and the type the default value is installed on)
// is that type rather than owner. Panics if defaultValue does not
// satisfy valType, or if owner already has a property by this name.
func (fw *Fw) RegDepProp(owner DepType, name string, valType Type, defaultValue PropVal, attached *DepType) DepProp {
	owner.assertOwner(fw)
	if !defaultValue.Is(valType, fw) {
		panic("texelfw: default value type mismatch")
	}
	ownerDesc := fw.depTypes[owner.index]
	ownerDesc.props = append(ownerDesc.props, depPropDesc{name: name, valType: valType, attached: attached})
	prop := DepProp{fw: fw, owner: owner.index, index: len(ownerDesc.props) - 1}
	if _, exists := ownerDesc.propsByName[name]; exists {
		panic("texelfw: the " + name + " dependency property is already registered for " + ownerDesc.name)
	}
	ownerDesc.propsByName[name] = prop

	target := owner
	if attached != nil {
		target = *attached
	}
	class := fw.depPropClass(target, prop)
	if class.defVal != nil {
		panic("texelfw: default value already exists")
	}
	class.defVal = &defaultValue
	return prop
}

// OverrideDefVal installs a default value for prop at depType, which
// must satisfy prop's target. Panics if depType already has a default
// installed for prop.
func (fw *Fw) OverrideDefVal(depType DepType, prop DepProp, defaultValue PropVal) {
	assertDepPropTarget(prop, depType, fw)
	assertDepPropVal(prop, defaultValue.Type(), fw)
	class := fw.depPropClass(depType, prop)
	if class.defVal != nil {
		panic("texelfw: default value is registered already")
	}
	class.defVal = &defaultValue
}

// LockClassSet creates a unique token gating writes to prop on target
// and its subtypes. Panics if the property is already locked anywhere
// on the chain from target to prop's own target.
func (fw *Fw) LockClassSet(target DepType, prop DepProp) ClassSetLock {
	if target.IsLocked(prop, fw) {
		panic("texelfw: property setter is class-locked already")
	}
	class := fw.depPropClass(target, prop)
	lock := ClassSetLock{id: newUniqueID()}
	class.setLock = &lock
	return lock
}

// OnChanged appends a change-notification subscriber for prop at
// depType; subscribers fire in registration order.
func (fw *Fw) OnChanged(depType DepType, prop DepProp, callback func(obj *DepObj, old, new PropVal, fw *Fw)) {
	assertDepPropTarget(prop, depType, fw)
	class := fw.depPropClass(depType, prop)
	class.onChanged = append(class.onChanged, callback)
}

// DefVal walks t's base chain looking for the nearest class record
// with a default installed for prop. Panics if none is found anywhere
// on the chain — registration guarantees one exists at the property's
// target, so this only fires on corrupted state.
func (t DepType) DefVal(prop DepProp, fw *Fw) PropVal {
	assertDepPropTarget(prop, t, fw)
	base := t
	for {
		if class, ok := fw.depTypes[base.index].propClass[prop]; ok && class.defVal != nil {
			return *class.defVal
		}
		next, ok := base.Base(fw)
		if !ok {
			panic("texelfw: default value not found")
		}
		base = next
	}
}

// setLock walks t's base chain looking for the nearest class-wide
// write lock installed for prop.
func (t DepType) setLock(prop DepProp, fw *Fw) (ClassSetLock, bool) {
	base := t
	for {
		if class, ok := fw.depTypes[base.index].propClass[prop]; ok && class.setLock != nil {
			return *class.setLock, true
		}
		next, ok := base.Base(fw)
		if !ok {
			return ClassSetLock{}, false
		}
		base = next
	}
}

// IsLocked reports whether prop is class-locked anywhere on t's base
// chain.
func (t DepType) IsLocked(prop DepProp, fw *Fw) bool {
	_, locked := t.setLock(prop, fw)
	return locked
}

// onChangedChain returns every registered subscriber for prop that
// applies to an instance of type t, walking the base chain from t
// upward and concatenating in outward order (t's own class record
// first).
func (t DepType) onChangedChain(prop DepProp, fw *Fw) []func(obj *DepObj, old, new PropVal, fw *Fw) {
	var callbacks []func(obj *DepObj, old, new PropVal, fw *Fw)
	base := t
	for {
		if class, ok := fw.depTypes[base.index].propClass[prop]; ok {
			callbacks = append(callbacks, class.onChanged...)
		}
		next, ok := base.Base(fw)
		if !ok {
			return callbacks
		}
		base = next
	}
}
