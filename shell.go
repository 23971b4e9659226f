package texelfw

// Shell wires the dependency-object framework to the windowing core:
// it registers a Visual dep-type whose instances each own a Window,
// and a Root subtype bound to the terminal's own size. Application
// code drives the UI entirely through Visual/Root dep-properties;
// Shell's change callbacks mirror Bounds and Parent into the window
// tree.
type Shell struct {
	Fw   *Fw
	Host *WindowsHost

	Str  ValType
	Bool ValType
	Rect ValType

	Visual DepType
	Root   DepType
	Bounds DepProp
	Parent DepProp

	rootBoundsLock ClassSetLock
	rootParentLock ClassSetLock

	windowKey DataKey
}

// window retrieves the Window a Visual instance's constructor stowed
// in its data slot.
func (sh *Shell) window(obj *DepObj) *Window {
	v, ok := obj.GetData(sh.windowKey)
	if !ok {
		panic("texelfw: visual has no window")
	}
	return v.(*Window)
}

// Window returns the Window backing a Visual (or Root) instance, so
// callers can draw on it directly with the draw helpers.
func (sh *Shell) Window(obj *DepObj) *Window { return sh.window(obj) }

// visualOf unwraps the DepObj a Parent PropVal references.
func visualOf(p PropVal) *DepObj {
	return p.Unwrap().UnboxDep()
}

// NewShell registers the built-in value types, the Visual/Root
// dep-types, and their Bounds/Parent properties into fw, compositing
// onto host. Call this once at startup before creating any visuals.
func NewShell(fw *Fw, host *WindowsHost) *Shell {
	sh := &Shell{Fw: fw, Host: host, windowKey: NewDataKey()}
	sh.Str, sh.Bool, sh.Rect = RegBuiltinValTypes(fw)

	sh.Visual = fw.RegDepType("Visual", nil, func(obj *DepObj, fw *Fw) {
		obj.SetData(sh.windowKey, host.NewWindow())
	})

	sh.Bounds = fw.RegDepProp(sh.Visual, "Bounds", ValT(sh.Rect), ValProp(sh.Rect.Box(EmptyRect())), nil)
	sh.Parent = fw.RegDepProp(sh.Visual, "Parent", OptT(DepT(sh.Visual)), NilProp(DepT(sh.Visual)), nil)

	// The callbacks run with obj's mutex held, so they read obj's own
	// window slot and Bounds directly instead of through GetData/Get.
	fw.OnChanged(sh.Visual, sh.Bounds, func(obj *DepObj, old, new PropVal, fw *Fw) {
		w := obj.data[sh.windowKey].(*Window)
		if !w.IsDetached() {
			w.SetBounds(UnboxVal[Rect](new.UnboxVal()))
		}
	})
	fw.OnChanged(sh.Visual, sh.Parent, func(obj *DepObj, old, new PropVal, fw *Fw) {
		w := obj.data[sh.windowKey].(*Window)
		if !w.IsDetached() {
			w.Detach()
		}
		if new.IsNil() {
			return
		}
		parentWindow := sh.window(visualOf(new))
		w.AttachTo(parentWindow)
		w.SetBounds(UnboxVal[Rect](obj.getLocked(sh.Bounds, fw).UnboxVal()))
	})

	sh.Root = fw.RegDepType("Root", &sh.Visual, func(obj *DepObj, fw *Fw) {
		sh.window(obj).Attach()
	})
	sh.rootParentLock = fw.LockClassSet(sh.Root, sh.Parent)
	sh.rootBoundsLock = fw.LockClassSet(sh.Root, sh.Bounds)

	return sh
}

// NewVisual creates a detached Visual instance.
func (sh *Shell) NewVisual() *DepObj { return sh.Visual.Create(sh.Fw) }

// NewRoot creates a Root instance. Its Window is attached to the host
// immediately; its Bounds and Parent properties are class-locked and
// may only be written through Shell's own lock tokens.
func (sh *Shell) NewRoot() *DepObj { return sh.Root.Create(sh.Fw) }

// setRootBounds applies the terminal's current size to root using
// Shell's own lock token, bypassing the Parent/Bounds write
// protection applications can't get around.
func (sh *Shell) setRootBounds(root *DepObj, height, width int) {
	root.SetLocked(sh.Bounds, ValProp(sh.Rect.Box(TLHW(0, 0, height, width))), sh.rootBoundsLock, sh.Fw)
}

// Run is the shell's main loop: it sizes root to the driver's current
// terminal dimensions, composites the host, and then blocks on
// Getch, repainting on a resize and returning on 'q'.
func (sh *Shell) Run(root *DepObj, driver Screen) error {
	height, err := driver.GetHeight()
	if err != nil {
		return err
	}
	width, err := driver.GetWidth()
	if err != nil {
		return err
	}
	sh.setRootBounds(root, height, width)

	for {
		if err := sh.Host.Render(driver); err != nil {
			return err
		}
		if err := driver.Refresh(nil); err != nil {
			return err
		}
		key, ch, err := driver.Getch()
		if err != nil {
			return err
		}
		switch {
		case key == KeyResize:
			height, err = driver.GetHeight()
			if err != nil {
				return err
			}
			width, err = driver.GetWidth()
			if err != nil {
				return err
			}
			sh.setRootBounds(root, height, width)
		case ch == 'q':
			return nil
		}
	}
}
