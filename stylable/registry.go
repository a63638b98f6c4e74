package stylable

import (
	"errors"
	"fmt"

	"github.com/npillmayer/shelltk/style"
)

var (
	// ErrRegistrationConflict flags a stylable property name which is
	// already registered for a class.
	ErrRegistrationConflict = errors.New("stylable property already installed for class")
	// ErrUnknownProperty flags a reference to a native property which does
	// not exist.
	ErrUnknownProperty = errors.New("no such native property")
	// ErrNotWritable flags an attempt to make a read-only or construct-only
	// property stylable.
	ErrNotWritable = errors.New("property is not writable after construction")
	// ErrUnknownClass flags a class ID which has not been registered.
	ErrUnknownClass = errors.New("unknown class")
)

// ClassID is a stable identifier for a class. The zero value denotes
// "no class".
type ClassID uint32

// NoClass is the parent of root classes.
const NoClass ClassID = 0

// Flags are access flags of native properties.
type Flags uint8

// Access flags for native properties.
const (
	Readable Flags = 1 << iota
	Writable
	ConstructOnly
	ReadWrite = Readable | Writable
)

// NativeProperty declares a property carried by every instance of a class.
type NativeProperty struct {
	Name    string
	Type    style.ValueType
	Default style.Value
	Members []string // legal values for enum types
	Flags   Flags
}

func (np NativeProperty) settable() bool {
	return np.Flags&Writable != 0 && np.Flags&ConstructOnly == 0
}

// Descriptor describes a stylable property. Descriptors are immutable after
// registration.
type Descriptor struct {
	name    string
	vtype   style.ValueType
	deflt   style.Value
	members []string
	owner   ClassID
}

// Name returns the property name.
func (d *Descriptor) Name() string { return d.name }

// Type returns the semantic value type tag.
func (d *Descriptor) Type() style.ValueType { return d.vtype }

// Default returns the declared default value.
func (d *Descriptor) Default() style.Value { return d.deflt }

// Members returns the legal values of an enum property.
func (d *Descriptor) Members() []string { return d.members }

// Owner returns the class the descriptor has been installed for.
func (d *Descriptor) Owner() ClassID { return d.owner }

// Convert converts a raw themed value to the native type of the property.
func (d *Descriptor) Convert(p style.Property) (style.Value, error) {
	return style.Convert(d.vtype, p, d.members)
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s:%s(default=%v)", d.name, d.vtype, d.deflt)
}

// Class holds the declaration of a class.
type Class struct {
	ID     ClassID
	Name   string
	Parent ClassID
	props  map[string]NativeProperty
}

type pool map[string]*Descriptor

// Registry holds classes and their pools of stylable properties.
// The zero value is not usable, create registries with NewRegistry.
type Registry struct {
	classes []*Class // index = ClassID-1
	byName  map[string]ClassID
	pools   map[ClassID]pool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]ClassID),
		pools:  make(map[ClassID]pool),
	}
}

// RegisterClass declares a new class. If parent is NoClass, the class is a
// root class. Native properties with a default not matching their type get
// the zero value of their type as default.
//
// Registering a class name twice returns the ID of the existing class.
func (r *Registry) RegisterClass(name string, parent ClassID, props ...NativeProperty) ClassID {
	if id, ok := r.byName[name]; ok {
		tracer().Errorf("class %q already registered", name)
		return id
	}
	if parent != NoClass && r.Class(parent) == nil {
		tracer().Errorf("class %q: parent class %d unknown, registering as root class", name, parent)
		parent = NoClass
	}
	c := &Class{
		ID:     ClassID(len(r.classes) + 1),
		Name:   name,
		Parent: parent,
		props:  make(map[string]NativeProperty, len(props)),
	}
	for _, np := range props {
		c.props[np.Name] = normalize(np)
	}
	r.classes = append(r.classes, c)
	r.byName[name] = c.ID
	tracer().Debugf("registered class %s (#%d)", name, c.ID)
	return c.ID
}

func normalize(np NativeProperty) NativeProperty {
	if !np.Type.Accepts(np.Default) {
		if np.Default != nil {
			tracer().Errorf("property %s: default %#v does not match type %s", np.Name, np.Default, np.Type)
		}
		np.Default = style.ZeroValue(np.Type)
	}
	return np
}

// Class returns the class for an ID or nil.
func (r *Registry) Class(id ClassID) *Class {
	if id == NoClass || int(id) > len(r.classes) {
		return nil
	}
	return r.classes[id-1]
}

// ClassByName finds a class by name.
func (r *Registry) ClassByName(name string) (ClassID, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// Ancestors returns the chain of classes starting with id itself, up to the
// root class.
func (r *Registry) Ancestors(id ClassID) []ClassID {
	var chain []ClassID
	for c := r.Class(id); c != nil; c = r.Class(c.Parent) {
		chain = append(chain, c.ID)
	}
	return chain
}

// IsA is a predicate wether class id is ancestor or equal to class id.
func (r *Registry) IsA(id, ancestor ClassID) bool {
	for _, c := range r.Ancestors(id) {
		if c == ancestor {
			return true
		}
	}
	return false
}

// NativeProperty finds a native property of a class, walking up the ancestor
// chain.
func (r *Registry) NativeProperty(id ClassID, name string) (NativeProperty, bool) {
	for c := r.Class(id); c != nil; c = r.Class(c.Parent) {
		if np, ok := c.props[name]; ok {
			return np, true
		}
	}
	return NativeProperty{}, false
}

// Install makes a property stylable for a class. If the class does not yet
// declare a native property of this name, np is added to the class.
//
// Install fails if the property is read-only or construct-only, or if a
// stylable property of the same name is already installed for the class.
// Failures are logged and leave the registry unchanged.
func (r *Registry) Install(id ClassID, np NativeProperty) error {
	c := r.Class(id)
	if c == nil {
		return r.fail(fmt.Errorf("%w: #%d", ErrUnknownClass, id))
	}
	if !np.settable() {
		return r.fail(fmt.Errorf("%w: %s.%s", ErrNotWritable, c.Name, np.Name))
	}
	if _, exists := r.pools[id][np.Name]; exists {
		return r.fail(fmt.Errorf("%w: %s.%s", ErrRegistrationConflict, c.Name, np.Name))
	}
	existing, declared := r.NativeProperty(id, np.Name)
	if declared && !existing.settable() {
		return r.fail(fmt.Errorf("%w: %s.%s", ErrNotWritable, c.Name, np.Name))
	}
	if !declared {
		c.props[np.Name] = normalize(np)
	}
	r.add(c, normalize(np))
	return nil
}

// InstallByName makes an existing native property of a class (or one of its
// ancestors) stylable for the class.
func (r *Registry) InstallByName(id ClassID, name string) error {
	c := r.Class(id)
	if c == nil {
		return r.fail(fmt.Errorf("%w: #%d", ErrUnknownClass, id))
	}
	np, ok := r.NativeProperty(id, name)
	if !ok {
		return r.fail(fmt.Errorf("%w: %s.%s", ErrUnknownProperty, c.Name, name))
	}
	if !np.settable() {
		return r.fail(fmt.Errorf("%w: %s.%s", ErrNotWritable, c.Name, name))
	}
	if _, exists := r.pools[id][name]; exists {
		return r.fail(fmt.Errorf("%w: %s.%s", ErrRegistrationConflict, c.Name, name))
	}
	r.add(c, np)
	return nil
}

func (r *Registry) add(c *Class, np NativeProperty) {
	p := r.pools[c.ID]
	if p == nil {
		p = make(pool)
		r.pools[c.ID] = p
	}
	p[np.Name] = &Descriptor{
		name:    np.Name,
		vtype:   np.Type,
		deflt:   np.Default,
		members: np.Members,
		owner:   c.ID,
	}
	tracer().Debugf("installed stylable property %s.%s", c.Name, np.Name)
}

func (r *Registry) fail(err error) error {
	tracer().Errorf("stylable: %v", err)
	return err
}

// GetAll returns the stylable properties of a class as a fresh map, owned by
// the caller. If recursive is set, properties of ancestor classes are
// included, with a subclass' descriptor winning over same-named descriptors
// of its ancestors.
func (r *Registry) GetAll(id ClassID, recursive bool) map[string]*Descriptor {
	all := make(map[string]*Descriptor)
	for c := r.Class(id); c != nil; c = r.Class(c.Parent) {
		for name, d := range r.pools[c.ID] {
			if _, shadowed := all[name]; !shadowed {
				all[name] = d
			}
		}
		if !recursive {
			break
		}
	}
	return all
}

// Lookup finds the stylable property descriptor for name, as seen from
// class id (i.e., including ancestors).
func (r *Registry) Lookup(id ClassID, name string) (*Descriptor, bool) {
	for c := r.Class(id); c != nil; c = r.Class(c.Parent) {
		if d, ok := r.pools[c.ID][name]; ok {
			return d, true
		}
	}
	return nil, false
}

// Teardown releases all stylable property descriptors owned by a class.
// The class itself and its native properties stay registered.
func (r *Registry) Teardown(id ClassID) {
	if p, ok := r.pools[id]; ok {
		tracer().Debugf("tearing down %d stylable properties of class #%d", len(p), id)
		delete(r.pools, id)
	}
}
