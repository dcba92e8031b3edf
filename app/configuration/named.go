package configuration

// NameAware is implemented by every configuration that carries a human-readable name.
type NameAware interface {
	GetName() string
	SetName(name string)
}

var _ NameAware = (*Named)(nil)

// Named stores a configuration name. It performs no validation.
type Named struct {
	name string
}

func (n *Named) GetName() string {
	return n.name
}

func (n *Named) SetName(name string) {
	n.name = name
}
