package hud

// Variant names one of the fixed HUD containers.
type Variant int

const (
	VariantEx Variant = iota
	VariantOff
	VariantFull

	variantCount
)

// State reports which container drives the HUD.
type State int

const (
	NoHUD State = iota
	ExHUD
	OffHUD
	FullHUD
)

func (s State) String() string {
	switch s {
	case ExHUD:
		return "ex"
	case OffHUD:
		return "off"
	case FullHUD:
		return "full"
	}
	return "none"
}

// Container is a named set of component instances for one HUD style.
type Container struct {
	Name string
	// StatusBar containers keep the status bar area free.
	StatusBar  bool
	Loaded     bool
	Components [componentCount]Component
}

func newContainers() [variantCount]Container {
	return [variantCount]Container{
		VariantEx:   {Name: "ex", StatusBar: true},
		VariantOff:  {Name: "off", StatusBar: true},
		VariantFull: {Name: "full"},
	}
}

// Variants lists the containers in table order.
func Variants() []Variant { return []Variant{VariantEx, VariantOff, VariantFull} }

func (v Variant) String() string {
	switch v {
	case VariantEx:
		return "ex"
	case VariantOff:
		return "off"
	case VariantFull:
		return "full"
	}
	return "unknown"
}

func (v Variant) state() State {
	switch v {
	case VariantEx:
		return ExHUD
	case VariantOff:
		return OffHUD
	case VariantFull:
		return FullHUD
	}
	return NoHUD
}

// reset replaces every instance with a fresh copy of the descriptors.
func (c *Container) reset(t *Table) {
	for i := range c.Components {
		c.Components[i] = Component{Descriptor: t[i]}
	}
}

// Placed returns the IDs initialized from configuration, in table order.
func (c Container) Placed() []ID {
	var ids []ID
	for i := range c.Components {
		if c.Components[i].Initialized {
			ids = append(ids, ID(i))
		}
	}
	return ids
}

func (c *Container) turnOn(id ID) {
	if !c.Components[id].Initialized {
		return
	}
	c.Components[id].On = true
}

func (c *Container) turnOff(id ID) {
	c.Components[id].On = false
}

func (c *Container) set(id ID, on bool) {
	if on {
		c.turnOn(id)
	} else {
		c.turnOff(id)
	}
}
