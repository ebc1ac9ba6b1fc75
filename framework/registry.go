package framework

// Registry is an ordered collection of units. Units run in the order in which they were
// registered. Registering is not safe for concurrent use; all units should be registered, from
// init functions or from the start of main, before a run begins.
type Registry struct {
	units []*Unit
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns the process-wide Registry used by Test, TestF, and RunMain.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a unit at the end of the registry. Duplicate units and duplicate names are
// allowed; each entry runs separately.
func (r *Registry) Register(u *Unit) {
	r.units = append(r.units, u)
}

// Units returns the registered units in registration order. The returned slice is a copy.
func (r *Registry) Units() []*Unit {
	return append([]*Unit(nil), r.units...)
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	return len(r.units)
}

// Test creates a unit with the specified group, name, and body, and registers it.
func (r *Registry) Test(group, name string, body func(*T)) *Unit {
	u := newUnit(group, name, callerLocation(1), body)
	r.Register(u)
	return u
}

// Test creates a unit and registers it in the default registry.
//
//	func init() {
//		framework.Test("Parser", "empty input is an error", func(t *framework.T) {
//			_, err := Parse("")
//			t.True(err != nil)
//		})
//	}
func Test(group, name string, body func(*T)) *Unit {
	u := newUnit(group, name, callerLocation(1), body)
	defaultRegistry.Register(u)
	return u
}

// RegisterFixture creates a unit whose body receives a fixture value, and registers it. The
// setup function is called to create a new fixture every time the unit runs; it runs inside the
// unit, so a panic in setup is reported as a failure of that unit. If setup is nil, the body
// receives the zero value of F.
func RegisterFixture[F any](r *Registry, group, name string, setup func() F, body func(*T, F)) *Unit {
	u := newUnit(group, name, callerLocation(1), fixtureBody(setup, body))
	r.Register(u)
	return u
}

// TestF is the same as RegisterFixture, using the default registry.
func TestF[F any](group, name string, setup func() F, body func(*T, F)) *Unit {
	u := newUnit(group, name, callerLocation(1), fixtureBody(setup, body))
	defaultRegistry.Register(u)
	return u
}

func fixtureBody[F any](setup func() F, body func(*T, F)) func(*T) {
	return func(t *T) {
		var fixture F
		if setup != nil {
			fixture = setup()
		}
		body(t, fixture)
	}
}
