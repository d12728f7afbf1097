package commands

import (
	"context"

	"github.com/xhamera1/Hotel-app/internal/collection"
)

// Command runs one shell command. It returns false when the shell should
// stop.
type Command func(ctx context.Context, port *Port) bool

// Registry maps command names to commands in registration order
type Registry struct {
	commands *collection.OrderedMap[string, Command]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{commands: collection.NewOrderedMap[string, Command]()}
}

// NewHotelRegistry registers the hotel commands backed by svc
func NewHotelRegistry(svc HotelServicer) *Registry {
	r := NewRegistry()
	r.Register("prices", PricesCommand(svc))
	r.Register("view", ViewCommand(svc))
	r.Register("checkin", CheckInCommand(svc))
	r.Register("checkout", CheckOutCommand(svc))
	r.Register("list", ListCommand(svc))
	r.Register("save", SaveCommand(svc))
	r.Register("exit", ExitCommand())
	return r
}

// Register adds or replaces a command
func (r *Registry) Register(name string, command Command) {
	r.commands.Put(name, command)
}

// Lookup returns the command registered under name
func (r *Registry) Lookup(name string) (Command, bool) {
	return r.commands.Get(name)
}

// Names returns the registered command names in order
func (r *Registry) Names() []string {
	return r.commands.Keys()
}
