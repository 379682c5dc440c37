package catalog

import (
	"patternlab/internal/domain"
	"patternlab/internal/patterns/behavioral"
	"patternlab/internal/patterns/creational"
	"patternlab/internal/patterns/structural"
)

// Options carries the configurable knobs of the catalog.
type Options struct {
	// ObserverSubscribers names the subscribers registered in the observer
	// demonstration. Defaults to User1 and User2.
	ObserverSubscribers []string
}

// Catalog is the registry of all demonstrations, in catalog order.
type Catalog struct {
	entries []domain.Entry
	byID    map[domain.ID]int
}

// New builds the full catalog.
func New(opts Options) *Catalog {
	subs := opts.ObserverSubscribers
	if len(subs) == 0 {
		subs = []string{"User1", "User2"}
	}

	entries := []domain.Entry{
		{
			ID:           "chain_of_responsibility",
			Category:     domain.Behavioral,
			Summary:      "A request walks a handler chain until one handles it.",
			InputHint:    "one request keyword (moderator | admin)",
			DefaultInput: domain.Input{Args: []string{"admin"}},
			Run:          behavioral.ChainOfResponsibility,
		},
		{
			ID:           "command",
			Category:     domain.Behavioral,
			Summary:      "An invoker executes command objects against a light receiver.",
			InputHint:    "command names (light_on | light_off)",
			DefaultInput: domain.Input{Args: []string{"light_on", "light_off"}},
			Run:          behavioral.Command,
		},
		{
			ID:           "iterator",
			Category:     domain.Behavioral,
			Summary:      "A cursor walks a playlist without exposing its storage.",
			InputHint:    "track names",
			DefaultInput: domain.Input{Args: []string{"First", "Second", "Third"}},
			Run:          behavioral.Iterator,
		},
		{
			ID:           "mediator",
			Category:     domain.Behavioral,
			Summary:      "A chat room relays messages between members via one hub.",
			InputHint:    "messages sent by the first member",
			DefaultInput: domain.Input{Args: []string{"Hello"}},
			Run:          behavioral.Mediator,
		},
		{
			ID:           "memento",
			Category:     domain.Behavioral,
			Summary:      "An editor snapshots its content and undoes the last edit.",
			InputHint:    "texts typed in sequence",
			DefaultInput: domain.Input{Args: []string{"draft one", "draft two"}},
			Run:          behavioral.Memento,
		},
		{
			ID:           "observer",
			Category:     domain.Behavioral,
			Summary:      "Registered subscribers each receive every published message.",
			InputHint:    "messages to publish",
			DefaultInput: domain.Input{Args: []string{"New update available!"}},
			Run:          behavioral.Observer(subs),
		},
		{
			ID:           "state",
			Category:     domain.Behavioral,
			Summary:      "An order moves Placed -> Shipped -> Delivered and back.",
			InputHint:    "transitions (forward | back)",
			DefaultInput: domain.Input{Args: []string{"forward", "forward"}},
			Run:          behavioral.State,
		},
		{
			ID:           "strategy",
			Category:     domain.Behavioral,
			Summary:      "Checkout selects a payment strategy at run time.",
			InputHint:    "strategy names (credit_card | paypal | crypto)",
			DefaultInput: domain.Input{Args: []string{"credit_card"}},
			Run:          behavioral.Strategy,
		},
		{
			ID:           "template_method",
			Category:     domain.Behavioral,
			Summary:      "A fixed brewing skeleton with beverage-specific steps.",
			InputHint:    "beverages (tea | coffee)",
			DefaultInput: domain.Input{Args: []string{"tea"}},
			Run:          behavioral.TemplateMethod,
		},
		{
			ID:           "visitor",
			Category:     domain.Behavioral,
			Summary:      "Visitors apply operations across a fixed shape list.",
			InputHint:    "visitor names (draw | area)",
			DefaultInput: domain.Input{Args: []string{"draw"}},
			Run:          behavioral.Visitor,
		},
		{
			ID:           "abstract_factory",
			Category:     domain.Creational,
			Summary:      "A themed factory renders a matched widget family.",
			InputHint:    "one theme (dark | light)",
			DefaultInput: domain.Input{Args: []string{"dark"}},
			Run:          creational.AbstractFactory,
		},
		{
			ID:           "builder",
			Category:     domain.Creational,
			Summary:      "A fluent builder assembles a computer step by step.",
			InputHint:    "one preset (gaming | office)",
			DefaultInput: domain.Input{Args: []string{"gaming"}},
			Run:          creational.Builder,
		},
		{
			ID:           "factory_method",
			Category:     domain.Creational,
			Summary:      "A factory creates animals that each speak their sound.",
			InputHint:    "animal kinds (dog | cat | cow)",
			DefaultInput: domain.Input{Args: []string{"dog", "cat"}},
			Run:          creational.FactoryMethod,
		},
		{
			ID:           "prototype",
			Category:     domain.Creational,
			Summary:      "A cloned document is edited without touching the original.",
			InputHint:    "one document title",
			DefaultInput: domain.Input{Args: []string{"Quarterly Report"}},
			Run:          creational.Prototype,
		},
		{
			ID:           "singleton",
			Category:     domain.Creational,
			Summary:      "One explicitly constructed config value shared by services.",
			InputHint:    "one application name",
			DefaultInput: domain.Input{Args: []string{"patternlab"}},
			Run:          creational.Singleton,
		},
		{
			ID:           "adapter",
			Category:     domain.Structural,
			Summary:      "A modern request is adapted to a legacy printer format.",
			InputHint:    "one request text",
			DefaultInput: domain.Input{Args: []string{"hello"}},
			Run:          structural.Adapter,
		},
		{
			ID:           "bridge",
			Category:     domain.Structural,
			Summary:      "A remote abstraction drives interchangeable devices.",
			InputHint:    "one device (tv | radio)",
			DefaultInput: domain.Input{Args: []string{"tv"}},
			Run:          structural.Bridge,
		},
		{
			ID:           "composite",
			Category:     domain.Structural,
			Summary:      "Files and directories answer render and size uniformly.",
			InputHint:    "one root directory name",
			DefaultInput: domain.Input{Args: []string{"project"}},
			Run:          structural.Composite,
		},
		{
			ID:           "decorator",
			Category:     domain.Structural,
			Summary:      "Extras wrap an espresso and stack their surcharges.",
			InputHint:    "extras (milk | sugar | shot)",
			DefaultInput: domain.Input{Args: []string{"milk", "sugar"}},
			Run:          structural.Decorator,
		},
		{
			ID:           "facade",
			Category:     domain.Structural,
			Summary:      "One call drives the home-theater subsystems in order.",
			InputHint:    "one movie title",
			DefaultInput: domain.Input{Args: []string{"Inception"}},
			Run:          structural.Facade,
		},
		{
			ID:           "proxy",
			Category:     domain.Structural,
			Summary:      "A proxy gates access to the real service by role.",
			InputHint:    "one role",
			DefaultInput: domain.Input{Args: []string{"admin"}},
			Run:          structural.Proxy,
		},
	}

	byID := make(map[domain.ID]int, len(entries))
	for i, e := range entries {
		byID[e.ID] = i
	}
	return &Catalog{entries: entries, byID: byID}
}

// Lookup returns the entry for id.
func (c *Catalog) Lookup(id domain.ID) (domain.Entry, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Entry{}, &domain.UnknownPatternError{ID: id}
	}
	return c.entries[i], nil
}

// Entries returns all entries in catalog order.
func (c *Catalog) Entries() []domain.Entry {
	out := make([]domain.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Compile-time assertion that Catalog implements domain.Registry.
var _ domain.Registry = (*Catalog)(nil)
