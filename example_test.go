package typedbus_test

import (
	"fmt"

	"github.com/vincentAlen/typedbus"
)

func ExampleSubscribe() {
	bus := typedbus.New()

	typedbus.Subscribe(bus, func(ev Moved) error {
		fmt.Printf("%s moved to (%d, %d)\n", ev.Name, ev.X, ev.Y)
		return nil
	})
	typedbus.Subscribe(bus, func(ev Spawned) error {
		fmt.Printf("%s #%d spawned with %.0f HP\n", ev.Kind, ev.ID, ev.Health)
		return nil
	})

	_ = typedbus.Emit(bus, Moved{X: 10, Y: 20, Name: "Hero"})
	_ = typedbus.Emit(bus, Spawned{ID: 101, Health: 50.0, Kind: "Goblin"})
	_ = typedbus.Emit(bus, Moved{X: 15, Y: 25, Name: "Hero"})
	// Output:
	// Hero moved to (10, 20)
	// Goblin #101 spawned with 50 HP
	// Hero moved to (15, 25)
}

func ExampleEmit() {
	bus := typedbus.New()

	// Emitting with no listeners is a silent no-op.
	err := typedbus.Emit(bus, Spawned{ID: 1, Kind: "Slime"})
	fmt.Println(err)
	// Output:
	// <nil>
}

func ExampleKeyOf() {
	fmt.Println(typedbus.KeyOf[Moved]() == typedbus.KeyOf[Moved]())
	fmt.Println(typedbus.KeyOf[Moved]() == typedbus.KeyOf[Spawned]())
	// Output:
	// true
	// false
}
