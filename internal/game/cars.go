package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCar = errors.New("unknown car")

// CarProfile is the immutable handling/colour set picked before a run.
type CarProfile struct {
	Name         string
	MaxSpeed     float64
	Acceleration float64
	Color        RGB
}

// Cars lists the selectable profiles in menu order.
var Cars = []CarProfile{
	{Name: "luxor", MaxSpeed: 7, Acceleration: 0.1, Color: RGB{R: 0xFF, G: 0xD7, B: 0x00}},
	{Name: "aether", MaxSpeed: 5, Acceleration: 0.2, Color: RGB{R: 0xFF, G: 0x45, B: 0x00}},
	{Name: "quantum", MaxSpeed: 4, Acceleration: 0.3, Color: RGB{R: 0x00, G: 0xBF, B: 0xFF}},
}

// CarByName looks up a profile case-insensitively.
func CarByName(name string) (CarProfile, error) {
	for _, c := range Cars {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return CarProfile{}, fmt.Errorf("%w: %q", ErrUnknownCar, name)
}

// CarByIndex looks up a profile by its 1-based menu slot.
func CarByIndex(slot int) (CarProfile, error) {
	if slot < 1 || slot > len(Cars) {
		return CarProfile{}, fmt.Errorf("%w: slot %d", ErrUnknownCar, slot)
	}
	return Cars[slot-1], nil
}
