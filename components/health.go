package components

import "github.com/yohamta/donburi"

// HealthData tracks structural integrity. Destroyed is terminal: once set,
// no system may mutate Current or Max again.
type HealthData struct {
	Current   float64
	Max       float64
	Destroyed bool
}

var Health = donburi.NewComponentType[HealthData]()
