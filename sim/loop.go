package sim

import (
	"log"
	"time"
)

// Loop drives a Sim at its configured tick rate on a wall-clock ticker.
// Tests call Sim.Update directly instead; the loop exists for the live game.
type Loop struct {
	sim      *Sim
	tickRate int
	running  bool
	stopChan chan struct{}
}

func NewLoop(s *Sim, tickRate int) *Loop {
	return &Loop{
		sim:      s,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks, ticking the simulation until Stop is called
func (l *Loop) Run() {
	l.running = true
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Simulation loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			l.running = false
			log.Println("Simulation loop stopped")
			return
		case <-ticker.C:
			l.sim.Update()
		}
	}
}

func (l *Loop) Stop() {
	close(l.stopChan)
}
