package core

import "time"

// Stats tracks generation throughput and population for display.
type Stats struct {
	Generation           int
	Population           int
	AveragePopulation    float64
	GenerationsPerSecond float64
	StartTime            time.Time

	last time.Time
}

// NewStats returns Stats anchored at now.
func NewStats(now time.Time) *Stats {
	return &Stats{StartTime: now}
}

// Update records a generation observed at now.
func (s *Stats) Update(generation, population int, now time.Time) {
	s.Generation = generation
	s.Population = population
	if !s.last.IsZero() {
		if d := now.Sub(s.last); d > 0 {
			s.GenerationsPerSecond = 1.0 / d.Seconds()
		}
	}
	s.last = now

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Restart clears counters after the grid was rebuilt.
func (s *Stats) Restart(population int, now time.Time) {
	*s = Stats{Population: population, AveragePopulation: float64(population), StartTime: now}
}
