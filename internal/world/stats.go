package world

// StepsPerSecond is the fixed simulation rate.
const StepsPerSecond = 60

// RoundStats counts what happened since the last lock.
type RoundStats struct {
	Shots int
	Hits  int
	Ticks int
}

func (s *RoundStats) Reset() { *s = RoundStats{} }

// Seconds is the simulated play time of the round.
func (s RoundStats) Seconds() float64 { return float64(s.Ticks) / StepsPerSecond }

// Accuracy returns hits per shot, 0 when nothing was fired.
func (s RoundStats) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots)
}
