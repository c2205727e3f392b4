package cooking

// ScoreBoard keeps the shift score. The total never drops below zero.
type ScoreBoard struct {
	total int

	// OnChange fires after every update with the new total.
	OnChange func(total int)
}

// IncreaseScore adds n (which may be negative) and returns the new total.
func (s *ScoreBoard) IncreaseScore(n int) int {
	s.total += n
	if s.total < 0 {
		s.total = 0
	}
	if s.OnChange != nil {
		s.OnChange(s.total)
	}
	return s.total
}

// Total returns the current score.
func (s *ScoreBoard) Total() int {
	return s.total
}

// Reset sets the score back to zero.
func (s *ScoreBoard) Reset() {
	s.total = 0
}
