package skyland

import "fmt"

// Score tracks the current run and the best run of the session.
type Score struct {
	Current int
	High    int
}

// Add scores one point and raises the highscore if needed.
func (s *Score) Add() {
	s.Current++
	s.High = max(s.High, s.Current)
}

// Text renders the score display: "3 < 7" while behind the highscore,
// "7 = 7" when level with it.
func (s Score) Text() string {
	rel := "<"
	if s.Current >= s.High {
		rel = "="
	}
	return fmt.Sprintf("%d %s %d", s.Current, rel, s.High)
}

// Outcome summarizes one consumption pass.
type Outcome struct {
	Eaten   int // food consumed
	Enemies int // enemies consumed
}

// Fatal reports whether an enemy was consumed.
func (o Outcome) Fatal() bool {
	return o.Enemies > 0
}

// Resolve consumes every entity in matches: each is terminated, food adds
// to score. Entities already terminated are skipped, so an entity is never
// consumed twice. The caller reacts to the outcome once for the whole set.
func Resolve(matches []*Entity, score *Score) Outcome {
	var out Outcome
	for _, e := range matches {
		if !e.Alive {
			continue
		}
		e.Stop()
		switch e.Kind {
		case Food:
			score.Add()
			out.Eaten++
		case Enemy:
			out.Enemies++
		}
	}
	return out
}
