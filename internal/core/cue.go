package core

// Cue names a sound effect the game asks the platform to play.
type Cue string

const (
	CueJump      Cue = "jump"
	CueEat       Cue = "eat"
	CueFootstep  Cue = "footstep"
	CueExplosion Cue = "explosion"
)

// AllCues lists every cue in a stable order.
var AllCues = []Cue{CueJump, CueEat, CueFootstep, CueExplosion}

// CuePlayer plays sound cues. Implementations must not block the caller.
type CuePlayer interface {
	Play(c Cue)
}

// NopCues is a CuePlayer that discards every cue.
type NopCues struct{}

// Play implements CuePlayer.
func (NopCues) Play(Cue) {}

// CueRecorder records every cue it is asked to play, in order.
type CueRecorder struct {
	Played []Cue
}

// Play implements CuePlayer.
func (r *CueRecorder) Play(c Cue) {
	r.Played = append(r.Played, c)
}

// Count returns how many times c was played.
func (r *CueRecorder) Count(c Cue) int {
	n := 0
	for _, p := range r.Played {
		if p == c {
			n++
		}
	}
	return n
}
