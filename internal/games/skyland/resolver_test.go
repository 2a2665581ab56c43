package skyland

import (
	"testing"

	"github.com/vovakirdan/skyland/internal/core"
)

func TestScoreHighscore(t *testing.T) {
	s := Score{}
	for i := 0; i < 5; i++ {
		s.Add()
		if s.High < s.Current {
			t.Fatalf("highscore %d below score %d", s.High, s.Current)
		}
	}
	s.Current = 0
	s.Add()
	if s.High != 5 || s.Current != 1 {
		t.Errorf("score = %+v, want current 1 high 5", s)
	}
}

func TestScoreText(t *testing.T) {
	tests := []struct {
		score Score
		want  string
	}{
		{Score{0, 0}, "0 = 0"},
		{Score{1, 1}, "1 = 1"},
		{Score{3, 7}, "3 < 7"},
	}
	for _, tt := range tests {
		if got := tt.score.Text(); got != tt.want {
			t.Errorf("%+v.Text() = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestResolveMixedSet(t *testing.T) {
	matches := []*Entity{
		NewEntity(Food, core.Vec{}, core.Vec{}),
		NewEntity(Enemy, core.Vec{}, core.Vec{}),
		NewEntity(Food, core.Vec{}, core.Vec{}),
	}
	score := Score{}

	out := Resolve(matches, &score)
	if out.Eaten != 2 || out.Enemies != 1 || !out.Fatal() {
		t.Errorf("outcome = %+v, want 2 eaten and 1 enemy", out)
	}
	if score.Current != 2 || score.High != 2 {
		t.Errorf("score = %+v, want 2/2", score)
	}
	for i, e := range matches {
		if e.Alive {
			t.Errorf("entity %d still alive after consumption", i)
		}
	}

	again := Resolve(matches, &score)
	if again.Eaten != 0 || again.Enemies != 0 || score.Current != 2 {
		t.Errorf("terminated entities consumed twice: %+v, score %+v", again, score)
	}
}

func TestResolveEmpty(t *testing.T) {
	score := Score{Current: 3, High: 4}
	out := Resolve(nil, &score)
	if out != (Outcome{}) || score != (Score{Current: 3, High: 4}) {
		t.Errorf("empty resolve changed state: %+v %+v", out, score)
	}
}
