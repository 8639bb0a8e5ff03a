package leaderboard

import (
	"sort"

	"github.com/idilsaglam/sharehouse/internal/model"
)

// Entry is a ranked person with the width of their bar in percent.
type Entry struct {
	model.Person
	Rank  int
	Width float64
}

// Board lists the local user first, followed by the housemates.
func Board(user string, points int, housemates []model.Person) []model.Person {
	out := make([]model.Person, 0, len(housemates)+1)
	out = append(out, model.Person{Name: user, Points: points})
	return append(out, housemates...)
}

// Rank sorts people by points, highest first. Ties keep their input order,
// so with Board the local user is listed ahead of a housemate on equal points.
// The leader's bar is 100 wide; when nobody has points every bar is 0.
func Rank(people []model.Person) []Entry {
	sorted := make([]model.Person, len(people))
	copy(sorted, people)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})

	maxPts := 0
	for _, p := range sorted {
		if p.Points > maxPts {
			maxPts = p.Points
		}
	}

	out := make([]Entry, 0, len(sorted))
	for i, p := range sorted {
		e := Entry{Person: p, Rank: i + 1}
		if maxPts > 0 {
			e.Width = float64(p.Points) / float64(maxPts) * 100
		}
		out = append(out, e)
	}
	return out
}
