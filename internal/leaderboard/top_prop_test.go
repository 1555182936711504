package leaderboard

import (
	"context"
	"sort"
	"testing"

	"pgregory.net/rapid"
)

// The top list is the TopLimit best submissions, best first, newer first on
// ties, whatever order they arrived in.
func TestTopProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		scores := rapid.SliceOfN(rapid.IntRange(-50, 50), 0, 40).Draw(t, "scores")

		svc := newTestService(NewMemoryStore())
		var all []Score
		for _, v := range scores {
			s, err := svc.SubmitScore(ctx, "p", v)
			if err != nil {
				t.Fatal(err)
			}
			all = append(all, s)
		}

		top, err := svc.GetTopScores(ctx)
		if err != nil {
			t.Fatal(err)
		}
		want := min(len(all), TopLimit)
		if len(top) != want {
			t.Fatalf("len = %d, want %d", len(top), want)
		}

		sort.Slice(all, func(i, j int) bool {
			if all[i].Score != all[j].Score {
				return all[i].Score > all[j].Score
			}
			return all[i].Timestamp > all[j].Timestamp
		})
		for i := range top {
			if top[i] != all[i] {
				t.Fatalf("top[%d] = %+v, want %+v", i, top[i], all[i])
			}
		}
	})
}
