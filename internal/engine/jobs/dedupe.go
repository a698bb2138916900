package jobs

import (
	"fmt"

	"github.com/anatolykoptev/go_jobmatch/internal/engine"
)

// Dedupe drops jobs whose URL was already seen, keeping the first
// occurrence in input order. IDs in the output are unique: a later job whose
// ID collides with a kept one gets an ID derived from its URL.
func Dedupe(jobs []engine.EnrichedJob) []engine.EnrichedJob {
	seenURL := make(map[string]bool, len(jobs))
	seenID := make(map[string]bool, len(jobs))
	out := make([]engine.EnrichedJob, 0, len(jobs))
	for _, j := range jobs {
		if seenURL[j.URL] {
			continue
		}
		seenURL[j.URL] = true
		if j.ID == "" || seenID[j.ID] {
			j.ID = uniqueID(j, seenID)
		}
		seenID[j.ID] = true
		out = append(out, j)
	}
	return out
}

func uniqueID(j engine.EnrichedJob, taken map[string]bool) string {
	id := jobID(j.URL, j.Title)
	for n := 2; taken[id]; n++ {
		id = jobID(fmt.Sprintf("%s#%d", j.URL, n), j.Title)
	}
	return id
}
