package room

import (
	"sort"
	"strconv"
)

// VoteCount is one option's live tally for a config field, shown as a
// poll bar pre-game.
type VoteCount struct {
	Option     string
	Voters     []string
	Percentage int
}

// VoteBreakdown groups the current votes per config field and
// computes the percentage split for display. Keys: "slapDown",
// "canCallYaniv", "maxMatchPoints".
func (s *Store) VoteBreakdown() map[string][]VoteCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields := map[string]func(Config) string{
		"slapDown":       func(c Config) string { return strconv.FormatBool(c.SlapDown) },
		"canCallYaniv":   func(c Config) string { return strconv.Itoa(c.CanCallYaniv) },
		"maxMatchPoints": func(c Config) string { return strconv.Itoa(c.MaxMatchPoints) },
	}

	breakdown := make(map[string][]VoteCount, len(fields))
	total := len(s.votes)
	if total == 0 {
		return breakdown
	}

	for field, extract := range fields {
		byOption := make(map[string][]string)
		for playerID, vote := range s.votes {
			option := extract(vote)
			byOption[option] = append(byOption[option], playerID)
		}

		counts := make([]VoteCount, 0, len(byOption))
		for option, voters := range byOption {
			sort.Strings(voters)
			counts = append(counts, VoteCount{
				Option:     option,
				Voters:     voters,
				Percentage: int(float64(len(voters))/float64(total)*100 + 0.5),
			})
		}
		sort.Slice(counts, func(i, j int) bool { return counts[i].Option < counts[j].Option })
		breakdown[field] = counts
	}
	return breakdown
}
