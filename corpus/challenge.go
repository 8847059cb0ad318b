package corpus

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultChallenge is the variant prepared when none is selected.
const DefaultChallenge = "two_supporting_facts_10k"

// Challenge selects one bAbI task variant inside the archive.
type Challenge struct {
	Name string

	// pattern is the archive member path with a placeholder for the split.
	pattern string
}

// Member returns the archive member path of the given split ("train" or
// "test").
func (c Challenge) Member(split string) string {
	return strings.Replace(c.pattern, "{}", split, 1)
}

var challenges = map[string]Challenge{
	"single_supporting_fact_10k": {
		Name:    "single_supporting_fact_10k",
		pattern: "tasks_1-20_v1-2/en-10k/qa1_single-supporting-fact_{}.txt",
	},
	"two_supporting_facts_10k": {
		Name:    "two_supporting_facts_10k",
		pattern: "tasks_1-20_v1-2/en-10k/qa2_two-supporting-facts_{}.txt",
	},
	"single_supporting_fact_1k": {
		Name:    "single_supporting_fact_1k",
		pattern: "tasks_1-20_v1-2/en/qa1_single-supporting-fact_{}.txt",
	},
	"two_supporting_facts_1k": {
		Name:    "two_supporting_facts_1k",
		pattern: "tasks_1-20_v1-2/en/qa2_two-supporting-facts_{}.txt",
	},
}

// ChallengeByName returns the named challenge.
func ChallengeByName(name string) (Challenge, error) {
	c, ok := challenges[name]
	if !ok {
		return Challenge{}, fmt.Errorf("unknown challenge %q, available: %s", name, strings.Join(ChallengeNames(), ", "))
	}
	return c, nil
}

// ChallengeNames returns the available challenge names, sorted.
func ChallengeNames() []string {
	names := make([]string, 0, len(challenges))
	for name := range challenges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
