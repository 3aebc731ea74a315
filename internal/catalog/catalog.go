// Package catalog holds the static quest definitions the engine runs
// against. Definitions are loaded once per session (from a YAML file or
// the built-in baseline) and are immutable afterwards.
package catalog

import (
	"fmt"
	"strings"
)

type Recurrence string

const (
	// RecurrenceDaily quests are completable once per calendar date.
	RecurrenceDaily Recurrence = "daily"
	// RecurrencePermanent quests are completable once, ever.
	RecurrencePermanent Recurrence = "permanent"
)

func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceDaily, RecurrencePermanent:
		return true
	default:
		return false
	}
}

func ParseRecurrence(input string) (Recurrence, error) {
	r := Recurrence(strings.TrimSpace(strings.ToLower(input)))
	if !r.IsValid() {
		return "", fmt.Errorf("invalid recurrence: %q", input)
	}
	return r, nil
}

// ScoreRule marks a quest whose XP is computed from a performance score
// at commit time: rewardXP = BaseXP + max(0, Cap - score).
type ScoreRule struct {
	BaseXP int `yaml:"base_xp"`
	Cap    int `yaml:"cap"`
}

// QuestDefinition is read-only to the engine. The engine consumes only
// ID, the reward vector, Recurrence, Urgent and Score; Name, Group,
// Advisor and Message are flavor passed through to presentation.
type QuestDefinition struct {
	ID         string     `yaml:"id"`
	Name       string     `yaml:"name"`
	Group      string     `yaml:"group"`
	RewardXP   int        `yaml:"reward_xp"`
	RewardRP   int        `yaml:"reward_rp"`
	Recurrence Recurrence `yaml:"recurrence"`
	Urgent     bool       `yaml:"urgent"`
	Advisor    string     `yaml:"advisor"`
	Message    string     `yaml:"message"`
	Score      *ScoreRule `yaml:"score"`
}

// Catalog is an immutable, id-indexed set of quest definitions.
type Catalog struct {
	version int
	quests  []QuestDefinition
	byID    map[string]int
}

// New validates the definitions and builds the id index.
func New(version int, defs []QuestDefinition) (*Catalog, error) {
	byID := make(map[string]int, len(defs))
	for i, d := range defs {
		if strings.TrimSpace(d.ID) == "" {
			return nil, fmt.Errorf("quest %d: id is required", i)
		}
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate quest id %q", d.ID)
		}
		if d.RewardXP < 0 || d.RewardRP < 0 {
			return nil, fmt.Errorf("quest %q: rewards must be >= 0", d.ID)
		}
		if !d.Recurrence.IsValid() {
			return nil, fmt.Errorf("quest %q: invalid recurrence %q", d.ID, d.Recurrence)
		}
		if d.Score != nil && (d.Score.BaseXP < 0 || d.Score.Cap < 0) {
			return nil, fmt.Errorf("quest %q: score rule must be >= 0", d.ID)
		}
		byID[d.ID] = i
	}
	quests := make([]QuestDefinition, len(defs))
	copy(quests, defs)
	return &Catalog{version: version, quests: quests, byID: byID}, nil
}

func (c *Catalog) Version() int { return c.version }

func (c *Catalog) Len() int { return len(c.quests) }

// Get returns the definition for id, or false if unknown.
func (c *Catalog) Get(id string) (QuestDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return QuestDefinition{}, false
	}
	return c.quests[i], true
}

// All returns the definitions in catalog order.
func (c *Catalog) All() []QuestDefinition {
	out := make([]QuestDefinition, len(c.quests))
	copy(out, c.quests)
	return out
}

// Groups returns the distinct group names in first-seen order.
func (c *Catalog) Groups() []string {
	seen := map[string]bool{}
	var out []string
	for _, q := range c.quests {
		if !seen[q.Group] {
			seen[q.Group] = true
			out = append(out, q.Group)
		}
	}
	return out
}

// ByGroup returns the definitions of one group in catalog order.
func (c *Catalog) ByGroup(group string) []QuestDefinition {
	var out []QuestDefinition
	for _, q := range c.quests {
		if q.Group == group {
			out = append(out, q)
		}
	}
	return out
}
