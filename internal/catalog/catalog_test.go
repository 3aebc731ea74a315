package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	raw := []byte(`
version: 2
quests:
  - id: skincare
    name: Skincare Routine
    group: ops
    reward_xp: 10
    recurrence: daily
  - id: visit_hungerford
    name: Visit Hungerford
    group: stakeholders
    reward_xp: 150
    reward_rp: 50
    recurrence: permanent
    urgent: true
  - id: golf_engagement
    name: Golf Engagement Round
    group: stakeholders
    recurrence: daily
    score:
      base_xp: 40
      cap: 100
`)
	c, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Version())
	assert.Equal(t, 3, c.Len())

	q, ok := c.Get("visit_hungerford")
	require.True(t, ok)
	assert.Equal(t, 150, q.RewardXP)
	assert.Equal(t, 50, q.RewardRP)
	assert.True(t, q.Urgent)
	assert.Equal(t, RecurrencePermanent, q.Recurrence)

	g, ok := c.Get("golf_engagement")
	require.True(t, ok)
	require.NotNil(t, g.Score)
	assert.Equal(t, 40, g.Score.BaseXP)
	assert.Equal(t, 100, g.Score.Cap)

	assert.Equal(t, []string{"ops", "stakeholders"}, c.Groups())
	assert.Len(t, c.ByGroup("stakeholders"), 2)
}

func TestParseCatalogRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"missing version": `
quests:
  - {id: a, recurrence: daily}
`,
		"duplicate id": `
version: 1
quests:
  - {id: a, recurrence: daily}
  - {id: a, recurrence: daily}
`,
		"empty id": `
version: 1
quests:
  - {id: "  ", recurrence: daily}
`,
		"bad recurrence": `
version: 1
quests:
  - {id: a, recurrence: weekly}
`,
		"negative reward": `
version: 1
quests:
  - {id: a, recurrence: daily, reward_xp: -5}
`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestBaseline(t *testing.T) {
	c := Baseline()
	require.NotZero(t, c.Len())

	// Scenario anchors the rest of the suite relies on.
	skin, ok := c.Get("skincare")
	require.True(t, ok)
	assert.Equal(t, 10, skin.RewardXP)
	assert.Equal(t, RecurrenceDaily, skin.Recurrence)

	golf, ok := c.Get("golf_engagement")
	require.True(t, ok)
	require.NotNil(t, golf.Score)

	// Every definition must survive the validator it was built with.
	_, err := New(c.Version(), c.All())
	assert.NoError(t, err)
}

func TestGetUnknown(t *testing.T) {
	c := Baseline()
	_, ok := c.Get("no_such_quest")
	assert.False(t, ok)
}
