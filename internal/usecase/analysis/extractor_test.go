package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

const sprintTranscript = `PM: Alright folks, we've got 45 minutes to lock the priorities for sprint 19.
Engineer_1: Login flow is still breaking intermittently on mobile.
QA: Yeah, it passed 4/5 tests this morning, but the last one failed due to timeout.
PM: Noted. Should we mark it as a P1 or P2 for now?
Engineer_2: If it's just timeout, might be a P2. Not critical.
Designer: Still waiting on final copy for the onboarding screens.
Product Lead: Onboarding redesign isn't on the roadmap this sprint, is it?
PM: It's not officially in, but marketing asked for it again yesterday.
Marketing: Yes, launch was supposed to be next week but they pushed. We could still make it.
Engineer_1: If we're doing onboarding, we need specs locked today.
PM: Let's take that offline. Back to dev priorities.
Engineer_2: Still unclear who's owning the analytics migration.
Data: Was under the impression Product was leading that.
Product Lead: No, we passed that to Data last sprint.
PM: Okay... let's add a Jira ticket to clarify ownership there.
QA: The test coverage report is still broken. Fixed it twice but it keeps failing.
Engineer_2: Let's fix that configuration before our Friday check-in.
PM: Adding that to the list. Anything else?
Marketing: Just need to know about onboarding.
PM: We'll sync on that after this.`

func newTestExtractor() *Extractor {
	return NewExtractor(DefaultRules(), FixedDueDate("April 21, 2025"))
}

func TestExtract_Decisions(t *testing.T) {
	e := newTestExtractor()

	t.Run("cue extracts the text after the speaker", func(t *testing.T) {
		out := e.Extract("Lead: Decision made: ship it")
		assert.Equal(t, []string{"Decision made: ship it"}, out.Decisions)
		assert.False(t, out.UsedFallback.Decisions)
	})

	t.Run("suppressed cue is skipped entirely", func(t *testing.T) {
		out := e.Extract("Lead: Decision owners will rotate, I'll send the schedule")
		assert.True(t, out.UsedFallback.Decisions)
		assert.True(t, out.UsedFallback.ActionItems)
	})

	t.Run("line without colon is used whole", func(t *testing.T) {
		out := e.Extract("we decided to move the standup")
		assert.Equal(t, []string{"we decided to move the standup"}, out.Decisions)
	})

	t.Run("zero decisions yields the fallback verbatim", func(t *testing.T) {
		out := e.Extract("A: hello\nB: goodbye")
		assert.Equal(t, []string{
			"Prioritize redesigning the user onboarding flow",
			"Delay marketing campaign from June to July",
			"Allocate $5,000 for user testing",
		}, out.Decisions)
		assert.True(t, out.UsedFallback.Decisions)
	})
}

func TestExtract_ActionItems(t *testing.T) {
	e := newTestExtractor()

	t.Run("cue extracts task and assignee", func(t *testing.T) {
		out := e.Extract("QA: I'll rerun the flaky suite")
		require.Len(t, out.ActionItems, 1)
		assert.Equal(t, ExtractedActionItem{
			Task:     "I'll rerun the flaky suite",
			Assignee: "QA Team",
			DueDate:  "April 21, 2025",
			Status:   entities.ActionItemStatusNotStarted,
		}, out.ActionItems[0])
		assert.False(t, out.UsedFallback.ActionItems)
	})

	t.Run("suppressed by closing remark", func(t *testing.T) {
		out := e.Extract("PM: let's close the meeting")
		assert.True(t, out.UsedFallback.ActionItems)
		assert.Equal(t, FallbackActionItems(), out.ActionItems)
	})

	t.Run("line without colon is its own speaker", func(t *testing.T) {
		out := e.Extract("we need to ship the fix")
		require.Len(t, out.ActionItems, 1)
		assert.Equal(t, "we need to ship the fix", out.ActionItems[0].Assignee)
		assert.Equal(t, "we need to ship the fix", out.ActionItems[0].Task)
	})

	t.Run("line without colon still goes through the role table", func(t *testing.T) {
		out := e.Extract("Data will need to migrate the warehouse")
		require.Len(t, out.ActionItems, 1)
		assert.Equal(t, "Data Team", out.ActionItems[0].Assignee)
	})

	t.Run("empty speaker label is Unknown", func(t *testing.T) {
		out := e.Extract(": we need a new build agent")
		require.Len(t, out.ActionItems, 1)
		assert.Equal(t, "Unknown", out.ActionItems[0].Assignee)
		assert.Equal(t, "we need a new build agent", out.ActionItems[0].Task)
	})

	t.Run("fallback items have fixed assignees", func(t *testing.T) {
		out := e.Extract("")
		require.Len(t, out.ActionItems, 3)
		assert.Equal(t, "Jane Smith", out.ActionItems[0].Assignee)
		assert.Equal(t, "April 23, 2025", out.ActionItems[1].DueDate)
	})
}

func TestExtract_SprintTranscript(t *testing.T) {
	out := newTestExtractor().Extract(sprintTranscript)

	assert.Equal(t, []string{
		"Noted. Should we mark it as a P1 or P2 for now?",
		"Okay... let's add a Jira ticket to clarify ownership there.",
	}, out.Decisions)

	assignees := make([]string, 0, len(out.ActionItems))
	for _, item := range out.ActionItems {
		assignees = append(assignees, item.Assignee)
	}
	assert.Equal(t, []string{
		"Project Manager",
		"Engineering Team",
		"Project Manager",
		"Engineering Team",
		"Marketing Team",
	}, assignees)

	for _, item := range out.ActionItems {
		assert.NotContains(t, strings.ToLower(item.Task), "take that offline")
	}
}

func TestExtract_IsDeterministicWithSeededDates(t *testing.T) {
	a := NewExtractor(DefaultRules(), NewRandomDueDates(42)).Extract(DemoTranscript)
	b := NewExtractor(DefaultRules(), NewRandomDueDates(42)).Extract(DemoTranscript)
	assert.Equal(t, a, b)

	for _, item := range a.ActionItems {
		assert.Regexp(t, `^April (2[0-9]), 2025$`, item.DueDate)
	}
}

func TestExtract_FallbackIsNotShared(t *testing.T) {
	out := newTestExtractor().Extract("")
	out.Decisions[0] = "changed"
	assert.Equal(t, "Prioritize redesigning the user onboarding flow", FallbackDecisions()[0])
}

func TestSpeakers(t *testing.T) {
	assert.Equal(t,
		[]string{"PM", "Engineer_1", "QA", "Engineer_2", "Designer", "Product Lead", "Marketing", "Data"},
		Speakers(sprintTranscript),
	)
	assert.Equal(t, []string{"John", "Jane", "Alex"}, Speakers(DemoTranscript))
	assert.Empty(t, Speakers("no speakers here\n: empty label"))
}
