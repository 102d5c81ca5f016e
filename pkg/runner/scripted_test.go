package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamsfx/teamsapp-cli/pkg/question"
)

func TestScriptedPrompter_ReplaysInOrder(t *testing.T) {
	p := NewScriptedPrompter("a", "b")
	ctx := context.Background()
	spec := PromptSpec{Name: question.AppName}

	first, err := p.Input(ctx, spec)
	require.NoError(t, err)
	second, err := p.Path(ctx, spec)
	require.NoError(t, err)

	assert.Equal(t, "a", first)
	assert.Equal(t, "b", second)
	assert.Len(t, p.Prompts(), 2)
}

func TestScriptedPrompter_EmptyQueue(t *testing.T) {
	p := NewScriptedPrompter()
	ctx := context.Background()

	answer, err := p.Input(ctx, PromptSpec{Name: question.EnvName, Default: "myenv"})
	require.NoError(t, err)
	assert.Empty(t, answer, "empty answer lets the runner apply the default")

	_, err = p.Input(ctx, PromptSpec{Name: question.AppName})
	assert.ErrorIs(t, err, ErrNoAnswer)
}

func TestScriptedPrompter_SelectMatchesKeyOrLabel(t *testing.T) {
	options := question.Items(question.ScratchOptionYes, question.ScratchOptionNo)
	p := NewScriptedPrompter("no", question.ScratchOptionYes.Label, "other")
	ctx := context.Background()
	spec := PromptSpec{Name: question.CreateFromScratch}

	for _, want := range []string{"no", "yes", "other"} {
		got, err := p.Select(ctx, spec, options)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestScriptedPrompter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewScriptedPrompter("a")

	_, err := p.Input(ctx, PromptSpec{})
	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, 1, p.Remaining())
}

func TestScriptedPrompter_RecordsRejections(t *testing.T) {
	p := NewScriptedPrompter()
	p.Reject(PromptSpec{Name: question.AppName}, "nope")

	assert.Equal(t, []Rejection{{Name: question.AppName, Message: "nope"}}, p.Rejections())
}
