package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"founderkit/internal/questionnaire"
)

func TestQuestionsCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"questions", "problem_statement"})
	require.NoError(t, cmd.Execute())

	var banks map[string][]questionnaire.Question
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &banks))
	require.Len(t, banks["problem_statement"], 6)
	assert.Equal(t, "business_size", banks["problem_statement"][0].FollowUp.Then.ID)
}

func TestQuestionsCommand_Unsupported(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"questions", "market_sizing"})
	assert.ErrorIs(t, cmd.Execute(), questionnaire.ErrUnsupportedArtifactType)
}
