package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/beliefted/beliefted-server/internal/command"
	"github.com/beliefted/beliefted-server/internal/datasources/mocks"
	"github.com/beliefted/beliefted-server/internal/domain"
)

func TestPrintVerses(t *testing.T) {
	var buf bytes.Buffer
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, printVerses(&buf, start, 2))

	first := domain.SelectVerseForDate(start)
	second := domain.SelectVerseForDate(start.AddDate(0, 0, 1))
	assert.Equal(t,
		"2024-01-01\t"+first.Reference+"\t"+first.Text+"\n"+
			"2024-01-02\t"+second.Reference+"\t"+second.Text+"\n",
		buf.String())
}

func TestPrintMentions(t *testing.T) {
	text := "hello @john_doe and @Jane.Doe, email me at foo@bar.com"

	cases := []struct {
		name   string
		policy domain.MentionPolicy
		want   string
	}{
		{name: "default", policy: domain.DefaultMentionPolicy, want: "john_doe\njane.doe\n"},
		{name: "permissive", policy: domain.PermissiveMentionPolicy, want: "john_doe\njane.doe\nbar.com\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, printMentions(&buf, tc.policy, text))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestMentionsCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := newMentionsCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--permissive", "ping", "a@b"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "b\n", buf.String())
}

func TestPrintCreatedToken(t *testing.T) {
	expires := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, printCreatedToken(&buf, command.CreateAPITokenResponse{
		TokenID:   "tok-1",
		FullToken: "bt_pat_abc",
		ExpiresAt: &expires,
	}))

	assert.Contains(t, buf.String(), "tok-1")
	assert.Contains(t, buf.String(), "bt_pat_abc")
	assert.Contains(t, buf.String(), "2025-01-01T00:00:00Z")
}

func TestPrintTokens(t *testing.T) {
	name := "laptop"
	lister := mocks.NewMockUserAPITokenLister(t)
	lister.EXPECT().ListUserAPITokens(mock.Anything, "user-a").Return([]domain.APIToken{
		{ID: "tok-1", Prefix: "bt_pat_abc123", Name: &name, CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetContext(context.Background())

	require.NoError(t, printTokens(cmd, lister, "user-a"))
	assert.Contains(t, buf.String(), "bt_pat_abc123")
	assert.Contains(t, buf.String(), "laptop")
	assert.Contains(t, buf.String(), "true")
}
