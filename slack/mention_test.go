package slack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMentionString(t *testing.T) {
	testCases := []struct {
		name     string
		mention  Mention
		expected string
	}{
		{
			name: "user mention",
			mention: Mention{
				Kind: MentionKindUser,
				ID:   "U123",
				Name: "bob",
			},
			expected: "<@U123|bob>",
		},
		{
			name: "channel mention",
			mention: Mention{
				Kind: MentionKindChannel,
				ID:   "C2147483705",
				Name: "general",
			},
			expected: "<#C2147483705|general>",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, testCase.mention.String())
		})
	}
}

func TestParseMention(t *testing.T) {
	testCases := []struct {
		name       string
		text       string
		kind       MentionKind
		assertions func(Mention, error)
	}{
		{
			name: "well-formed user mention",
			text: "<@U2147483697|alice>",
			kind: MentionKindUser,
			assertions: func(mention Mention, err error) {
				require.NoError(t, err)
				require.Equal(
					t,
					Mention{
						Kind: MentionKindUser,
						ID:   "U2147483697",
						Name: "alice",
					},
					mention,
				)
			},
		},
		{
			name: "well-formed channel mention",
			text: "<#C1|general>",
			kind: MentionKindChannel,
			assertions: func(mention Mention, err error) {
				require.NoError(t, err)
				require.Equal(
					t,
					Mention{
						Kind: MentionKindChannel,
						ID:   "C1",
						Name: "general",
					},
					mention,
				)
			},
		},
		{
			name: "channel mention where a user mention is expected",
			text: "<#C1|general>",
			kind: MentionKindUser,
			assertions: func(_ Mention, err error) {
				require.Error(t, err)
				require.IsType(t, &MentionFormatError{}, err)
				require.Contains(t, err.Error(), `"<#C1|general>"`)
				require.Contains(t, err.Error(), "user mention")
			},
		},
		{
			name: "user mention where a channel mention is expected",
			text: "<@U1|alice>",
			kind: MentionKindChannel,
			assertions: func(_ Mention, err error) {
				require.Error(t, err)
				require.Contains(t, err.Error(), `"<@U1|alice>"`)
				require.Contains(t, err.Error(), "channel mention")
			},
		},
		{
			name: "token embedded in surrounding text",
			text: "prefix<@U1|alice>",
			kind: MentionKindUser,
			assertions: func(_ Mention, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "trailing characters after the token",
			text: "<@U1|alice> ",
			kind: MentionKindUser,
			assertions: func(_ Mention, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "empty ID segment",
			text: "<@|alice>",
			kind: MentionKindUser,
			assertions: func(_ Mention, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "empty name segment",
			text: "<@U1|>",
			kind: MentionKindUser,
			assertions: func(_ Mention, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "both segments empty",
			text: "<@|>",
			kind: MentionKindUser,
			assertions: func(_ Mention, err error) {
				require.Error(t, err)
			},
		},
		{
			name: "empty string",
			text: "",
			kind: MentionKindUser,
			assertions: func(_ Mention, err error) {
				require.Error(t, err)
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			mention, err := ParseMention(testCase.text, testCase.kind)
			testCase.assertions(mention, err)
		})
	}
}

func TestMentionRoundTrip(t *testing.T) {
	testMentions := []Mention{
		{Kind: MentionKindUser, ID: "U123", Name: "bob"},
		{Kind: MentionKindUser, ID: "W999", Name: "Bob Loblaw"},
		{Kind: MentionKindUser, ID: "U1", Name: "námé"},
		{Kind: MentionKindChannel, ID: "C2147483705", Name: "test"},
		{Kind: MentionKindChannel, ID: "C1", Name: "release-eng"},
	}
	for _, testMention := range testMentions {
		parsed, err := ParseMention(testMention.String(), testMention.Kind)
		require.NoError(t, err)
		require.Equal(t, testMention, parsed)
	}
}
