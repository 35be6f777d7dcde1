package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentKind(t *testing.T) {
	cases := []struct {
		in      string
		want    ContentKind
		wantErr bool
	}{
		{in: "prayers", want: ContentKindPrayer},
		{in: "prayer", want: ContentKindPrayer},
		{in: "words", want: ContentKindWord},
		{in: "stories", want: ContentKindStory},
		{in: "journals", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseContentKind(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestContentKind_Supports(t *testing.T) {
	assert.True(t, ContentKindPrayer.Supports(InteractionPray))
	assert.True(t, ContentKindPrayer.Supports(InteractionSave))
	assert.False(t, ContentKindPrayer.Supports(InteractionLike))

	assert.True(t, ContentKindWord.Supports(InteractionLike))
	assert.False(t, ContentKindWord.Supports(InteractionPray))

	assert.True(t, ContentKindStory.Supports(InteractionLike))
	assert.True(t, ContentKindStory.Supports(InteractionSave))
	assert.False(t, ContentKind("journal").Supports(InteractionSave))
}

func TestInteraction_NotificationKind(t *testing.T) {
	kind, ok := InteractionPray.NotificationKind()
	assert.True(t, ok)
	assert.Equal(t, NotificationKindPray, kind)

	kind, ok = InteractionLike.NotificationKind()
	assert.True(t, ok)
	assert.Equal(t, NotificationKindLike, kind)

	_, ok = InteractionSave.NotificationKind()
	assert.False(t, ok)
}

func TestContentItem_HasInteracted(t *testing.T) {
	item := ContentItem{
		PrayedBy: []string{"u1", "u2"},
		SavedBy:  []string{"u3"},
	}

	assert.True(t, item.HasInteracted(InteractionPray, "u2"))
	assert.False(t, item.HasInteracted(InteractionPray, "u3"))
	assert.True(t, item.HasInteracted(InteractionSave, "u3"))
	assert.False(t, item.HasInteracted(InteractionLike, "u1"))
}

func TestNormalizeUsername(t *testing.T) {
	got, err := NormalizeUsername("  John_Doe ")
	require.NoError(t, err)
	assert.Equal(t, "john_doe", got)

	_, err = NormalizeUsername("has space")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = NormalizeUsername("")
	require.ErrorIs(t, err, ErrInvalidInput)
}
