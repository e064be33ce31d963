package blog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentBlockRoundTrip(t *testing.T) {
	original := ContentBlocks{
		TitleBlock("Interview with the founder"),
		TextBlock("First paragraph."),
		QuoteBlock("A memorable line."),
		ListBlock("one", "two", "three"),
		ImageBlock("blog/abc.png", "The office"),
		ImageBlock("blog/def.png", ""),
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded ContentBlocks
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestContentBlockMarshalTags(t *testing.T) {
	tests := []struct {
		name  string
		block ContentBlock
		want  string
	}{
		{"text", TextBlock("hello"), `{"text":"hello"}`},
		{"title", TitleBlock("head"), `{"title":"head"}`},
		{"quote", QuoteBlock("said"), `{"quote":"said"}`},
		{"list", ListBlock("a", "b"), `{"list":["a","b"]}`},
		{"image", ImageBlock("x.png", ""), `{"image":"x.png"}`},
		{"image with caption", ImageBlock("x.png", "cap"), `{"image":"x.png","caption":"cap"}`},
		{"empty list", ListBlock(), `{"list":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.block)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestContentBlockMarshalUnknownKind(t *testing.T) {
	_, err := json.Marshal(ContentBlock{Kind: "video"})
	assert.Error(t, err)
}

func TestContentBlockUnmarshalNoTag(t *testing.T) {
	var b ContentBlock
	err := json.Unmarshal([]byte(`{"video":"x.mp4"}`), &b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no recognized tag")
}

func TestContentBlockUnmarshalMultipleTags(t *testing.T) {
	var b ContentBlock
	err := json.Unmarshal([]byte(`{"text":"a","quote":"b"}`), &b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple tags")
}

func TestContentBlockUnmarshalCaptionWithoutImage(t *testing.T) {
	var b ContentBlock
	err := json.Unmarshal([]byte(`{"text":"a","caption":"b"}`), &b)
	assert.Error(t, err)
}

func TestContentBlockUnmarshalImageWithCaption(t *testing.T) {
	var b ContentBlock
	require.NoError(t, json.Unmarshal([]byte(`{"image":"x.png","caption":"cap"}`), &b))
	assert.Equal(t, BlockImage, b.Kind)
	assert.Equal(t, "x.png", b.Image)
	assert.Equal(t, "cap", b.Caption)
}

func TestContentBlocksPreserveOrder(t *testing.T) {
	raw := `[{"title":"h"},{"text":"p1"},{"list":["i"]},{"text":"p2"}]`

	var blocks ContentBlocks
	require.NoError(t, json.Unmarshal([]byte(raw), &blocks))

	require.Len(t, blocks, 4)
	assert.Equal(t, BlockTitle, blocks[0].Kind)
	assert.Equal(t, BlockText, blocks[1].Kind)
	assert.Equal(t, BlockList, blocks[2].Kind)
	assert.Equal(t, BlockText, blocks[3].Kind)
}
