package blog

import (
	"encoding/json"
	"fmt"
)

// BlockKind discriminates the content block union.
type BlockKind string

const (
	BlockText  BlockKind = "text"
	BlockTitle BlockKind = "title"
	BlockQuote BlockKind = "quote"
	BlockList  BlockKind = "list"
	BlockImage BlockKind = "image"
)

// blockTags is the closed set of discriminating JSON keys, in a fixed
// order so decoding errors are deterministic.
var blockTags = []BlockKind{BlockText, BlockTitle, BlockQuote, BlockList, BlockImage}

// ContentBlock is one element of a post body. Exactly one of the
// discriminating tags is set, selected by Kind. Caption is only
// meaningful together with BlockImage.
type ContentBlock struct {
	Kind    BlockKind
	Text    string
	Items   []string
	Image   string
	Caption string
}

// ContentBlocks is an ordered post body.
type ContentBlocks []ContentBlock

func TextBlock(text string) ContentBlock {
	return ContentBlock{Kind: BlockText, Text: text}
}

func TitleBlock(text string) ContentBlock {
	return ContentBlock{Kind: BlockTitle, Text: text}
}

func QuoteBlock(text string) ContentBlock {
	return ContentBlock{Kind: BlockQuote, Text: text}
}

func ListBlock(items ...string) ContentBlock {
	return ContentBlock{Kind: BlockList, Items: items}
}

func ImageBlock(ref, caption string) ContentBlock {
	return ContentBlock{Kind: BlockImage, Image: ref, Caption: caption}
}

func (b ContentBlock) MarshalJSON() ([]byte, error) {
	switch b.Kind {
	case BlockText:
		return json.Marshal(struct {
			Text string `json:"text"`
		}{b.Text})
	case BlockTitle:
		return json.Marshal(struct {
			Title string `json:"title"`
		}{b.Text})
	case BlockQuote:
		return json.Marshal(struct {
			Quote string `json:"quote"`
		}{b.Text})
	case BlockList:
		items := b.Items
		if items == nil {
			items = []string{}
		}
		return json.Marshal(struct {
			List []string `json:"list"`
		}{items})
	case BlockImage:
		if b.Caption != "" {
			return json.Marshal(struct {
				Image   string `json:"image"`
				Caption string `json:"caption"`
			}{b.Image, b.Caption})
		}
		return json.Marshal(struct {
			Image string `json:"image"`
		}{b.Image})
	default:
		return nil, fmt.Errorf("content block: unknown kind %q", b.Kind)
	}
}

func (b *ContentBlock) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("content block: %w", err)
	}

	var tags []BlockKind
	for _, tag := range blockTags {
		if _, ok := raw[string(tag)]; ok {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return fmt.Errorf("content block: no recognized tag (want one of text, title, quote, list, image)")
	}
	if len(tags) > 1 {
		return fmt.Errorf("content block: multiple tags %v, want exactly one", tags)
	}

	tag := tags[0]
	if _, hasCaption := raw["caption"]; hasCaption && tag != BlockImage {
		return fmt.Errorf("content block: caption is only valid on an image block")
	}

	out := ContentBlock{Kind: tag}
	switch tag {
	case BlockText, BlockTitle, BlockQuote:
		if err := json.Unmarshal(raw[string(tag)], &out.Text); err != nil {
			return fmt.Errorf("content block %s: %w", tag, err)
		}
	case BlockList:
		if err := json.Unmarshal(raw[string(tag)], &out.Items); err != nil {
			return fmt.Errorf("content block list: %w", err)
		}
	case BlockImage:
		if err := json.Unmarshal(raw[string(tag)], &out.Image); err != nil {
			return fmt.Errorf("content block image: %w", err)
		}
		if captionRaw, ok := raw["caption"]; ok {
			if err := json.Unmarshal(captionRaw, &out.Caption); err != nil {
				return fmt.Errorf("content block caption: %w", err)
			}
		}
	}

	*b = out
	return nil
}
