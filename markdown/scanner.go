// Package markdown finds shape scripts embedded in markdown documents as
// fenced code blocks:
//
//	```shapes
//	grid 20 x 5
//	rectangle (0,0) (19,4)
//	```
package markdown

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoBlocks is returned when a document holds no shape blocks.
var ErrNoBlocks = errors.New("no shape blocks found")

// SceneBlock represents a shape script code block found in markdown
type SceneBlock struct {
	Lang      string // shapes or shapegrid
	Content   string // The script, with the fence indentation removed
	StartLine int    // Line of the opening fence (0-based)
	EndLine   int    // Line of the closing fence
	Indent    string // Indentation before the code fence
}

// Scanner finds and extracts shape blocks from markdown content
type Scanner struct {
	lines []string
}

// NewScanner creates a new markdown scanner
func NewScanner(content string) *Scanner {
	return &Scanner{lines: strings.Split(content, "\n")}
}

// FindSceneBlocks finds all shape code blocks in the markdown. An unclosed
// block at the end of the document is ignored.
func (s *Scanner) FindSceneBlocks() []SceneBlock {
	var blocks []SceneBlock
	var current *SceneBlock
	var content []string

	for i, line := range s.lines {
		trimmed := strings.TrimLeft(line, " \t")

		if current == nil {
			if !strings.HasPrefix(trimmed, "```") {
				continue
			}
			lang := strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
			if isSceneLanguage(lang) {
				current = &SceneBlock{
					Lang:      strings.ToLower(lang),
					StartLine: i,
					Indent:    line[:len(line)-len(trimmed)],
				}
				content = content[:0]
			}
			continue
		}

		if strings.HasPrefix(trimmed, "```") {
			current.EndLine = i
			current.Content = strings.Join(content, "\n")
			blocks = append(blocks, *current)
			current = nil
			continue
		}
		content = append(content, strings.TrimPrefix(line, current.Indent))
	}

	return blocks
}

// SelectBlock picks a block by 1-based index. Index 0 selects the only
// block and fails when there is more than one.
func (s *Scanner) SelectBlock(index int) (SceneBlock, error) {
	blocks := s.FindSceneBlocks()

	switch {
	case len(blocks) == 0:
		return SceneBlock{}, ErrNoBlocks
	case index > len(blocks) || index < 0:
		return SceneBlock{}, fmt.Errorf("block index %d is out of range (found %d blocks)", index, len(blocks))
	case index > 0:
		return blocks[index-1], nil
	case len(blocks) == 1:
		return blocks[0], nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "multiple shape blocks found, please specify which one with -block:")
	for i, b := range blocks {
		sb.WriteString("\n  ")
		sb.WriteString(FormatBlockInfo(b, i))
	}
	return SceneBlock{}, errors.New(sb.String())
}

// isSceneLanguage checks if a fence info string marks a shape script
func isSceneLanguage(lang string) bool {
	switch strings.ToLower(lang) {
	case "shapes", "shapegrid":
		return true
	default:
		return false
	}
}

// FormatBlockInfo returns a human-readable description of a block
func FormatBlockInfo(block SceneBlock, index int) string {
	// First meaningful line of content for preview
	preview := ""
	for _, line := range strings.Split(block.Content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") && !strings.HasPrefix(trimmed, "//") {
			preview = trimmed
			if len(preview) > 50 {
				preview = preview[:47] + "..."
			}
			break
		}
	}

	return fmt.Sprintf("%d. %s (line %d): %s", index+1, block.Lang, block.StartLine+1, preview)
}
