// Package parse turns free-form generated text into structured display
// data. Parsing is best-effort: activity parsing never fails (an
// unrecognized layout yields zero cards and the caller shows the text
// verbatim), rubric parsing fails loudly and the caller falls back to
// prose rendering.
package parse

import (
	"regexp"
	"strings"
)

// Card is one activity idea carved out of generated text.
type Card struct {
	Title string
	Body  []string
}

var (
	numberedStart = regexp.MustCompile(`^\d+[.)]\s`)
	headingStart  = regexp.MustCompile(`^#{1,3}\s`)
	boldNumStart  = regexp.MustCompile(`^\*\*\d`)
	fullBoldLine  = regexp.MustCompile(`^\*\*[^*]+\*\*$`)

	titleNoise = regexp.MustCompile(`^[\d.)#*\s]+`)
	boldLabel  = regexp.MustCompile(`^\*\*([^*]+)\*\*:?`)
	bulletLead = regexp.MustCompile(`^[-•]\s*`)
)

// Activities splits generated text into cards at activity markers:
// numbered lines ("1. " / "1) "), markdown headings, bold-numbered
// lines, or lines that are entirely bold. Only blocks that open with a
// marker become cards, so marker-less text (plain paragraphs, model
// preamble) yields zero cards and the caller shows the text verbatim.
// The first line of each block becomes the title (marker noise
// stripped); blocks whose cleaned title is shorter than 3 runes are
// dropped. Body lines are trimmed, blanks removed, a leading **Label**
// normalized to "Label:", and leading bullets stripped.
func Activities(text string) []Card {
	blocks := splitBlocks(text)

	var cards []Card
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		lines := strings.Split(block, "\n")
		if !isBlockStart(lines[0], len(lines) > 1) {
			continue
		}

		title := titleNoise.ReplaceAllString(lines[0], "")
		title = strings.TrimSpace(strings.ReplaceAll(title, "**", ""))
		if len([]rune(title)) < 3 {
			continue
		}

		var body []string
		for _, l := range lines[1:] {
			l = strings.TrimSpace(l)
			if l == "" {
				continue
			}
			if m := boldLabel.FindStringSubmatch(l); m != nil {
				l = m[1] + ":" + l[len(m[0]):]
			}
			l = bulletLead.ReplaceAllString(l, "")
			body = append(body, l)
		}
		cards = append(cards, Card{Title: title, Body: body})
	}
	return cards
}

// splitBlocks groups lines into blocks, starting a new block at each
// line that looks like an activity marker. A fully-bold line only
// counts as a marker when another line follows it.
func splitBlocks(text string) []string {
	lines := strings.Split(text, "\n")
	var blocks []string
	var cur []string
	for i, line := range lines {
		if i > 0 && isBlockStart(line, i < len(lines)-1) {
			blocks = append(blocks, strings.Join(cur, "\n"))
			cur = cur[:0]
		}
		cur = append(cur, line)
	}
	blocks = append(blocks, strings.Join(cur, "\n"))
	return blocks
}

func isBlockStart(line string, hasNext bool) bool {
	if numberedStart.MatchString(line) || headingStart.MatchString(line) || boldNumStart.MatchString(line) {
		return true
	}
	return hasNext && fullBoldLine.MatchString(line)
}
