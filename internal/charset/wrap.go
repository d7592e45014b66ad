package charset

import "strings"

// Wrap greedily word-wraps text to fit within maxDots, breaking on
// whitespace boundaries. A single word longer than maxDots by itself is
// broken at character boundaries so it still fits a line.
func Wrap(text string, maxDots int, opts WidthOptions) []string {
	if maxDots <= 0 || text == "" {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, maxDots, opts)...)
	}
	return lines
}

func wrapParagraph(paragraph string, maxDots int, opts WidthOptions) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0

	flush := func() {
		lines = append(lines, current.String())
		current.Reset()
		currentWidth = 0
	}

	for _, word := range words {
		wordWidth := Width(word, opts)

		if wordWidth > maxDots {
			// Too long even alone: flush what we have, then break the word
			// at character boundaries.
			if current.Len() > 0 {
				flush()
			}
			broken := breakAtCharacters(word, maxDots, opts)
			lines = append(lines, broken[:len(broken)-1]...)
			current.WriteString(broken[len(broken)-1])
			currentWidth = Width(current.String(), opts)
			continue
		}

		spaceWidth := 0
		if current.Len() > 0 {
			spaceWidth = Width(" ", opts)
		}

		if current.Len() > 0 && currentWidth+spaceWidth+wordWidth > maxDots {
			flush()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
			currentWidth += spaceWidth
		}
		current.WriteString(word)
		currentWidth += wordWidth
	}

	if current.Len() > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// breakAtCharacters splits a single overlong word into chunks that each
// fit within maxDots, always returning at least one chunk (the last one
// may still exceed maxDots if even a single character doesn't fit).
func breakAtCharacters(word string, maxDots int, opts WidthOptions) []string {
	var chunks []string
	var current strings.Builder
	currentWidth := 0

	for _, r := range word {
		rw := Width(string(r), opts)
		if current.Len() > 0 && currentWidth+rw > maxDots {
			chunks = append(chunks, current.String())
			current.Reset()
			currentWidth = 0
		}
		current.WriteRune(r)
		currentWidth += rw
	}
	chunks = append(chunks, current.String())
	return chunks
}
