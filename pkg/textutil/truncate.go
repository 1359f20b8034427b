// Package textutil holds small pure text helpers shared by the response builders.
package textutil

// Truncate cuts text down to at most limit characters, preferring the least
// jarring cut available: a complete sentence first, then a word boundary,
// then a hard cut.
//
// The ladder:
//  1. text already fits -> returned unchanged.
//  2. a '.' exists within the first limit characters -> text up to and
//     including the last such '.' (may be well short of limit).
//  3. a space exists past 30% of the limit -> prefix up to that space plus
//     "...". The 30% floor avoids truncating to a near-empty string.
//  4. otherwise the raw limit-length prefix.
//
// Operates on runes so multi-byte text is never split mid-character.
func Truncate(text string, limit int) string {
	if text == "" || limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	head := runes[:limit]

	for i := limit - 1; i >= 0; i-- {
		if head[i] == '.' {
			return string(runes[:i+1])
		}
	}

	for i := limit - 1; i >= 0; i-- {
		if head[i] == ' ' {
			if i > limit*3/10 {
				return string(head[:i]) + "..."
			}
			break
		}
	}

	return string(head)
}
