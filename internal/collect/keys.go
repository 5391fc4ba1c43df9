package collect

import "sort"

// OrderedKeys returns the keys of m sorted ascending, for deterministic
// iteration over maps in traces, table printing, and test fixtures.
func OrderedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Flatten concatenates a slice of slices into a single slice, preserving
// order.
func Flatten[E any](of [][]E) []E {
	total := 0
	for _, s := range of {
		total += len(s)
	}
	out := make([]E, 0, total)
	for _, s := range of {
		out = append(out, s...)
	}
	return out
}

// ArticleFor prepends "a " or "an " to word based on whether it starts with
// a vowel sound (a crude first-letter check, sufficient for grammar symbol
// names and token class names). If capitalize is true, the article's first
// letter is capitalized.
func ArticleFor(word string, capitalize bool) string {
	article := "a"
	if len(word) > 0 {
		switch word[0] {
		case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
			article = "an"
		}
	}
	if capitalize {
		article = string(article[0]-'a'+'A') + article[1:]
	}
	return article + " " + word
}
