package text

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

func UpperFirst(s string) string {
	s = strings.TrimFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return ""
	} else if len(s) == 1 {
		return strings.ToUpper(s)
	}

	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func RemoveRedundantWhitespace(s string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(s)), " ")
}

var paragraphBreak = regexp.MustCompile(`\n{2,}`)

// SplitParagraphs splits s into paragraphs on blank lines, two or more
// consecutive newlines. Single newlines stay inside their paragraph and
// empty paragraphs are dropped.
func SplitParagraphs(s string) []string {
	var ps []string
	for _, p := range paragraphBreak.Split(s, -1) {
		if p == "" {
			continue
		}
		ps = append(ps, p)
	}
	return ps
}

// SliceRunes returns the substring of s between rune offsets start and end,
// clamped to the bounds of s. An inverted range yields the empty string.
func SliceRunes(s string, start, end int) string {
	r := []rune(s)
	if start < 0 {
		start = 0
	}
	if start > len(r) {
		start = len(r)
	}
	if end > len(r) {
		end = len(r)
	}
	if end < start {
		end = start
	}
	return string(r[start:end])
}

func SmallCardinalNoun(n int) string {
	switch n {
	case 0:
		return "no"
	case 1:
		return "one"
	case 2:
		return "two"
	case 3:
		return "three"
	case 4:
		return "four"
	case 5:
		return "five"
	default:
		return strconv.Itoa(n)
	}
}

func CardinalWithUnit(n int, singular string, plural string) string {
	if n == 1 {
		return "one " + singular
	}
	return SmallCardinalNoun(n) + " " + plural
}

func JoinList(strs []string) string {
	var ret string
	for i, s := range strs {
		s = strings.Trim(s, " ,!.?")

		if i != 0 {
			if i == len(strs)-1 {
				ret += " and "
			} else {
				ret += ", "
			}
		}
		ret += s
	}
	return ret
}
