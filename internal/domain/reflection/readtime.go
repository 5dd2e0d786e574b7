package reflection

import (
	"fmt"
	"math"
	"strings"
)

// WordsPerMinute is the reading speed used for read time estimates.
const WordsPerMinute = 200

// WordCount counts whitespace separated words.
func WordCount(body string) int {
	return len(strings.Fields(body))
}

// ReadingMinutes is max(1, round(words / WordsPerMinute)).
func ReadingMinutes(body string) int {
	minutes := int(math.Round(float64(WordCount(body)) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// EstimateReadTime formats the reading time as "N min read".
func EstimateReadTime(body string) string {
	return fmt.Sprintf("%d min read", ReadingMinutes(body))
}
