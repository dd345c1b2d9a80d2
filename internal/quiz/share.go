package quiz

import "fmt"

const shareTemplate = `I scored %d/%d (%d%%) on the "Unlearning HTML Myths" quiz at MDN x MozFest! 🧩 Can you beat my score?`

// ShareText formats the result line players copy to social media.
func ShareText(score, total int) string {
	return fmt.Sprintf(shareTemplate, score, total, Percentage(score, total))
}

// ShareMessage appends the quiz URL to the share text, separated by a blank line.
func ShareMessage(score, total int, url string) string {
	text := ShareText(score, total)
	if url == "" {
		return text
	}
	return text + "\n\n" + url
}
