package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/SAP-F-2025/submission-relay/internal/models"
)

const (
	// Task1MinWords is the minimum length of a task 1 answer.
	Task1MinWords = 150
	// Task2MinWords is the minimum length of a task 2 essay.
	Task2MinWords = 250

	// TimeLayout renders times the way the test client displays them.
	TimeLayout = "1/2/2006, 3:04:05 PM"

	notProvided      = "Not provided"
	noAnswerProvided = "No answer provided"
	markPassed       = "✅"
	markFailed       = "❌"
)

// Clock returns the current time. Formatter stamps every message with it.
type Clock func() time.Time

// Formatter renders submissions as Telegram HTML messages.
type Formatter struct {
	clock    Clock
	location *time.Location
}

// NewFormatter creates a formatter. A nil clock means time.Now, a nil
// location means UTC.
func NewFormatter(clock Clock, location *time.Location) *Formatter {
	if clock == nil {
		clock = time.Now
	}
	if location == nil {
		location = time.UTC
	}
	return &Formatter{clock: clock, location: location}
}

// Format renders the notification for one submission. Apart from the system
// time line the output depends only on the record.
func (f *Formatter) Format(record *models.SubmissionRecord) string {
	if record == nil {
		record = &models.SubmissionRecord{}
	}

	var b strings.Builder

	b.WriteString("<b>📝 IELTS WRITING TEST SUBMITTED</b>\n\n")

	b.WriteString("<b>👤 STUDENT INFORMATION</b>\n")
	fmt.Fprintf(&b, "• <b>Name:</b> %s\n", EscapeHTML(record.StudentName.Or(notProvided)))
	fmt.Fprintf(&b, "• <b>Test:</b> %s\n", EscapeHTML(record.TestName.Or(notProvided)))
	fmt.Fprintf(&b, "• <b>Timestamp:</b> %s\n", f.formatTimestamp(record.Timestamp))
	fmt.Fprintf(&b, "• <b>Duration:</b> %s\n\n", EscapeHTML(record.Duration.Or(notProvided)))

	task1Words := CountWords(record.Task1.Answer.String())
	task2Words := CountWords(record.Task2.Answer.String())

	writeTask(&b, "📋 TASK 1 - DIAGRAM DESCRIPTION", "Task 1", record.Task1, task1Words)
	writeTask(&b, "📝 TASK 2 - ESSAY WRITING", "Task 2", record.Task2, task2Words)

	b.WriteString("<b>📈 OVERALL STATISTICS</b>\n")
	fmt.Fprintf(&b, "• Total Words Written: %d\n", task1Words+task2Words)
	fmt.Fprintf(&b, "• Task 1 Words: %d %s\n", task1Words, thresholdMark(task1Words, Task1MinWords))
	fmt.Fprintf(&b, "• Task 2 Words: %d %s\n\n", task2Words, thresholdMark(task2Words, Task2MinWords))

	b.WriteString("---\n")
	b.WriteString("<i>✅ Test automatically submitted and recorded</i>\n")
	fmt.Fprintf(&b, "<i>🕒 System Time: %s</i>", f.clock().In(f.location).Format(TimeLayout))

	return b.String()
}

func writeTask(b *strings.Builder, heading, label string, task models.TaskAnswer, words int) {
	fmt.Fprintf(b, "<b>%s</b>\n", heading)
	fmt.Fprintf(b, "<b>Question:</b>\n<i>%s</i>\n\n", EscapeHTML(task.Question.Or(notProvided)))
	b.WriteString("<b>📝 Student's Answer:</b>\n")
	fmt.Fprintf(b, "<code>%s</code>\n\n", EscapeHTML(task.Answer.Or(noAnswerProvided)))
	fmt.Fprintf(b, "<b>📊 %s Statistics:</b>\n", label)
	fmt.Fprintf(b, "• %s\n", EscapeHTML(task.WordCount.Or(notProvided)))
	fmt.Fprintf(b, "• Actual Word Count: %d\n\n", words)
}

func (f *Formatter) formatTimestamp(ts models.Timestamp) string {
	switch {
	case ts.Valid():
		return ts.Time.In(f.location).Format(TimeLayout)
	case ts.IsZero():
		return notProvided
	default:
		return EscapeHTML(ts.Raw)
	}
}

func thresholdMark(words, minimum int) string {
	if words < minimum {
		return markFailed
	}
	return markPassed
}

// htmlReplacer applies the entity replacements left to right in a single
// pass, so entities it produces are never escaped again.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes text for Telegram's HTML parse mode. It is not
// idempotent: escaping "&amp;" yields "&amp;amp;".
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}
	return htmlReplacer.Replace(text)
}

// CountWords counts whitespace separated tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
