package errors

import (
	"fmt"
	"runtime"
	"strings"
	"unicode"
)

type FormatConfig struct {
	WithStack   bool
	WithUnwrap  bool
	AsSentences bool
}

type FormatOption func(*FormatConfig)

// FormatWithStack output includes the error origin as "[file:line]", it implies FormatWithUnwrap.
func FormatWithStack() FormatOption {
	return func(c *FormatConfig) {
		c.WithStack = true
		c.WithUnwrap = true
	}
}

// FormatWithUnwrap output includes also the wrapped errors hidden behind a modified message.
func FormatWithUnwrap() FormatOption {
	return func(c *FormatConfig) {
		c.WithUnwrap = true
	}
}

// FormatAsSentences capitalizes each message and adds a dot at the end.
func FormatAsSentences() FormatOption {
	return func(c *FormatConfig) {
		c.AsSentences = true
	}
}

// Format renders the error as a human-readable string,
// multiple/nested errors are rendered as an indented bullet list.
func Format(err error, opts ...FormatOption) string {
	w := NewWriter(opts...)
	w.WriteError(err)
	return w.String()
}

func formatMessage(msg string, trace StackTrace, config FormatConfig) string {
	if config.AsSentences {
		msg = toSentence(msg)
	}
	if config.WithStack && len(trace) > 0 {
		frame, _ := runtime.CallersFrames(trace).Next()
		msg = fmt.Sprintf("%s [%s:%d]", msg, frame.File, frame.Line)
	}
	return msg
}

func formatPrefix(prefix string) string {
	return strings.TrimRight(prefix, ".,:") + ":"
}

func toSentence(msg string) string {
	if msg == "" {
		return msg
	}
	runes := []rune(msg)
	runes[0] = unicode.ToUpper(runes[0])
	msg = string(runes)
	switch msg[len(msg)-1] {
	case '.', ',', ':', '!', '?', ']':
		return msg
	default:
		return msg + "."
	}
}
