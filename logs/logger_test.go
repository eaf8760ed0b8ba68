package logs

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := context.WithValue(context.Background(), SpanKey, Span("foo"))
		logger.With("list", "main").InfoContext(ctx, "test", "hello", "world!")
		line := buf.String()
		if !strings.Contains(line, "logs.span=foo") {
			t.Fatalf("got %v", line)
		}
		if !strings.Contains(line, "list=main") {
			t.Fatalf("got %v", line)
		}
		if !strings.Contains(line, "hello=world!") {
			t.Fatalf("got %v", line)
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("logs.span"); got != "LOGS_SPAN" {
		t.Fatalf("got %v", got)
	}
}
