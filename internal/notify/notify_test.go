package notify

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "error", Error.String())
}

func TestMultiSkipsNil(t *testing.T) {
	var got []string
	rec := Func(func(kind Kind, message string) {
		got = append(got, kind.String()+":"+message)
	})

	n := Multi(nil, rec, nil, rec)
	n.Notify(Warning, "Please select at least one muscle group")

	assert.Equal(t, []string{
		"warning:Please select at least one muscle group",
		"warning:Please select at least one muscle group",
	}, got)
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	n := LogNotifier{Logger: logger}

	n.Notify(Info, "Workout reset")
	assert.Empty(t, buf.String(), "info is below the handler level")

	n.Notify(Error, "no exercises")
	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `msg="no exercises"`)
	assert.Contains(t, out, "kind=error")
}
