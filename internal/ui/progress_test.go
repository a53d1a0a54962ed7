package ui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redindelible/adze/internal/driver"
)

func feed(m *progressModel, events ...driver.ProgressEvent) {
	for _, ev := range events {
		m.Update(eventMsg(ev))
	}
}

func TestProgressModel_TracksDiscoveredFiles(t *testing.T) {
	events := make(chan driver.ProgressEvent)
	model := NewProgressModel("parsing", events, filepath.Base).(*progressModel)

	assert.Empty(t, model.View())

	feed(model,
		driver.ProgressEvent{Path: "/p/main.adze", Stage: driver.ProgressQueued, Total: 1},
		driver.ProgressEvent{Path: "/p/lib.adze", Stage: driver.ProgressQueued, Done: 0, Total: 2},
		driver.ProgressEvent{Path: "/p/main.adze", Stage: driver.ProgressParsed, Done: 1, Total: 2},
		driver.ProgressEvent{Path: "/p/lib.adze", Stage: driver.ProgressFailed, Done: 2, Total: 2},
		driver.ProgressEvent{Path: "/p/lib.adze", Stage: driver.ProgressSkipped, Done: 3, Total: 3},
	)

	require.Len(t, model.items, 2)
	assert.Equal(t, fileItem{path: "main.adze", status: "parsed"}, model.items[0])
	assert.Equal(t, fileItem{path: "lib.adze", status: "failed"}, model.items[1])

	view := model.View()
	assert.Contains(t, view, "parsing (3/3 files)")
	assert.Contains(t, view, "main.adze")

	_, cmd := model.Update(doneMsg{})
	require.NotNil(t, cmd)
	assert.True(t, strings.HasPrefix(stripANSI(model.View()), "done: parsing"))
}

func TestProgressModel_ListenEndsOnClose(t *testing.T) {
	events := make(chan driver.ProgressEvent, 1)
	model := NewProgressModel("parsing", events, nil).(*progressModel)

	events <- driver.ProgressEvent{Path: "a.adze", Total: 1}
	msg := model.listenForEvent()()
	assert.Equal(t, eventMsg(driver.ProgressEvent{Path: "a.adze", Total: 1}), msg)

	close(events)
	assert.Equal(t, doneMsg{}, model.listenForEvent()())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	// wide runes count double
	assert.Equal(t, "日本...", truncate("日本語のファイル", 7))
}

// stripANSI drops SGR escape sequences from lipgloss output.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
