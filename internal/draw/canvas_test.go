package draw

import (
	"strings"
	"testing"
)

func TestCanvasSetFloatScaling(t *testing.T) {
	// 60x20 terminal over a 120x80 logical field: X halves, Y maps to 40
	// sub-pixel rows.
	c := NewCanvas(60, 20, 120, 80)

	c.SetFloat(60, 40)

	var sb strings.Builder
	c.Render(&sb)
	out := sb.String()

	if !strings.ContainsRune(out, BlockUpperHalf) && !strings.ContainsRune(out, BlockLowerHalf) {
		t.Errorf("no half-block rendered for a single pixel: %q", out)
	}
}

func TestCanvasRenderSkipsEmpty(t *testing.T) {
	c := NewCanvas(40, 12, 120, 80)

	var sb strings.Builder
	c.Render(&sb)
	if sb.Len() != 0 {
		t.Errorf("empty canvas rendered %d bytes", sb.Len())
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(40, 12, 120, 80)
	c.SetFloat(60, 40)
	c.Clear()

	var sb strings.Builder
	c.Render(&sb)
	if sb.Len() != 0 {
		t.Errorf("cleared canvas rendered %d bytes", sb.Len())
	}
}

func TestCanvasOutOfBoundsIgnored(t *testing.T) {
	c := NewCanvas(40, 12, 120, 80)

	// Must not panic or wrap around.
	c.SetFloat(-10, 40)
	c.SetFloat(500, 40)
	c.SetFloat(60, -10)
	c.SetFloat(60, 500)

	var sb strings.Builder
	c.Render(&sb)
	if sb.Len() != 0 {
		t.Errorf("out-of-bounds pixels rendered %d bytes", sb.Len())
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(40, 12, 120, 80)
	c.DrawLine(Point{X: 0, Y: 40}, Point{X: 120, Y: 40})

	var sb strings.Builder
	c.Render(&sb)
	// A full-width horizontal line touches every column once.
	count := strings.Count(sb.String(), string(BlockUpperHalf)) +
		strings.Count(sb.String(), string(BlockLowerHalf)) +
		strings.Count(sb.String(), string(BlockFull))
	if count < 40 {
		t.Errorf("horizontal line lit %d cells, want at least the 40 columns", count)
	}
}

func TestCanvasDrawCircleFilledCoversCenter(t *testing.T) {
	filled := NewCanvas(60, 20, 120, 80)
	filled.DrawCircle(60, 40, 15, true)

	outline := NewCanvas(60, 20, 120, 80)
	outline.DrawCircle(60, 40, 15, false)

	var fb, ob strings.Builder
	filled.Render(&fb)
	outline.Render(&ob)

	if fb.Len() <= ob.Len() {
		t.Errorf("filled circle output (%d bytes) not larger than outline (%d bytes)", fb.Len(), ob.Len())
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(40, 12, 120, 80)
	c.SetFloat(60, 40)

	c.Resize(80, 24)
	if c.TerminalWidth() != 80 || c.TerminalHeight() != 24 {
		t.Errorf("size = %dx%d, want 80x24", c.TerminalWidth(), c.TerminalHeight())
	}

	// Resize reallocates; the old pixel must not survive.
	var sb strings.Builder
	c.Render(&sb)
	if sb.Len() != 0 {
		t.Errorf("pixel survived resize: %d bytes", sb.Len())
	}

	// Same size keeps the buffer.
	c.SetFloat(60, 40)
	c.Resize(80, 24)
	sb.Reset()
	c.Render(&sb)
	if sb.Len() == 0 {
		t.Error("same-size resize dropped the buffer")
	}
}

func TestLogicalToTerminal(t *testing.T) {
	c := NewCanvas(60, 20, 120, 80)

	col, row := c.LogicalToTerminal(0, 0)
	if col != 1 || row != 1 {
		t.Errorf("origin maps to (%d,%d), want (1,1)", col, row)
	}

	col, row = c.LogicalToTerminal(120, 80)
	if col != 61 || row != 21 {
		t.Errorf("far corner maps to (%d,%d), want (61,21)", col, row)
	}
}

func TestChunkWriterMoveCursorOffset(t *testing.T) {
	var sb strings.Builder
	cw := NewChunkWriter(&sb, 5, 2)

	cw.MoveCursor(1, 1)
	cw.WriteString("x")
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := "\033[3;6Hx"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

func TestChunkWriterFlushResets(t *testing.T) {
	var sb strings.Builder
	cw := NewChunkWriter(&sb, 0, 0)

	cw.WriteString("first")
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	sb.Reset()

	cw.WriteString("second")
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if sb.String() != "second" {
		t.Errorf("second flush wrote %q, want only the new content", sb.String())
	}
}

func TestChunkWriterLargePayload(t *testing.T) {
	var sb strings.Builder
	cw := NewChunkWriter(&sb, 0, 0)

	payload := strings.Repeat("abcdefgh", 1000)
	cw.WriteString(payload)
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if sb.String() != payload {
		t.Error("chunked flush corrupted the payload")
	}
}
