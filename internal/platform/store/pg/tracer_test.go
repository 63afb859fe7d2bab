package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	cases := []struct{ in, want string }{
		{"select 1", "select 1"},
		{"INSERT INTO kv_blobs (key, data)\n\tVALUES ($1, $2)", "INSERT INTO kv_blobs (key, data) VALUES ($1, $2)"},
		{"\r\n  DELETE FROM kv_blobs  ", " DELETE FROM kv_blobs "},
		{"", ""},
	}
	for _, c := range cases {
		if got := compact(c.in); got != c.want {
			t.Errorf("compact(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTracer_Levels(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).Level(zerolog.ErrorLevel)
	tr := Tracer(&zl)

	ev := QueryEvent{
		SQL:       "SELECT data\nFROM kv_blobs WHERE key = $1",
		Args:      []any{"stockboard/uploads.json"},
		ElapsedUS: 2500,
		Err:       errors.New("no rows"),
	}

	for _, slow := range []bool{false, true} {
		buf.Reset()
		ev.Slow = slow
		tr.OnQuery(context.Background(), ev)

		var line map[string]any
		if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
			t.Fatalf("decode %q: %v", buf.String(), err)
		}
		want := "info"
		if slow {
			want = "warn"
		}
		if line["level"] != want || line["component"] != "pg" || line["slow"] != slow {
			t.Fatalf("line = %v", line)
		}
		if line["sql"] != "SELECT data FROM kv_blobs WHERE key = $1" || line["elapsed_ms"] != 2.5 || line["error"] != "no rows" {
			t.Fatalf("line = %v", line)
		}
	}
}
