package format

import (
	"bytes"
	"errors"
	"testing"
)

type task struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type lines []string

func (l lines) Lines() []string { return l }

func TestWrite(t *testing.T) {
	t.Parallel()

	v := map[string]any{"data": []task{{ID: 3, Title: "Task 3"}}, "query": "3"}

	tests := []struct {
		name   string
		format string
		pretty bool
		want   string
	}{
		{name: "json", format: "json", want: `{"data":[{"id":3,"title":"Task 3"}],"query":"3"}` + "\n"},
		{name: "default is json", format: "", want: `{"data":[{"id":3,"title":"Task 3"}],"query":"3"}` + "\n"},
		{name: "edn", format: "edn", want: `{:data [{:id 3 :title "Task 3"}] :query "3"}` + "\n"},
		{name: "edn pretty", format: "edn", pretty: true, want: "{\n  :data [\n    {\n      :id 3\n      :title \"Task 3\"\n    }\n  ]\n  :query \"3\"\n}\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := Write(&buf, v, tt.format, tt.pretty); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Fatalf("output:\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestWrite_EDNEmptyAndScalars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"a": []any{}, "b": nil, "c": true, "d": 1.5}, false); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	if got, want := buf.String(), "{:a [] :b nil :c true :d 1.5}\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestWrite_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, lines{"1\tTask 1", "3\tTask 3"}, "text", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, want := buf.String(), "1\tTask 1\n3\tTask 3\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Write(&bytes.Buffer{}, 1, "yaml", false)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat; got %v", err)
	}
}
