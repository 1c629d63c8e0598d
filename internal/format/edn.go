package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes v as EDN. Values go through encoding/json first so struct
// tags decide key names; object keys become keywords.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(b, &generic); err != nil {
		return err
	}
	var sb strings.Builder
	writeEDN(&sb, generic, 0, pretty)
	sb.WriteByte('\n')
	_, err = io.WriteString(w, sb.String())
	return err
}

func writeEDN(sb *strings.Builder, v any, depth int, pretty bool) {
	switch x := v.(type) {
	case nil:
		sb.WriteString("nil")
	case bool:
		sb.WriteString(strconv.FormatBool(x))
	case string:
		sb.WriteString(strconv.Quote(x))
	case float64:
		if x == float64(int64(x)) {
			sb.WriteString(strconv.FormatInt(int64(x), 10))
		} else {
			sb.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
		}
	case []any:
		items := make([]func(), 0, len(x))
		for _, it := range x {
			it := it
			items = append(items, func() { writeEDN(sb, it, depth+1, pretty) })
		}
		writeCollection(sb, "[", "]", items, depth, pretty)
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]func(), 0, len(keys))
		for _, k := range keys {
			k := k
			items = append(items, func() {
				sb.WriteString(":" + keyword(k) + " ")
				writeEDN(sb, x[k], depth+1, pretty)
			})
		}
		writeCollection(sb, "{", "}", items, depth, pretty)
	default:
		sb.WriteString(strconv.Quote(fmt.Sprint(v)))
	}
}

func writeCollection(sb *strings.Builder, open, close string, items []func(), depth int, pretty bool) {
	sb.WriteString(open)
	for i, item := range items {
		switch {
		case pretty:
			sb.WriteString("\n" + strings.Repeat("  ", depth+1))
		case i > 0:
			sb.WriteByte(' ')
		}
		item()
	}
	if pretty && len(items) > 0 {
		sb.WriteString("\n" + strings.Repeat("  ", depth))
	}
	sb.WriteString(close)
}

func keyword(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "-")
}
