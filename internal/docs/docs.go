package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

//go:embed content/*.md
var contentFS embed.FS

// NotFoundError is returned by Lookup for an unknown topic.
type NotFoundError struct {
	Topic string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("unknown docs topic: %q", e.Topic)
}

func Topics() []string {
	entries, err := fs.Glob(contentFS, "content/*.md")
	if err != nil {
		return []string{}
	}
	topics := make([]string, 0, len(entries))
	for _, p := range entries {
		topics = append(topics, strings.TrimSuffix(path.Base(p), ".md"))
	}
	sort.Strings(topics)
	return topics
}

func Get(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return "", false
	}
	b, err := contentFS.ReadFile(path.Join("content", topic+".md"))
	if err != nil {
		return "", false
	}
	return string(b), true
}

func Lookup(topic string) (string, error) {
	body, ok := Get(topic)
	if !ok {
		return "", NotFoundError{Topic: topic}
	}
	return body, nil
}

var (
	renderersMu sync.Mutex
	// Keyed by style and wrap width; building a renderer is not free.
	renderers = map[string]*glamour.TermRenderer{}
)

// Render renders markdown for the terminal with a glamour standard style
// ("dark", "light", "notty", ...). On renderer errors the raw markdown is returned.
func Render(md string, width int, style string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	if strings.TrimSpace(style) == "" {
		style = "dark"
	}

	key := fmt.Sprintf("%s:%d", style, width)
	renderersMu.Lock()
	r := renderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			// Not WithAutoStyle: it queries the terminal, which can block.
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			renderersMu.Unlock()
			return md
		}
		renderers[key] = rr
		r = rr
	}
	renderersMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
