package docs

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	t.Parallel()

	if got, want := Topics(), []string{"keys", "swipe"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Topics:\n got: %v\nwant: %v", got, want)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	body, err := Lookup(" SWIPE ")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !strings.Contains(body, "springs back") {
		t.Fatalf("unexpected body: %q", body)
	}

	_, err = Lookup("nope")
	var nf NotFoundError
	if !errors.As(err, &nf) || nf.Topic != "nope" {
		t.Fatalf("expected NotFoundError; got %v", err)
	}
}

func TestRender_NoTTYKeepsText(t *testing.T) {
	t.Parallel()

	body, _ := Get("keys")
	out := Render(body, 80, "notty")
	if !strings.Contains(out, "Keys") || !strings.Contains(out, "case-insensitive") {
		t.Fatalf("expected rendered markdown to keep content; got %q", out)
	}
	if Render("   ", 80, "notty") != "" {
		t.Fatalf("expected empty render for blank input")
	}
}
