package validate

import (
	"reflect"
	"strings"
	"testing"
)

func TestRequiredReportsEveryMissingField(t *testing.T) {
	values := map[string]string{
		"name":  "",
		"email": "a@b.com",
	}
	missing := Required(values, []string{"name", "email", "phone"})
	if !reflect.DeepEqual(missing, []string{"name", "phone"}) {
		t.Errorf("Required = %v, want [name phone]", missing)
	}
}

func TestRequiredEmptyStringCountsAsAbsent(t *testing.T) {
	missing := Required(map[string]string{"name": "", "email": "a@b.com"}, []string{"name", "email"})
	if len(missing) != 1 || missing[0] != "name" {
		t.Errorf("Required = %v, want [name]", missing)
	}
}

func TestRequiredAllPresent(t *testing.T) {
	if missing := Required(map[string]string{"name": "x"}, []string{"name"}); missing != nil {
		t.Errorf("Required = %v, want nil", missing)
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello  "); got != "hello" {
		t.Errorf("trim: got %q", got)
	}
	if got := SanitizeString("a < b"); got != "a &lt; b" {
		t.Errorf("angle bracket not escaped: %q", got)
	}
	if got := SanitizeString("<script>alert(1)</script>ok"); strings.Contains(got, "<script>") {
		t.Errorf("markup survived: %q", got)
	}
}

func TestSanitizeStringEscapesMarkup(t *testing.T) {
	// Well-formed tags come back escaped, not stripped.
	if got := SanitizeString("<b>x</b>"); got != "&lt;b&gt;x&lt;/b&gt;" {
		t.Errorf("SanitizeString(<b>x</b>) = %q", got)
	}
	if got := SanitizeString("Tom & Jerry"); got != "Tom &amp; Jerry" {
		t.Errorf("ampersand: %q", got)
	}
	if got := SanitizeString(`say "hi"`); got != "say &#34;hi&#34;" {
		t.Errorf("quotes: %q", got)
	}
}

func TestEmail(t *testing.T) {
	valid := []string{"a@b.com", "info@hancer.av.tr", "first.last+tag@example.co.uk"}
	for _, e := range valid {
		if !Email(e) {
			t.Errorf("Email(%q) = false, want true", e)
		}
	}
	invalid := []string{"", "plain", "@missing.local", "user@", "user@host", "a b@c.com"}
	for _, e := range invalid {
		if Email(e) {
			t.Errorf("Email(%q) = true, want false", e)
		}
	}
}

func TestLegalArea(t *testing.T) {
	for _, area := range []string{"family_law", "maritime_law", "other"} {
		if !LegalArea(area) {
			t.Errorf("LegalArea(%q) = false, want true", area)
		}
	}
	for _, area := range []string{"", "FAMILY_LAW", "space_law"} {
		if LegalArea(area) {
			t.Errorf("LegalArea(%q) = true, want false", area)
		}
	}
}

func TestUrgency(t *testing.T) {
	for _, u := range []string{"low", "medium", "high", "urgent"} {
		if !Urgency(u) {
			t.Errorf("Urgency(%q) = false, want true", u)
		}
	}
	if Urgency("critical") {
		t.Error("Urgency(critical) = true, want false")
	}
}

func TestLanguage(t *testing.T) {
	for _, l := range []string{"tr", "en", "de", "ru"} {
		if !Language(l) {
			t.Errorf("Language(%q) = false, want true", l)
		}
	}
	if Language("fr") {
		t.Error("Language(fr) = true, want false")
	}
}
