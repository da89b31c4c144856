package display

import "testing"

func TestQuote(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		style     string
		alignment bool
		want      string
	}{
		{"auto plain name untouched", "file.txt", "auto", false, "file.txt"},
		{"auto space quoted", "my file.txt", "auto", false, "'my file.txt'"},
		{"auto shell char quoted", "a&b", "auto", false, "'a&b'"},
		{"auto glob char quoted", "*.txt", "auto", false, "'*.txt'"},
		{"auto alignment space", "file.txt", "auto", true, " file.txt"},
		{"auto quoted gets no alignment space", "my file", "auto", true, "'my file'"},
		{"single always wraps", "file.txt", "single", false, "'file.txt'"},
		{"double always wraps", "file.txt", "double", false, "\"file.txt\""},
		{"never leaves specials bare", "my file", "never", false, "my file"},
		{"single escapes inner quote", "it's", "single", false, `'it\'s'`},
		{"double escapes inner quote", `say "hi"`, "double", false, `"say \"hi\""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.text, tt.style, tt.alignment); got != tt.want {
				t.Errorf("Quote(%q, %q, %v) = %q, want %q", tt.text, tt.style, tt.alignment, got, tt.want)
			}
		})
	}
}

func TestQuoteSymlinkSides(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		style string
		want  string
	}{
		{"both sides plain", "link ⇒ /etc/passwd", "auto", "link ⇒ /etc/passwd"},
		{"only name quoted", "my link ⇒ target", "auto", "'my link' ⇒ target"},
		{"only target quoted", "link ⇒ my target", "auto", "link ⇒ 'my target'"},
		{"single wraps both sides", "link ⇒ target", "single", "'link' ⇒ 'target'"},
		{"double wraps both sides", "link ⇒ target", "double", "\"link\" ⇒ \"target\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.text, tt.style, false); got != tt.want {
				t.Errorf("Quote(%q, %q) = %q, want %q", tt.text, tt.style, got, tt.want)
			}
		})
	}
}

func TestIsQuotable(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"file.txt", false},
		{"my file.txt", true},
		{"a|b", true},
		{"link ⇒ /etc/passwd", false},
		{"link ⇒ my target", true},
	}

	for _, tt := range tests {
		if got := IsQuotable(tt.text); got != tt.want {
			t.Errorf("IsQuotable(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
