package main

import (
	"path/filepath"
	"testing"
)

// sample holds "example.com" in UTF-8 at 0x02 and in UTF-16LE at 0x10.
const sample = "\x00\x00example.com\x00\x00\x00" +
	"e\x00x\x00a\x00m\x00p\x00l\x00e\x00.\x00c\x00o\x00m\x00\x00\x00"

func TestSearchCommand(t *testing.T) {
	tests := []struct {
		name           string
		data           string
		term           string
		flags          scanFlags
		json           bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name: "utf-8 and utf-16le",
			data: sample,
			term: "example.com",
			wantContain: []string{
				"[1] Match at 0x00000002 (2)",
				"[2] Match at 0x00000010 (16)",
				"Encoding   : utf-8",
				"Encoding   : utf-16le",
				`Exact bytes: "example.com"`,
				"Context    : example.com",
				"Total: 2 match(es)",
			},
		},
		{
			name:           "case sensitive by default",
			data:           "\x00EXAMPLE\x00",
			term:           "example",
			wantContain:    []string{"No matches found.", "Total: 0 match(es)"},
			wantNotContain: []string{"[1]"},
		},
		{
			name:        "ignore case",
			data:        "\x00EXAMPLE\x00",
			term:        "example",
			flags:       scanFlags{ignoreCase: true},
			wantContain: []string{"[1] Match at 0x00000001 (1)", `"EXAMPLE"`},
		},
		{
			name:           "limit",
			data:           sample,
			term:           "example.com",
			flags:          scanFlags{limit: 1},
			wantContain:    []string{"[1] Match", "limited to 1 of 2 matches", "Total: 2"},
			wantNotContain: []string{"[2] Match"},
		},
		{
			name:        "utf-16be opt in",
			data:        "\x00\x00\x00h\x00i\x00\x00",
			term:        "hi",
			flags:       scanFlags{utf16be: true},
			wantContain: []string{"Encoding   : utf-16be"},
		},
		{
			name:        "json",
			data:        sample,
			term:        "example.com",
			json:        true,
			wantContain: []string{`"total": 2`, `"encoding": "utf-16le"`, `"context_text": "example.com"`},
		},
		{
			name:        "control characters sanitized",
			data:        "\x00ab\x01key\x00",
			term:        "key",
			wantContain: []string{"Context    : ab.key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, "")
			searchFlags = tt.flags
			jsonOut = tt.json

			path := writeTemp(t, tt.data)
			output, err := captureOutput(t, func() error {
				return runSearch([]string{path, tt.term})
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("runSearch() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
			}
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestSearchMissingFile(t *testing.T) {
	resetFlags(t, "")
	_, err := captureOutput(t, func() error {
		return runSearch([]string{filepath.Join(t.TempDir(), "nope.bin"), "x"})
	})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSearchQuiet(t *testing.T) {
	resetFlags(t, "")
	quiet = true
	path := writeTemp(t, sample)
	output, err := captureOutput(t, func() error {
		return runSearch([]string{path, "example.com"})
	})
	if err != nil {
		t.Fatal(err)
	}
	if output != "" {
		t.Errorf("quiet search printed %q", output)
	}
}
