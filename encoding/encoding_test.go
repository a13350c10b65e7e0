package encoding

import "testing"

func TestLoadAliases(t *testing.T) {
	names := []string{
		"utf8", "utf-8", "UTF-8",
		"utf16le", "utf-16le", "UTF-16LE",
		"utf16be", "utf-16be", "UTF-16BE",
		"utf32le", "utf-32le", "UTF-32LE",
		"utf32be", "utf-32be", "UTF-32BE",
	}
	for _, name := range names {
		if Load(name) == nil {
			t.Errorf("Failed to load '%s'", name)
		}
	}

	for _, name := range []string{"", "euc-jp", "iso-8859-1", "bogus"} {
		if Load(name) != nil {
			t.Errorf("Load('%s') should not resolve", name)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	const v = "Hello, 世界"
	for _, name := range []string{"utf-8", "utf-16le", "utf-16be", "utf-32le", "utf-32be"} {
		e := Load(name)
		enc := e.NewEncoder()
		dec := e.NewDecoder()

		encoded, err := enc.String(v)
		if err != nil {
			t.Fatalf("Failed to encode with %s: %s", name, err)
		}
		t.Logf("%s: '%s' -> '%#x'", name, v, encoded)

		decoded, err := dec.String(encoded)
		if err != nil {
			t.Fatalf("Failed to decode with %s: %s", name, err)
		}
		if decoded != v {
			t.Errorf("%s round trip: got '%s', want '%s'", name, decoded, v)
		}
	}
}
