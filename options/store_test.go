package options_test

import (
	"testing"

	"github.com/tdial/termcore/options"
)

func TestBoolDefaultsFalse(t *testing.T) {
	s := options.New(nil)
	if s.Bool("upload-use-translate-table") {
		t.Fatal("absent key should default to false")
	}
	s = options.New(map[string]string{"x": "bogus"})
	if s.Bool("x") {
		t.Fatal("malformed value should default to false")
	}
	s = options.New(map[string]string{"x": "YES"})
	if !s.Bool("x") {
		t.Fatal("case-insensitive true value should parse")
	}
}

func TestCRLFDefaultsNone(t *testing.T) {
	s := options.New(map[string]string{"p": "garbage"})
	if s.CRLF("p") != options.CRLFNone {
		t.Fatal("malformed CRLF policy should default to None")
	}
	s = options.New(map[string]string{"p": "Add"})
	if s.CRLF("p") != options.CRLFAdd {
		t.Fatal("Add should parse case-insensitively")
	}
}
