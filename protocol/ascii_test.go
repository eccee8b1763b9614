package protocol_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/tdial/termcore/options"
	"github.com/tdial/termcore/protocol"
)

// ASCII upload CR add: file "A\nB\n", upload_lf_policy=Add,
// upload_cr_policy=None. Expect outbound "A\r\nB\r\n" and
// bytes_transfer = 6.
func TestAsciiUploadCRAdd(t *testing.T) {
	store := options.New(map[string]string{
		"upload_lf_policy": "add",
		"upload_cr_policy": "none",
	})
	cfg := protocol.NewAsciiConfig(store)

	file := struct {
		io.Reader
		io.Writer
	}{Reader: strings.NewReader("A\nB\n"), Writer: new(bytes.Buffer)}

	eng := protocol.NewAsciiEngine(cfg, file)
	stats := protocol.NewStats()
	stats.Phase = protocol.PhaseTransfer

	out := make([]byte, 64)
	written, err := eng.Upload(stats, out)
	if err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	got := string(out[:written])
	want := "A\r\nB\r\n"
	if got != want {
		t.Fatalf("Upload output = %q, want %q", got, want)
	}
	if stats.BytesTransfer != 6 {
		t.Fatalf("BytesTransfer = %d, want 6", stats.BytesTransfer)
	}
}

func TestCRLFPolicyNoneIsIdentity(t *testing.T) {
	store := options.New(nil)
	cfg := protocol.NewAsciiConfig(store)

	file := struct {
		io.Reader
		io.Writer
	}{Reader: strings.NewReader("hello\r\nworld"), Writer: new(bytes.Buffer)}

	eng := protocol.NewAsciiEngine(cfg, file)
	stats := protocol.NewStats()

	out := make([]byte, 64)
	written, err := eng.Upload(stats, out)
	if err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if string(out[:written]) != "hello\r\nworld" {
		t.Fatalf("Upload output = %q, want identity passthrough", string(out[:written]))
	}
}
