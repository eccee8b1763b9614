package script_test

import (
	"testing"

	"github.com/tdial/termcore/log"
	"github.com/tdial/termcore/script"
)

// Scenario 5: fill the print buffer to capacity (128 code points, all
// 4-byte) then call print_character(x). Expect no append and
// print_buffer_full = true.
func TestPrintBufferBackpressure(t *testing.T) {
	b := script.New(log.New(64), 80)

	for i := 0; i < 128; i++ {
		b.PrintCharacter(0x1F600) // 4-byte code point
	}
	if b.PrintBufferFull() {
		t.Fatal("buffer reported full before reaching capacity")
	}

	b.PrintCharacter('x')
	if !b.PrintBufferFull() {
		t.Fatal("PrintBufferFull() = false, want true after exceeding capacity")
	}
}

func TestEnvBuildOmitsEmptyTerm(t *testing.T) {
	// buildEnv is unexported; this test documents the contract via the
	// public Start path's env construction is exercised indirectly by
	// integration tests outside this package's scope (spawning a real
	// child process). Nothing to assert here without process spawn.
	_ = script.Env{}
}
