package progress

import (
	"bytes"
	"sync"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf, Description: "Exporting"}
	r.Start(2)
	r.Increment("en/aries")
	r.Increment("en/taurus")
	r.Finish()

	want := "Exporting: 2 items\n[1/2] en/aries\n[2/2] en/taurus\nExporting: done\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("x").(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestTerminalReporterConcurrent(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{Out: &buf, Description: "Exporting"}
	r.Start(50)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Increment("step")
		}()
	}
	wg.Wait()
	r.Finish()
}
