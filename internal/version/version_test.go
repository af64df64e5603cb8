package version

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

func TestGetVersionInfoHonoursLinkerValues(t *testing.T) {
	oldV, oldR := Version, Revision
	t.Cleanup(func() { Version, Revision = oldV, oldR })

	Version, Revision = "v9.9.9", "abcdef1"
	info := GetVersionInfo()
	if info.Version != "v9.9.9" || info.Revision != "abcdef1" {
		t.Errorf("info = %+v", info)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("go version = %q", info.GoVersion)
	}
}

func TestInfoFormats(t *testing.T) {
	info := Info{Version: "v1", Revision: "r", BuiltAt: "now", GoVersion: "go"}
	if !strings.Contains(info.String(), "Version: v1") {
		t.Errorf("String() = %q", info.String())
	}

	out, err := info.JSON()
	if err != nil {
		t.Fatal(err)
	}
	var back Info
	if err := json.Unmarshal([]byte(out), &back); err != nil {
		t.Fatal(err)
	}
	if back != info {
		t.Errorf("round trip = %+v", back)
	}
}

func TestShortRevision(t *testing.T) {
	if got := shortRevision("0123456789"); got != "0123456" {
		t.Errorf("shortRevision = %q", got)
	}
	if got := shortRevision("abc"); got != "abc" {
		t.Errorf("shortRevision = %q", got)
	}
}
