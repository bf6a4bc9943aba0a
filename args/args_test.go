package args

import (
	"testing"

	"github.com/jsynacek/vex/cmdtable"
)

func descFor(t *testing.T, id string) *cmdtable.Descriptor {
	t.Helper()
	for i := range cmdtable.Table {
		if cmdtable.Table[i].ID == id {
			return &cmdtable.Table[i]
		}
	}
	t.Fatalf("no descriptor with ID %q", id)
	return nil
}

func TestExtractWriteFileName(t *testing.T) {
	d := descFor(t, "write_file")
	got := Extract(d, "foo.txt")
	if got["file_name"] != "foo.txt" {
		t.Fatalf("Extract(write, foo.txt) = %+v", got)
	}
}

func TestExtractWriteBangShell(t *testing.T) {
	d := descFor(t, "write_file")
	got := Extract(d, "!gzip")
	if got["subcmd"] != "gzip" {
		t.Fatalf("Extract(write, !gzip) = %+v", got)
	}
}

func TestExtractWriteEmpty(t *testing.T) {
	d := descFor(t, "write_file")
	got := Extract(d, "")
	if len(got) != 0 {
		t.Fatalf("Extract(write, \"\") = %+v; want empty", got)
	}
}

func TestExtractDeleteRegisterAndCount(t *testing.T) {
	d := descFor(t, "delete")
	got := Extract(d, " a 10")
	if got["register"] != "a" || got["count"] != "10" {
		t.Fatalf("Extract(delete, ' a 10') = %+v", got)
	}
}

func TestExtractMoveAddress(t *testing.T) {
	d := descFor(t, "move")
	got := Extract(d, "10,20")
	if got["address"] != "10,20" {
		t.Fatalf("Extract(move, 10,20) = %+v", got)
	}
}

func TestExtractCopyAddress(t *testing.T) {
	d := descFor(t, "copy")
	got := Extract(d, "30")
	if got["address"] != "30" {
		t.Fatalf("Extract(copy, 30) = %+v", got)
	}
}

func TestExtractSubstitutePattern(t *testing.T) {
	d := descFor(t, "substitute")
	got := Extract(d, "/foo/bar/gi")
	if got["pattern"] != "/foo/bar/gi" {
		t.Fatalf("Extract(substitute, ...) = %+v", got)
	}
}

func TestExtractGlobalPattern(t *testing.T) {
	d := descFor(t, "global")
	got := Extract(d, "/TODO/delete")
	if got["pattern"] != "/TODO/delete" {
		t.Fatalf("Extract(global, ...) = %+v", got)
	}
}

func TestHasTrailingCharsNoInvocations(t *testing.T) {
	d := descFor(t, "write_all") // wall: no Invocations
	if !HasTrailingChars(d, "bogus") {
		t.Fatalf("HasTrailingChars(wall, bogus) should be true")
	}
	if HasTrailingChars(d, "") {
		t.Fatalf("HasTrailingChars(wall, \"\") should be false")
	}
}

func TestHasTrailingCharsExemptsAddressFamily(t *testing.T) {
	d := descFor(t, "copy")
	if HasTrailingChars(d, "anything") {
		t.Fatalf("HasTrailingChars(copy, ...) should always be false: copy has its own extractor")
	}
}
