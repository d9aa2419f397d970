package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/glabrego/potui/internal/catalog"
)

type fakeService struct {
	saveErr    error
	suggestion string
	found      bool
	savedPath  string
}

func (f *fakeService) SaveCatalog(_ context.Context, c *catalog.Catalog) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedPath = c.Path
	return nil
}

func (f *fakeService) Suggest(_ context.Context, _ *catalog.Catalog, _ catalog.Entry) (string, bool) {
	return f.suggestion, f.found
}

func TestSaveCmd_Success(t *testing.T) {
	svc := &fakeService{}
	c := catalog.New("demo.po")

	msg := SaveCmd(svc, c)()
	success, ok := msg.(SaveSuccessMsg)
	if !ok {
		t.Fatalf("expected SaveSuccessMsg, got %T", msg)
	}
	if success.Path != "demo.po" {
		t.Fatalf("unexpected path: %s", success.Path)
	}
	if svc.savedPath != "demo.po" {
		t.Fatalf("service saw path %q", svc.savedPath)
	}
}

func TestSaveCmd_Error(t *testing.T) {
	svc := &fakeService{saveErr: errors.New("disk full")}

	msg := SaveCmd(svc, catalog.New("demo.po"))()
	errMsg, ok := msg.(SaveErrorMsg)
	if !ok {
		t.Fatalf("expected SaveErrorMsg, got %T", msg)
	}
	if errMsg.Err == nil {
		t.Fatal("expected wrapped error")
	}
}

func TestSuggestCmd(t *testing.T) {
	svc := &fakeService{suggestion: "Bonjour", found: true}
	c := catalog.New("demo.po")

	msg := SuggestCmd(svc, c, 3, catalog.Entry{Msgid: "Hello"})()
	result, ok := msg.(SuggestResultMsg)
	if !ok {
		t.Fatalf("expected SuggestResultMsg, got %T", msg)
	}
	if result.EntryIndex != 3 || !result.Found || result.Suggestion != "Bonjour" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestSuggestCmd_Miss(t *testing.T) {
	svc := &fakeService{}

	msg := SuggestCmd(svc, catalog.New("demo.po"), 0, catalog.Entry{Msgid: "Hello"})()
	result, ok := msg.(SuggestResultMsg)
	if !ok {
		t.Fatalf("expected SuggestResultMsg, got %T", msg)
	}
	if result.Found {
		t.Fatal("expected a miss")
	}
}

func TestCopyCmd(t *testing.T) {
	var copied string
	msg := CopyCmd("msgstr", "Bonjour", func(s string) (string, error) {
		copied = s
		return "pbcopy", nil
	})()
	success, ok := msg.(CopySuccessMsg)
	if !ok {
		t.Fatalf("expected CopySuccessMsg, got %T", msg)
	}
	if copied != "Bonjour" {
		t.Fatalf("copied %q", copied)
	}
	if success.Tool != "pbcopy" {
		t.Fatalf("tool = %q", success.Tool)
	}

	msg = CopyCmd("msgstr", "x", func(string) (string, error) { return "", errors.New("no tool") })()
	if _, ok := msg.(CopyErrorMsg); !ok {
		t.Fatalf("expected CopyErrorMsg, got %T", msg)
	}
}
