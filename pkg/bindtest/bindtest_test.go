package bindtest

import (
	"testing"

	"github.com/bindkit-dev/bindkit/pkg/bind"
)

func TestRecorder(t *testing.T) {
	doc := NewDoc().
		Bindable("button", "save", "click", "onSave").
		Bindable("input", "name", "focus, blur", "onFocus, onBlur").
		Plain("div", "static").
		Build()

	rec := NewRecorder("onSave", "onFocus", "onBlur")
	report, err := bind.BindDocument(doc, rec.Registry())
	if err != nil {
		t.Fatalf("BindDocument: %v", err)
	}
	ExpectBound(t, report, 2, 3)

	t.Run("calls are recorded in order", func(t *testing.T) {
		if n := Fire(t, doc, "save", "click"); n != 1 {
			t.Errorf("Fire = %d, want 1", n)
		}
		Fire(t, doc, "name", "blur")

		calls := rec.Calls()
		if len(calls) != 2 {
			t.Fatalf("calls = %d, want 2", len(calls))
		}
		if calls[0] != (Call{Handler: "onSave", Event: "click", Target: "save"}) {
			t.Errorf("calls[0] = %+v", calls[0])
		}
		if calls[1] != (Call{Handler: "onBlur", Event: "blur", Target: "name"}) {
			t.Errorf("calls[1] = %+v", calls[1])
		}
	})

	t.Run("call count per handler", func(t *testing.T) {
		Fire(t, doc, "save", "click")
		if got := rec.CallCount("onSave"); got != 2 {
			t.Errorf("CallCount(onSave) = %d, want 2", got)
		}
		if got := rec.CallCount("onFocus"); got != 0 {
			t.Errorf("CallCount(onFocus) = %d, want 0", got)
		}
	})
}

func TestExpectErrorContains(t *testing.T) {
	doc := NewDoc().
		Bindable("button", "b1", "click", "nope").
		Build()

	_, err := bind.BindDocument(doc, NewRecorder("onSave").Registry())
	ExpectErrorContains(t, err, "nope")
	ExpectErrorContains(t, err, "B002")
}
