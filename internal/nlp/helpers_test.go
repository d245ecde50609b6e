package nlp

import (
	"testing"

	"healthassist/internal/catalog"
)

func mustRecord(t *testing.T, id string) catalog.Record {
	t.Helper()
	rec, ok := catalog.ByID(id)
	if !ok {
		t.Fatalf("catalog record %q not found", id)
	}
	return rec
}
