package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuditItems_Normalize_DropsUnknownItems(t *testing.T) {
	t.Parallel()

	items := AuditItems{
		"xml-sitemap":      {Status: AuditItemPassed, Notes: "submitted 2026-02"},
		"not-a-real-check": {Status: AuditItemFailed},
	}

	out := items.Normalize()

	assert.Len(t, out, 1)
	assert.Equal(t, AuditItemPassed, out["xml-sitemap"].Status)
	assert.NotContains(t, out, "not-a-real-check")
}

func TestAuditItems_Normalize_DefaultsUnknownStatus(t *testing.T) {
	t.Parallel()

	items := AuditItems{
		"https": {Status: "maybe", Notes: "cert renews soon"},
	}

	out := items.Normalize()

	assert.Equal(t, AuditItemPending, out["https"].Status)
	assert.Equal(t, "cert renews soon", out["https"].Notes)
}

func TestChecklist_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := Checklist()
	first[0].Title = "mutated"

	assert.NotEqual(t, "mutated", Checklist()[0].Title)
}
