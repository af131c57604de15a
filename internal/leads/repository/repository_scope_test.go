package repository

import (
	"strings"
	"testing"
)

// Every statement must carry the tenant filter so one user can never see
// or mutate another user's leads, even when the row id is guessed.
func TestQueriesAreTenantScoped(t *testing.T) {
	queries := map[string]string{
		"getAll":          getAllQuery,
		"getDeleted":      getDeletedQuery,
		"getByID":         getByIDQuery,
		"softDelete":      softDeleteQuery,
		"restore":         restoreQuery,
		"permanentDelete": permanentDeleteQuery,
	}

	for name, query := range queries {
		if !strings.Contains(query, "user_id = $") {
			t.Errorf("%s query missing user_id filter:\n%s", name, query)
		}
	}
}

func TestSoftDeleteOnlyTouchesActiveLeads(t *testing.T) {
	if !strings.Contains(softDeleteQuery, "deleted_at IS NULL") {
		t.Fatalf("soft delete must be conditional on the lead being active:\n%s", softDeleteQuery)
	}
	if !strings.Contains(softDeleteQuery, "status = 'deleted'") {
		t.Fatalf("soft delete must move the lead to the deleted status:\n%s", softDeleteQuery)
	}
}

func TestRestoreOnlyTouchesDeletedLeads(t *testing.T) {
	if !strings.Contains(restoreQuery, "deleted_at IS NOT NULL") {
		t.Fatalf("restore must be conditional on the lead being soft-deleted:\n%s", restoreQuery)
	}
	if !strings.Contains(restoreQuery, "status = 'new'") {
		t.Fatalf("restore must reset the lead status:\n%s", restoreQuery)
	}
}

func TestPermanentDeleteRequiresPriorSoftDelete(t *testing.T) {
	if !strings.Contains(permanentDeleteQuery, "deleted_at IS NOT NULL") {
		t.Fatalf("permanent delete must never match active leads:\n%s", permanentDeleteQuery)
	}
}

func TestListingsSeparateActiveFromTrash(t *testing.T) {
	if !strings.Contains(getAllQuery, "deleted_at IS NULL") {
		t.Fatalf("active listing must exclude soft-deleted leads:\n%s", getAllQuery)
	}
	if !strings.Contains(getDeletedQuery, "deleted_at IS NOT NULL") {
		t.Fatalf("trash listing must only contain soft-deleted leads:\n%s", getDeletedQuery)
	}
	if !strings.Contains(getAllQuery, "ORDER BY created_at DESC") {
		t.Fatalf("active listing must be newest first:\n%s", getAllQuery)
	}
	if !strings.Contains(getDeletedQuery, "ORDER BY deleted_at DESC") {
		t.Fatalf("trash listing must be most recently deleted first:\n%s", getDeletedQuery)
	}
}
