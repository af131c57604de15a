package repository

import (
	"strings"
	"testing"
)

func TestQueriesAreTenantScoped(t *testing.T) {
	queries := map[string]string{
		"listByLead": listByLeadQuery,
		"getByID":    getByIDQuery,
		"update":     updateQuery,
		"delete":     deleteQuery,
	}

	for name, query := range queries {
		if !strings.Contains(query, "user_id = $") {
			t.Errorf("%s query missing user_id filter:\n%s", name, query)
		}
	}
}

func TestCreateOnlyAttachesToOwnedActiveLeads(t *testing.T) {
	if !strings.Contains(createQuery, "l.user_id = $2") {
		t.Fatalf("create must verify lead ownership:\n%s", createQuery)
	}
	if !strings.Contains(createQuery, "l.deleted_at IS NULL") {
		t.Fatalf("create must reject soft-deleted leads:\n%s", createQuery)
	}
}

func TestListingIsNewestFirst(t *testing.T) {
	if !strings.Contains(listByLeadQuery, "ORDER BY date DESC") {
		t.Fatalf("conversations must list newest first:\n%s", listByLeadQuery)
	}
}
