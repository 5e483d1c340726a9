package repositories

import (
	"strings"
	"testing"
)

func TestSchemaCascadesItemChildren(t *testing.T) {
	// Deleting an item must take its dependent rows with it, otherwise the
	// delete fails on the foreign keys.
	cascading := []string{"fk_item_images_item", "fk_claims_item", "fk_person_images_person"}

	for _, constraint := range cascading {
		found := false
		for _, stmt := range schemaStatements {
			idx := strings.Index(stmt, constraint)
			if idx < 0 {
				continue
			}
			found = true
			line := stmt[idx:]
			if end := strings.IndexByte(line, '\n'); end >= 0 {
				line = line[:end]
			}
			if !strings.Contains(line, "ON DELETE CASCADE") {
				t.Errorf("constraint %s does not cascade: %s", constraint, line)
			}
		}
		if !found {
			t.Errorf("constraint %s not declared in schema", constraint)
		}
	}
}
