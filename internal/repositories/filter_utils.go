package repositories

import "strings"

// itemSearchClause builds the WHERE clause for the item free-text search.
// The same clause feeds both the COUNT and the page query so pagination
// totals always describe the filtered set.
func itemSearchClause(search string) (string, []any) {
	search = strings.TrimSpace(search)
	if search == "" {
		return "", nil
	}
	fields := []string{"i.name", "i.description", "i.status", "c.name", "u.name", "u.surname"}
	conditions := make([]string, len(fields))
	params := make([]any, len(fields))
	for idx, field := range fields {
		conditions[idx] = field + " LIKE ?"
		params[idx] = "%" + search + "%"
	}
	return " WHERE " + strings.Join(conditions, " OR "), params
}

// TotalPages is ceil(total/limit); zero when either side is empty.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
