package postgres

// orderClause maps caller-supplied sort parameters onto a whitelisted
// column. Anything outside the whitelist falls back to def, so request
// input never becomes SQL text.
func orderClause(sortBy, order string, allowed map[string]bool, def string) string {
	if !allowed[sortBy] {
		return def
	}
	dir := "ASC"
	if order == "desc" {
		dir = "DESC"
	}
	return sortBy + " " + dir
}
