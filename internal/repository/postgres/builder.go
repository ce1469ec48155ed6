package postgres

// applyPagination appends LIMIT/OFFSET placeholders to a query built
// with ? bind vars; callers Rebind before executing
func applyPagination(query string, args []interface{}, limit, offset int) (string, []interface{}) {
	query += ` LIMIT ? OFFSET ?`
	args = append(args, limit, offset)
	return query, args
}
