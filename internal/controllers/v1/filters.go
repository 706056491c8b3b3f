package v1

import (
	"fmt"

	"github.com/pocketplan/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// nameFilter filters by the name column. An explicitly empty name
// parameter matches resources without a name.
func nameFilter(query *gorm.DB, setFields []string, name string) *gorm.DB {
	if name != "" {
		return query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	}

	if slices.Contains(setFields, "Name") {
		return query.Where("name = ''")
	}

	return query
}

// searchFilter adds a substring search over the given columns.
func searchFilter(db, query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" {
		return query
	}

	match := db.Where(fmt.Sprintf("%s LIKE ?", columns[0]), fmt.Sprintf("%%%s%%", search))
	for _, column := range columns[1:] {
		match = match.Or(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", search))
	}

	return query.Where(match)
}

// matchDebts filters debts by a glob pattern applied to name and source,
// so that "Shopee*" or "*BNPL*" style patterns work like match rules.
func matchDebts(debts []models.Debt, pattern string) []models.Debt {
	if pattern == "" {
		return debts
	}

	matched := make([]models.Debt, 0, len(debts))
	for _, debt := range debts {
		if glob.Glob(pattern, debt.Name) || glob.Glob(pattern, debt.Source) {
			matched = append(matched, debt)
		}
	}

	return matched
}
