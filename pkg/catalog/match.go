package catalog

import "strings"

// The add and remove workflows deliberately use different matching rules:
// add checks for a case-insensitive exact name match, remove searches for a
// case-insensitive substring. Keep the two rules distinct.

// HasOption reports whether the product already carries an option whose
// name equals name, compared case-insensitively.
func (p Product) HasOption(name string) bool {
	for _, opt := range p.Options {
		if strings.EqualFold(opt.Name, name) {
			return true
		}
	}
	return false
}

// FindOption returns the first option whose name contains term,
// compared case-insensitively.
func (p Product) FindOption(term string) (Option, bool) {
	needle := strings.ToLower(term)
	for _, opt := range p.Options {
		if strings.Contains(strings.ToLower(opt.Name), needle) {
			return opt, true
		}
	}
	return Option{}, false
}

// MissingOption filters products to those that do not carry an option named
// name. The add workflow issues one create call per returned product.
func MissingOption(products []Product, name string) []Product {
	var missing []Product
	for _, p := range products {
		if !p.HasOption(name) {
			missing = append(missing, p)
		}
	}
	return missing
}
