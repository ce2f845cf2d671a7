package schemes

import (
	"strings"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/catalog"
)

// Service filters the static scheme directory. It holds its own copy of the
// catalog so handlers never hand callers a slice they could mutate.
type Service struct {
	directory []catalog.Scheme
}

func NewService() *Service {
	directory := make([]catalog.Scheme, len(catalog.Schemes))
	copy(directory, catalog.Schemes)
	return &Service{directory: directory}
}

// Filter returns schemes matching the category and search term. Empty filters
// match everything; both filters are case-insensitive.
func (s *Service) Filter(category, search string) []catalog.Scheme {
	category = strings.ToLower(strings.TrimSpace(category))
	search = strings.ToLower(strings.TrimSpace(search))

	matched := make([]catalog.Scheme, 0, len(s.directory))
	for _, scheme := range s.directory {
		if category != "" && category != "all" && strings.ToLower(scheme.Category) != category {
			continue
		}
		if search != "" && !matchesSearch(scheme, search) {
			continue
		}
		matched = append(matched, scheme)
	}
	return matched
}

// Get returns the scheme with the given ID.
func (s *Service) Get(id string) (catalog.Scheme, bool) {
	for _, scheme := range s.directory {
		if strings.EqualFold(scheme.ID, id) {
			return scheme, true
		}
	}
	return catalog.Scheme{}, false
}

// Categories returns the distinct categories in directory order.
func (s *Service) Categories() []string {
	return catalog.SchemeCategories()
}

func matchesSearch(scheme catalog.Scheme, search string) bool {
	if strings.Contains(strings.ToLower(scheme.Name), search) ||
		strings.Contains(strings.ToLower(scheme.Description), search) {
		return true
	}
	for _, benefit := range scheme.Benefits {
		if strings.Contains(strings.ToLower(benefit), search) {
			return true
		}
	}
	return false
}
