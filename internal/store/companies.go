package store

import "jobwatch/internal/domain"

// LoadCompanies reads the tracked-companies file. A missing file is an empty list.
func LoadCompanies(path string) ([]domain.Company, error) {
	return LoadJSON(path, []domain.Company{})
}
