package database

import "fmt"

// TableNames holds the prefixed table names for the current environment
type TableNames struct {
	Projects     string
	Processes    string
	Subprocesses string
	Stakeholders string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Projects:     fmt.Sprintf("%sprojects", prefix),
		Processes:    fmt.Sprintf("%sprocesses", prefix),
		Subprocesses: fmt.Sprintf("%ssubprocesses", prefix),
		Stakeholders: fmt.Sprintf("%sstakeholders", prefix),
	}
}

// DependencyOrder lists tables children first, the order in which they can be dropped or cleared
func (t *TableNames) DependencyOrder() []string {
	return []string{t.Stakeholders, t.Subprocesses, t.Processes, t.Projects}
}
