package employees

import "context"

// Repo reads employee records. Implementations never modify the table.
type Repo interface {
	ListAll(ctx context.Context) ([]Employee, error)
}
