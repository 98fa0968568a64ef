package profilestore

import (
	"fmt"

	"github.com/svisuals/seq4d/internal/contract"
)

// PrintStoreStatus prints human-readable store status to stdout.
func PrintStoreStatus(status contract.StoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	fmt.Printf("Location: %s\n", status.Location)
	fmt.Printf("Persisted Groups: %d\n", status.Groups)
	fmt.Printf("Persisted Profiles: %d\n", status.Profiles)
}
