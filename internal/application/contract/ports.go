package contract

import "io"

// DocumentStore persists uploaded contract documents. Save receives the
// client file name, prefixes it with a timestamp to avoid collisions,
// and returns the stored name kept on the contract record.
type DocumentStore interface {
	Save(name string, r io.Reader) (stored string, err error)
	Open(stored string) (io.ReadCloser, error)
	Delete(stored string) error
}
