package ingest

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/next-trace/scg-ingest/customer"
	ingestError "github.com/next-trace/scg-ingest/error"
)

// Load reads every customer from the CSV file at path.
// Failures carry a "loading <file name>" context entry.
func Load(path string, opts ...Option) (customers []customer.Customer, err error) {
	defer ingestError.Annotate(&err, "loading "+filepath.Base(path))

	f, err := os.Open(path)
	if err != nil {
		return nil, ingestError.FromSource(err)
	}
	defer f.Close()

	d := NewDecoder(f, opts...)

	customers, err = d.All()
	if err != nil {
		return nil, err
	}

	d.logger.Debug("loaded customers", zap.String("path", path), zap.Int("count", len(customers)))

	return customers, nil
}
