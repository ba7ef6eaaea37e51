package clean

import (
	"github.com/scourdata/scour/internal/config"
	"github.com/scourdata/scour/internal/dataset"
)

// AutoClean runs the full cleaning pipeline over a working copy of ds
// and returns the cleaned dataset together with the completed report.
// The input dataset is never modified.
//
// The stage order is a contract: names are standardized before type
// coercion so later stages act on canonical identifiers; types are
// coerced before deduplication so numeric and date duplicates compare
// equal; duplicates go before missing-value handling so no imputation
// work is spent on rows that would be dropped anyway. Outlier handling
// runs last and uses the non-destructive capping method over all
// numeric columns.
func AutoClean(ds *dataset.Dataset, opts config.Options) (*dataset.Dataset, *Report, error) {
	c := NewCleaner(ds)

	if opts.StandardizeNames {
		c.StandardizeNames()
	}
	if opts.ConvertTypes {
		c.ConvertTypes()
	}
	if opts.RemoveDuplicates {
		c.RemoveDuplicates()
	}
	if opts.HandleMissing {
		if err := c.HandleMissing(StrategyAuto); err != nil {
			return nil, nil, err
		}
	}
	if opts.HandleOutliers {
		if numeric := c.Dataset().NumericColumns(); len(numeric) > 0 {
			if err := c.HandleOutliers(numeric, MethodCap); err != nil {
				return nil, nil, err
			}
		}
	}

	c.Finalize()
	return c.Dataset(), c.Report(), nil
}
