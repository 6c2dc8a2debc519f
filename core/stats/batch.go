package stats

import (
	"github.com/google/uuid"

	"github.com/tanakhlab/mesologia/core/corpus"
	"github.com/tanakhlab/mesologia/core/pattern"
	"github.com/tanakhlab/mesologia/core/scan"
	"github.com/tanakhlab/mesologia/internal/logging"
)

// BatchResult collects the per-spec results of one batch run against a
// single corpus snapshot.
type BatchResult struct {
	// RunID uniquely identifies this batch run.
	RunID string

	// CorpusHash names the snapshot every result was computed against.
	CorpusHash string

	// Results holds one entry per input spec, in input order.
	Results []Result
}

// RunBatch evaluates each spec independently against the corpus: scan,
// estimate, test. Results preserve input order. A failure or degenerate
// expectation in one spec never aborts the others; per-spec problems are
// recorded on the result's Err field.
func RunBatch(c *corpus.Corpus, specs []pattern.Spec, opts scan.Options, threshold float64) BatchResult {
	batch := BatchResult{
		RunID:      uuid.NewString(),
		CorpusHash: c.Hash(),
		Results:    make([]Result, 0, len(specs)),
	}

	for _, spec := range specs {
		batch.Results = append(batch.Results, runOne(c, spec, opts, threshold))
	}

	return batch
}

// runOne executes the scan → estimate → test pipeline for a single spec.
func runOne(c *corpus.Corpus, spec pattern.Spec, opts scan.Options, threshold float64) Result {
	instances, err := scan.Scan(c, spec, opts)
	if err != nil {
		logging.Warn("spec skipped", "spec", spec.ID(), "error", err.Error())
		return Result{Spec: spec, Threshold: threshold, Err: err}
	}

	freq, err := EstimateFrequencies(c, spec)
	if err != nil {
		logging.Warn("spec skipped", "spec", spec.ID(), "error", err.Error())
		return Result{Spec: spec, Observed: len(instances), Threshold: threshold, Err: err}
	}

	result := Test(spec, freq, len(instances), threshold)
	logging.SpecEvaluated(spec.ID(), result.Observed, freq.Lambda, result.PValue)
	return result
}

// Run executes the pipeline for a single spec. Unlike RunBatch it
// propagates scan and estimation failures to the caller.
func Run(c *corpus.Corpus, spec pattern.Spec, opts scan.Options, threshold float64) (Result, []scan.Instance, error) {
	instances, err := scan.Scan(c, spec, opts)
	if err != nil {
		return Result{}, nil, err
	}

	freq, err := EstimateFrequencies(c, spec)
	if err != nil {
		return Result{}, nil, err
	}

	return Test(spec, freq, len(instances), threshold), instances, nil
}
