package beast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whip-phylo/whip/internal/testutil"
)

func TestChainLength_ReadsIntegerAttribute(t *testing.T) {
	// GIVEN a job configured for 1,000,000 states
	spec := testutil.DefaultJob(3)
	spec.ChainLength = 1000000
	path := testutil.WriteJob(t, t.TempDir(), "job.xml", spec)
	job, err := LoadJob(path)
	require.NoError(t, err)

	// WHEN the chain length is read
	n, err := job.ChainLength()

	// THEN it is returned as an integer
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), n)
}

func TestChainLength_Missing_InvalidInput(t *testing.T) {
	spec := testutil.DefaultJob(3)
	spec.ChainLength = 0
	job, err := LoadJob(testutil.WriteJob(t, t.TempDir(), "job.xml", spec))
	require.NoError(t, err)

	_, err = job.ChainLength()

	var invalid *InvalidInputError
	require.True(t, errors.As(err, &invalid), "expected InvalidInputError, got %v", err)
	assert.Contains(t, invalid.Reason, "chainLength")
}

func TestHasScreenLog(t *testing.T) {
	dir := t.TempDir()

	withLog, err := LoadJob(testutil.WriteJob(t, dir, "with.xml", testutil.DefaultJob(2)))
	require.NoError(t, err)
	assert.True(t, withLog.HasScreenLog())

	spec := testutil.DefaultJob(2)
	spec.ScreenLog = false
	without, err := LoadJob(testutil.WriteJob(t, dir, "without.xml", spec))
	require.NoError(t, err)
	assert.False(t, without.HasScreenLog())
}

func TestTaxonSequences_PairsInDocumentOrder(t *testing.T) {
	job, err := LoadJob(testutil.WriteJob(t, t.TempDir(), "job.xml", testutil.DefaultJob(4)))
	require.NoError(t, err)

	pairs, err := job.TaxonSequences()

	require.NoError(t, err)
	require.Len(t, pairs, 4)
	for i, p := range pairs {
		id := p.Taxon.SelectAttrValue("id", "")
		ref := p.Sequence.SelectElement("taxon").SelectAttrValue("idref", "")
		assert.Equal(t, id, ref, "pair %d", i)
	}
	assert.Equal(t, "seq1", pairs[0].Taxon.SelectAttrValue("id", ""))
}

func TestTaxonSequences_InvalidDocuments(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*testutil.JobSpec)
		reason string
	}{
		{"missing taxa", func(s *testutil.JobSpec) { s.OmitTaxa = true }, "taxa"},
		{"missing alignment", func(s *testutil.JobSpec) { s.OmitAlign = true }, "alignment"},
		{"length mismatch", func(s *testutil.JobSpec) { s.Sequences = 0 }, "sequences"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := testutil.DefaultJob(1)
			tc.mutate(&spec)
			job, err := LoadJob(testutil.WriteJob(t, t.TempDir(), "job.xml", spec))
			require.NoError(t, err)

			_, err = job.TaxonSequences()

			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Contains(t, invalid.Reason, tc.reason)
		})
	}
}

func TestLoadJob_MissingFile(t *testing.T) {
	_, err := LoadJob("does/not/exist.xml")
	assert.Error(t, err)
}
