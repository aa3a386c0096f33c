package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounterAccumulates(t *testing.T) {
	r := NewRegistry()
	r.Counter("pages.processed", 1)
	r.Counter("pages.processed", 1)
	assert.Equal(t, 2.0, r.CounterValue("pages.processed"))
}

func TestHistogramRecordsSamplesInOrder(t *testing.T) {
	r := NewRegistry()
	r.Histogram("collaborator.pdftotext", 10*time.Millisecond)
	r.Histogram("collaborator.pdftotext", 20*time.Millisecond)

	samples := r.HistogramSamples("collaborator.pdftotext")
	if assert.Len(t, samples, 2) {
		assert.Equal(t, 10*time.Millisecond, samples[0])
		assert.Equal(t, 20*time.Millisecond, samples[1])
	}
}

func TestSummarySumsDurations(t *testing.T) {
	r := NewRegistry()
	r.Histogram("export.write", 5*time.Millisecond)
	r.Histogram("export.write", 7*time.Millisecond)
	assert.Equal(t, 12*time.Millisecond, r.Summary("export.write"))
}

func TestUnknownNameReturnsZeroValue(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 0.0, r.CounterValue("nope"))
	assert.Empty(t, r.HistogramSamples("nope"))
}
