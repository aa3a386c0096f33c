package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputMissingCarriesPathAndCode(t *testing.T) {
	env := InputMissing("/tmp/missing.pdf", errors.New("stat: no such file"))
	assert.Equal(t, CodeInputMissing, env.Code)
	assert.Equal(t, "/tmp/missing.pdf", env.Path)
	assert.NotEmpty(t, env.CorrelationID)
	assert.Contains(t, env.Error(), "/tmp/missing.pdf")
}

func TestCollaboratorFailedWrapsOriginal(t *testing.T) {
	env := CollaboratorFailed("pdftotext", errors.New("exit status 2"))
	assert.Equal(t, CodeCollaboratorFailed, env.Code)
	assert.Equal(t, "exit status 2", env.Original)
}

func TestMalformedHypothesisHasNoPath(t *testing.T) {
	env := MalformedHypothesis("bbox contains NaN")
	assert.Equal(t, CodeMalformedHypothesis, env.Code)
	assert.Empty(t, env.Path)
}

func TestEnvelopeSatisfiesErrorInterface(t *testing.T) {
	var err error = ExportIO("/out/document.json", errors.New("disk full"))
	assert.Contains(t, err.Error(), "DOCSTRUCT_EXPORT_IO")
}
