package argload

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorKindsAreDistinct(t *testing.T) {
	unknown := UnknownFlagError(errors.New("x"))
	missing := MissingArgumentError(errors.New("x"))
	malformed := MalformedLineError(errors.New("x"))
	help := HelpRequested()

	assert.True(t, IsUnknownFlag(unknown), "unknown is unknown")
	assert.False(t, IsUnknownFlag(missing), "missing is not unknown")
	assert.False(t, IsUnknownFlag(malformed), "malformed is not unknown")

	assert.True(t, IsMissingArgument(missing), "missing is missing")
	assert.False(t, IsMissingArgument(unknown), "unknown is not missing")

	assert.True(t, IsMalformedLine(malformed), "malformed is malformed")
	assert.False(t, IsMalformedLine(help), "help is not malformed")

	assert.True(t, IsHelpRequest(help), "help is help")
	assert.False(t, IsHelpRequest(unknown), "unknown is not help")
}

func TestErrorKindsSurviveWrapping(t *testing.T) {
	err := errors.Wrap(UnknownFlagError(errors.New("x")), "context")
	assert.True(t, IsUnknownFlag(err), "classification survives wrapping")
}

func TestNilAnnotation(t *testing.T) {
	assert.NoError(t, UnknownFlagError(nil), "nil in, nil out")
	assert.NoError(t, MissingArgumentError(nil), "nil in, nil out")
	assert.NoError(t, MalformedLineError(nil), "nil in, nil out")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil), "nil")
	assert.Equal(t, ExitSuccess, ExitCode(HelpRequested()), "help")
	assert.Equal(t, ExitUnknownFlag, ExitCode(UnknownFlagError(errors.New("x"))), "unknown flag")
	assert.Equal(t, ExitMalformedLine, ExitCode(MalformedLineError(errors.New("x"))), "malformed line")
	assert.Equal(t, ExitMissingArgument, ExitCode(MissingArgumentError(errors.New("x"))), "missing argument")
	assert.Equal(t, ExitUnknownFlag, ExitCode(errors.New("disk on fire")), "unclassified")
}
