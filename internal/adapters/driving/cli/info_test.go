package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/folio-cli/internal/core/domain"
	"github.com/folio-labs/folio-cli/internal/core/ports/driving"
)

func TestInfoCmd_Use(t *testing.T) {
	assert.Equal(t, "info [file]", infoCmd.Use)
}

func TestInfoCmd_RequiresExactlyOneArg(t *testing.T) {
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"info"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestInfoCmd_PrintsDocumentDetails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"info", "report.pdf"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "report.pdf")
	assert.Contains(t, out, "Pages:      3")
	assert.Contains(t, out, "595 x 842 pt")
	assert.Contains(t, out, "Test Document")
}

func TestInfoCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"info", "--json", "report.pdf"})
	defer func() {
		rootCmd.SetArgs(nil)
		infoJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	var info driving.DocumentInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Equal(t, 3, info.PageCount)
	assert.Equal(t, "Test Document", info.Metadata["title"])
}

func TestInfoCmd_RejectsNonPDF(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	fileValidator = &fakeValidator{valid: false}

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"info", "notes.txt"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}

func TestInfoCmd_UnreadableFile(t *testing.T) {
	cleanup := setupFailingLoader("bad header")
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"info", "broken.pdf"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrUnreadable)
}
