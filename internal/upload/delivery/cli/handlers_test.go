package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/upload"
	"orderdesk/pkg/locale"
	"orderdesk/pkg/log"
)

type fakeUseCase struct {
	in      upload.UploadInput
	content string
	out     upload.UploadOutput
	err     error
}

func (f *fakeUseCase) Upload(_ context.Context, in upload.UploadInput) (upload.UploadOutput, error) {
	f.in = in
	b, err := io.ReadAll(in.Content)
	if err != nil {
		return upload.UploadOutput{}, err
	}
	f.content = string(b)
	return f.out, f.err
}

func run(t *testing.T, uc upload.UseCase, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	root := &cobra.Command{Use: "orderdesk", SilenceErrors: true, SilenceUsage: true}
	root.AddCommand(New(log.NewNopLogger(), uc, fs).Commands()...)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(locale.SetLocaleToContext(context.Background(), locale.EN))
	return out.String(), err
}

func TestUpload(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docs/receipt.pdf", []byte("pdf"), 0o600))

	uc := &fakeUseCase{out: upload.UploadOutput{FileID: "f1", FileName: "receipt.pdf", URL: "/files/f1", Size: 3}}
	out, err := run(t, uc, fs, "upload", "/docs/receipt.pdf", "-f", "orderNo=SO-1")
	require.NoError(t, err)

	assert.Equal(t, "/docs/receipt.pdf", uc.in.FileName)
	assert.Equal(t, map[string]string{"orderNo": "SO-1"}, uc.in.Fields)
	assert.Equal(t, "pdf", uc.content)
	assert.Contains(t, out, "Uploaded receipt.pdf")
	assert.Contains(t, out, "/files/f1")
	assert.Contains(t, out, "3 B")
}

func TestUploadMissingFile(t *testing.T) {
	uc := &fakeUseCase{}
	_, err := run(t, uc, afero.NewMemMapFs(), "upload", "/nope.txt")
	require.Error(t, err)
	assert.Empty(t, uc.in.FileName)
}

func TestUploadUseCaseError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a.txt", []byte("x"), 0o600))

	_, err := run(t, &fakeUseCase{err: upload.ErrNotLoggedIn}, fs, "upload", "/a.txt")
	assert.ErrorIs(t, err, upload.ErrNotLoggedIn)
}
