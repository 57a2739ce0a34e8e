package utils_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/address-label-converter/pkg/utils"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestDiscoverInputFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.XLSX", "c.txt", ".hidden.csv", "~$a.xlsx", "d.ods"} {
		touch(t, filepath.Join(dir, name))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0o755))

	fm := utils.NewFileManager(dir, t.TempDir(), t.TempDir())
	files, err := fm.DiscoverInputFiles()
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "a.XLSX"), filepath.Join(dir, "b.csv")}, files)
}

func TestArchiveInputFile(t *testing.T) {
	t.Parallel()

	in, archive := t.TempDir(), filepath.Join(t.TempDir(), "archive")
	fm := utils.NewFileManager(in, t.TempDir(), archive)

	first := filepath.Join(in, "list.csv")
	touch(t, first)
	got, err := fm.ArchiveInputFile(first)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(archive, "list.csv"), got)
	assert.NoFileExists(t, first)
	assert.FileExists(t, got)

	// A second file with the same name must not replace the first.
	touch(t, first)
	second, err := fm.ArchiveInputFile(first)
	require.NoError(t, err)
	assert.NotEqual(t, got, second)
	assert.FileExists(t, got)
	assert.FileExists(t, second)
}

func TestArchiveInputFileByDate(t *testing.T) {
	t.Parallel()

	in, archive := t.TempDir(), t.TempDir()
	fm := utils.NewFileManager(in, t.TempDir(), archive)
	fm.UseTimestampSubdirs = true

	input := filepath.Join(in, "list.csv")
	touch(t, input)
	got, err := fm.ArchiveInputFile(input)
	require.NoError(t, err)

	assert.Equal(t, archive, filepath.Dir(filepath.Dir(filepath.Dir(filepath.Dir(got)))))
	assert.Regexp(t, regexp.MustCompile(`\d{4}/\d{2}/\d{2}/list\.csv$`), filepath.ToSlash(got))
	assert.FileExists(t, got)
}

func TestEnsureDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	fm := utils.NewFileManager(
		filepath.Join(root, "in"),
		filepath.Join(root, "out"),
		filepath.Join(root, "archive", "nested"),
	)

	require.NoError(t, fm.EnsureDirectories())
	for _, dir := range []string{fm.InputDir, fm.OutputDir, fm.InputArchiveDir} {
		assert.DirExists(t, dir)
	}
}

func TestGenerateOutputFileName(t *testing.T) {
	t.Parallel()

	name := utils.GenerateOutputFileName("{name}_{uuid}", map[string]string{"name": "kunden"})
	assert.Regexp(t, regexp.MustCompile(`^kunden_[0-9a-f-]{36}\.csv$`), name)

	name = utils.GenerateOutputFileName("labels_{date}.CSV", nil)
	assert.Equal(t, "labels_"+time.Now().Format("20060102")+".CSV", name)
}

func TestWriteWarningLog(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "kunden.csv")

	path, err := utils.WriteWarningLog(out, "kunden.xlsx", nil)
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = utils.WriteWarningLog(out, "kunden.xlsx", []string{"Record 1: REFERENZ must be unique"})
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSuffix(out, ".csv")+"_warnings.txt", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Input:     kunden.xlsx")
	assert.Contains(t, string(data), "  Record 1: REFERENZ must be unique\n")
}

func TestWriteSummaryLog(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	path, err := utils.WriteSummaryLog(utils.ProcessingSummary{
		StartTime:       start,
		EndTime:         start.Add(2 * time.Second),
		TotalFiles:      2,
		SuccessfulFiles: 1,
		FailedFiles:     1,
		TotalRecords:    3,
		ProcessedFiles:  []utils.ProcessedFileInfo{{InputFile: "a.csv", OutputFile: "a_out.csv", Records: 3}},
		FailedFilesList: []utils.FailedFileInfo{{InputFile: "b.csv", ErrorMessage: "missing mapping"}},
	}, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "processing_summary_20260301_100002.txt", filepath.Base(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Duration:       2s")
	assert.Contains(t, string(data), "Error: missing mapping")
}
