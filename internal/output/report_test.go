package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/BeforeMyCompileFails/PDFtoText/pkg/types"
)

func TestBuildReport(t *testing.T) {
	r := BuildReport(sampleDoc())

	assert.Equal(t, "scan.pdf", r.Source)
	assert.Equal(t, 3, r.PageCount)
	assert.Equal(t, 2, r.NativePages)
	assert.Equal(t, 1, r.OCRPages)
	assert.Equal(t, 19, r.Characters)

	require.Len(t, r.Pages, 3)
	assert.Equal(t, PageReport{Page: 2, Method: types.MethodOCR, Characters: 9}, r.Pages[1])
}

func TestSaveReportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.report.yaml")
	require.NoError(t, SaveReport(path, sampleDoc()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Report
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, BuildReport(sampleDoc()), got)
}
