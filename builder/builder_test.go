package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obstools/headerdoc/config"
)

// mapFetcher serves spec file contents from memory.
type mapFetcher map[string]string

func (m mapFetcher) Fetch(_ context.Context, name string) ([]byte, error) {
	body, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("spec file not found: %s", name)
	}
	return []byte(body), nil
}

func testFetcher() mapFetcher {
	return mapFetcher{
		"primary-groups": "BLANK TEL ---- Telescope information ----\n",
		"merged-primary": "HEADVER STRING 1.4 Version of the header\n" +
			"TEL:RA FLOAT 0.0 Right ascension\n",
		"ats-primary": "TEL:DEC FLOAT 0.0 Declination\n",
		"extended":    "AMPID INT None Amplifier identifier\n",
	}
}

func TestBuilder_Run(t *testing.T) {
	dir := t.TempDir()
	build := config.BuildConfig{
		Name:   "lsstcam-primary",
		Files:  []string{"primary-groups", "merged-primary"},
		Output: filepath.Join(dir, "lsstcam-primary.tex"),
	}

	b := New(testFetcher(), nil)
	require.NoError(t, b.Run(context.Background(), build))

	body, err := os.ReadFile(build.Output)
	require.NoError(t, err)
	out := string(body)

	assert.True(t, strings.HasPrefix(out, "Header Version: 1.4\n"))
	assert.Contains(t, out, `\subsubsection{Telescope information}`)
	assert.Contains(t, out, `RA & FLOAT & Right ascension \\`)
}

func TestBuilder_GroupsAccumulateAcrossBuilds(t *testing.T) {
	dir := t.TempDir()
	builds := []config.BuildConfig{
		{
			Name:   "lsstcam-primary",
			Files:  []string{"primary-groups", "merged-primary"},
			Output: filepath.Join(dir, "lsstcam-primary.tex"),
		},
		{
			// No group definitions of its own; the heading must come
			// from the first build's group set.
			Name:   "auxtel-primary",
			Files:  []string{"ats-primary"},
			Output: filepath.Join(dir, "auxtel-primary.tex"),
		},
	}

	b := New(testFetcher(), nil)
	require.NoError(t, b.RunAll(context.Background(), builds))

	body, err := os.ReadFile(builds[1].Output)
	require.NoError(t, err)
	out := string(body)

	assert.Contains(t, out, `\subsubsection{Telescope information}`)
	assert.Contains(t, out, `DEC & FLOAT & Declination \\`)
	assert.NotContains(t, out, "Right ascension", "card sets do not carry over between builds")
	assert.True(t, strings.HasPrefix(out, "Header Version: 1.4\n"),
		"header version from the first build carries to later ones")
}

func TestBuilder_RunFetchFailure(t *testing.T) {
	build := config.BuildConfig{
		Name:   "broken",
		Files:  []string{"no-such-file"},
		Output: filepath.Join(t.TempDir(), "broken.tex"),
	}

	b := New(testFetcher(), nil)
	err := b.Run(context.Background(), build)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Contains(t, err.Error(), "no-such-file")
	assert.NoFileExists(t, build.Output, "a failed build writes no output")
}

func TestBuilder_RunCSV(t *testing.T) {
	dir := t.TempDir()
	build := config.BuildConfig{
		Name:   "amplifier",
		Files:  []string{"extended"},
		Output: filepath.Join(dir, "amplifier.tex"),
	}

	b := New(testFetcher(), nil)
	out, err := b.RunCSV(context.Background(), build, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "amplifier.tsv"), out)

	body, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Source\tGroup\tHeader\tType\tSpec\tDescription\tExample\tNotes", lines[0])
	assert.Equal(t, "extended\tNone\tAMPID\tINT\tNone\tAmplifier identifier\t\t", lines[1])
}

func TestCSVOutputPath(t *testing.T) {
	assert.Equal(t, "amplifier.tsv", csvOutputPath("amplifier.tex"))
	assert.Equal(t, "out/doc.tsv", csvOutputPath("out/doc.tex"))
	assert.Equal(t, "plain.tsv", csvOutputPath("plain"))
}
