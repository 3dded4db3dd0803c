package extract

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGettextExtractor_SupportsStandardExtensions(t *testing.T) {
	g := newGettextExtractor(Options{}.withDefaults())

	for _, f := range []string{"a.c", "b.cpp", "c.py", "d.java", "e.go", "data/app.appdata.xml"} {
		assert.True(t, g.IsFileSupported(f), f)
	}
	for _, f := range []string{"a.txt", "b.md", "Makefile"} {
		assert.False(t, g.IsFileSupported(f), f)
	}
}

func TestGettextExtractor_BuildsCommandLine(t *testing.T) {
	runner := &fakeRunner{}
	opts := Options{Runner: runner}.withDefaults()
	g := newGettextExtractor(opts)
	scratch := newTestScratch(t)

	spec := &SourceCodeSpec{
		BasePath: "/proj",
		Keywords: []string{"_", "N_:1", "ngettext:1,2"},
		Charset:  "ISO-8859-2",
	}

	out, err := g.Extract(context.Background(), scratch, spec, []string{"src/a.py", "src/b.py"})
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)

	call := runner.calls[0]
	assert.Equal(t, "xgettext", call.name)
	assert.Contains(t, call.args, "--force-po")
	assert.Contains(t, call.args, "--directory=/proj")
	assert.Contains(t, call.args, "--from-code=ISO-8859-2")
	assert.Contains(t, call.args, "-k_")
	assert.Contains(t, call.args, "-kN_:1")
	assert.Contains(t, call.args, "-kngettext:1,2")
	assert.Contains(t, call.args, "--add-comments=TRANSLATORS:")
	assert.NotContains(t, call.args, "-L")

	// The file list handed to --files-from holds exactly the claimed files.
	listFile := strings.TrimPrefix(call.argWithPrefix("--files-from="), "--files-from=")
	require.NotEmpty(t, listFile)
	data, err := os.ReadFile(listFile)
	require.NoError(t, err)
	assert.Equal(t, "src/a.py\nsrc/b.py\n", string(data))

	assert.Equal(t, call.argAfter("-o"), out.POTFile)
	assert.True(t, out.OK())
}

func TestGettextExtractor_DefaultsToUTF8(t *testing.T) {
	runner := &fakeRunner{}
	g := newGettextExtractor(Options{Runner: runner}.withDefaults())
	scratch := newTestScratch(t)

	_, err := g.Extract(context.Background(), scratch, &SourceCodeSpec{BasePath: "/p"}, []string{"a.c"})
	require.NoError(t, err)
	assert.Contains(t, runner.calls[0].args, "--from-code=UTF-8")
}

func TestGettextExtractor_ExtraFlagsFromHeader(t *testing.T) {
	runner := &fakeRunner{}
	g := newGettextExtractor(Options{Runner: runner}.withDefaults())
	scratch := newTestScratch(t)

	spec := &SourceCodeSpec{
		BasePath: "/p",
		XHeaders: map[string]string{
			"X-Poedit-Flags-xgettext": "--add-comments=NOTE --no-location",
		},
	}

	_, err := g.Extract(context.Background(), scratch, spec, []string{"a.c"})
	require.NoError(t, err)

	args := runner.calls[0].args
	assert.Contains(t, args, "--add-comments=NOTE")
	assert.Contains(t, args, "--no-location")
	// The default TRANSLATORS: comment flag must yield to the user's.
	assert.NotContains(t, args, "--add-comments=TRANSLATORS:")
}

func TestGettextExtractor_ForcedLanguage(t *testing.T) {
	runner := &fakeRunner{}
	opts := Options{Runner: runner}.withDefaults()
	g := newNonstandardPHPExtractor(opts)

	assert.True(t, g.IsFileSupported("view.phtml"))
	assert.True(t, g.IsFileSupported("view.ctp"))
	assert.Equal(t, "gettext-php", g.ID())

	scratch := newTestScratch(t)
	_, err := g.Extract(context.Background(), scratch, &SourceCodeSpec{BasePath: "/p"}, []string{"view.phtml"})
	require.NoError(t, err)
	assert.Equal(t, "php", runner.calls[0].argAfter("-L"))
}

func TestGettextExtractor_NonZeroExitAborts(t *testing.T) {
	runner := &fakeRunner{
		exitCode: 1,
		stderr:   []byte("src/a.py:3: error: bad token\n"),
	}
	g := newGettextExtractor(Options{Runner: runner}.withDefaults())
	scratch := newTestScratch(t)

	out, err := g.Extract(context.Background(), scratch, &SourceCodeSpec{BasePath: "/p"}, []string{"src/a.py"})
	require.Error(t, err)

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrUnspecified, kind)

	// Diagnostics accompany the failure even though the run aborted.
	assert.False(t, out.OK())
	require.Len(t, out.Diagnostics, 1)
	assert.Equal(t, "bad token", out.Diagnostics[0].Message)
}

func TestGettextExtractor_WarningsDoNotFailTheRun(t *testing.T) {
	runner := &fakeRunner{
		stderr: []byte("src/a.py:3: warning: fuzzy context\n"),
	}
	g := newGettextExtractor(Options{Runner: runner}.withDefaults())
	scratch := newTestScratch(t)

	out, err := g.Extract(context.Background(), scratch, &SourceCodeSpec{BasePath: "/p"}, []string{"src/a.py"})
	require.NoError(t, err)

	assert.True(t, out.OK())
	require.Len(t, out.Diagnostics, 1)
	assert.Equal(t, SeverityWarning, out.Diagnostics[0].Severity)
}
