package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/render"
)

// outputOpts holds the --output and --format flags.
type outputOpts struct {
	output  string
	formats string
}

// resolveFormats picks the formats to render. An explicit --format wins, then
// the extension of --output, then SVG. Without --output the caller prints
// text, so no formats are returned.
func (o *outputOpts) resolveFormats() []string {
	if f := parseFormats(o.formats); len(f) > 0 {
		return f
	}
	if o.output == "" {
		return nil
	}
	if ext := strings.TrimPrefix(filepath.Ext(o.output), "."); slices.Contains(render.Formats, ext) {
		return []string{ext}
	}
	return []string{render.FormatSVG}
}

// checkStdout rejects output that cannot be written to a terminal.
func (o *outputOpts) checkStdout(formats []string) error {
	if o.output != "" {
		return nil
	}
	if len(formats) > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "multiple formats need --output")
	}
	for _, f := range formats {
		if isBinary(f) {
			return errors.New(errors.ErrCodeInvalidInput, "%s output needs --output", f)
		}
	}
	return nil
}

func isBinary(format string) bool {
	return format == render.FormatPNG || format == render.FormatPDF
}

func anyBinary(formats []string) bool {
	return slices.ContainsFunc(formats, isBinary)
}

// basePath strips a known format extension from output, so "maze.svg" with
// formats svg,png becomes maze.svg and maze.png.
func basePath(output string) string {
	ext := filepath.Ext(output)
	if slices.Contains(render.Formats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to its file. A single format is written to
// output verbatim.
func outputPaths(output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// writeArtifacts writes each rendered format to its file, or to stdout when
// no output path was given. It returns the files written, in format order.
func writeArtifacts(stdout io.Writer, output string, formats []string, artifacts map[string][]byte) ([]string, error) {
	if output == "" {
		for _, f := range formats {
			if _, err := stdout.Write(artifacts[f]); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	paths := outputPaths(output, formats)
	written := make([]string, 0, len(formats))
	for _, f := range formats {
		path := paths[f]
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return written, err
			}
		}
		if err := os.WriteFile(path, artifacts[f], 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", f, err)
		}
		written = append(written, path)
	}
	return written, nil
}
