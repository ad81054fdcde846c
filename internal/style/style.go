// Package style parses the --style option passed to clang-format.
package style

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default is the style used when none is given.
const Default = "Microsoft"

const filePrefix = "file:"

// Presets lists the built-in clang-format styles.
var Presets = []string{"LLVM", "GNU", "Google", "Chromium", "Microsoft", "Mozilla", "WebKit"}

// Kind tells how a style value is interpreted by clang-format.
type Kind int

const (
	KindPreset Kind = iota
	KindFile
	KindInline
)

// Style is a validated style option.
type Style struct {
	Kind  Kind
	Value string
	// Path is the explicit configuration file for file:<path> styles.
	Path string
	// Options holds the parsed keys of an inline style.
	Options map[string]any
}

// String returns the value handed to clang-format's --style flag.
func (s Style) String() string {
	return s.Value
}

// Parse validates value. Accepted forms are a preset name (case-insensitive),
// "none", "file", "file:<path>" and an inline mapping such as
// "{BasedOnStyle: llvm, IndentWidth: 8}".
func Parse(value string) (Style, error) {
	value = strings.TrimSpace(value)

	switch {
	case len(value) == 0:
		return Parse(Default)
	case strings.HasPrefix(value, "{"):
		return parseInline(value)
	case strings.EqualFold(value, "file"):
		return Style{Kind: KindFile, Value: "file"}, nil
	case strings.HasPrefix(value, filePrefix):
		return parseFile(value)
	case strings.EqualFold(value, "none"):
		return Style{Kind: KindPreset, Value: "none"}, nil
	}

	for _, preset := range Presets {
		if strings.EqualFold(preset, value) {
			return Style{Kind: KindPreset, Value: preset}, nil
		}
	}

	return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, value)
}

func parseInline(value string) (Style, error) {
	var opts map[string]any

	if err := yaml.Unmarshal([]byte(value), &opts); err != nil {
		return Style{}, fmt.Errorf("%w: %s", ErrInvalidInline, err)
	}

	if based, ok := opts["BasedOnStyle"].(string); ok {
		if _, err := Parse(based); err != nil {
			return Style{}, fmt.Errorf("%w: BasedOnStyle: %s", ErrInvalidInline, err)
		}
	}

	return Style{Kind: KindInline, Value: value, Options: opts}, nil
}

func parseFile(value string) (Style, error) {
	path := strings.TrimPrefix(value, filePrefix)
	if len(path) == 0 {
		return Style{}, fmt.Errorf("%w: empty path", ErrMissingFile)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Style{}, fmt.Errorf("%w: %s", ErrMissingFile, err)
	}

	if info.IsDir() {
		return Style{}, fmt.Errorf("%w: %s is a directory", ErrMissingFile, path)
	}

	return Style{Kind: KindFile, Value: value, Path: path}, nil
}

// Help describes the accepted style values.
func Help() string {
	presets := make([]string, len(Presets))

	for i, p := range Presets {
		if p == Default {
			p += " (default)"
		}

		presets[i] = p
	}

	return "coding style, one of: " + strings.Join(presets, ", ") +
		`; "file" loads .clang-format from a parent directory of the code;` +
		` "file:<path>" loads the given configuration file;` +
		` "{key: value, ...}" sets parameters inline, e.g. "{BasedOnStyle: llvm, IndentWidth: 8}"`
}

var (
	// ErrUnknownStyle is returned for a style name that is not a preset.
	ErrUnknownStyle = errors.New("unknown style")
	// ErrInvalidInline is returned when an inline style is not a valid mapping.
	ErrInvalidInline = errors.New("invalid inline style")
	// ErrMissingFile is returned when a file:<path> style names no readable file.
	ErrMissingFile = errors.New("style file not found")
)
