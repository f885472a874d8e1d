// Package encoder turns the contents of an input file into a C++ header that
// embeds the data as a static array, in either hex or raw-string form.
package encoder

import (
	"errors"
	"log/slog"
	"os"
	"text/template"

	"github.com/embedgen/file2header/internal/templates"
)

// Sentinel errors for the failure modes shared by both encoding modes. The
// CLI layer maps them to the exact diagnostics printed on the error stream.
var (
	ErrSameName    = errors.New("Input file and output file can't have the same name")
	ErrOpenInput   = errors.New("Couldn't open input file")
	ErrOpenOutput  = errors.New("Couldn't open output file")
	ErrInvalidName = errors.New("Invalid array name")
)

// Request describes a single conversion: which file to read, where to write
// the header, and the identifier of the generated array.
type Request struct {
	InputPath  string
	OutputPath string
	ArrayName  string
}

// headerData is the template payload for both header layouts.
type headerData struct {
	ArrayName string
	Data      []byte
}

// WriteHexHeader reads the input file as raw bytes and writes a header
// declaring a static const unsigned char array of 0xNN literals, eight per
// line. The output file is fully rewritten.
func WriteHexHeader(req Request) error {
	slog.Debug("writing hex header", "input", req.InputPath, "output", req.OutputPath, "array", req.ArrayName)
	return writeHeader(req, "hex.h.tmpl")
}

// WriteStringHeader reads the input file line by line and writes a header
// declaring a static const char raw-string literal holding the concatenated
// line content. The output file is fully rewritten.
func WriteStringHeader(req Request) error {
	slog.Debug("writing string header", "input", req.InputPath, "output", req.OutputPath, "array", req.ArrayName)
	return writeHeader(req, "string.h.tmpl")
}

// writeHeader performs the checks shared by both modes and renders the named
// template to the output path. Check order: same-name, input readable, array
// name valid, output writable. The array name is validated before the output
// file is created so a bad name never truncates an existing file.
func writeHeader(req Request, tmplName string) error {
	if req.InputPath == req.OutputPath {
		return ErrSameName
	}

	data, err := os.ReadFile(req.InputPath)
	if err != nil {
		return ErrOpenInput
	}

	if !ValidateArrayName(req.ArrayName) {
		return ErrInvalidName
	}

	return executeTemplate(tmplName, req.OutputPath, headerData{
		ArrayName: req.ArrayName,
		Data:      data,
	})
}

// executeTemplate loads a header template, parses it with the encoder func
// map, and executes it to the output path.
func executeTemplate(tmplName string, outputPath string, data interface{}) error {
	tmplContent, err := templates.Get(tmplName)
	if err != nil {
		return err
	}

	t, err := template.New(tmplName).Funcs(templateFuncMap()).Parse(tmplContent)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return ErrOpenOutput
	}
	defer f.Close()

	return t.Execute(f, data)
}
