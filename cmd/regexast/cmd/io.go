package cmd

import (
	"io"
	"os"

	"github.com/cwbudde/go-regexast/pkg/regexast"
)

// regexastSyntax is a local alias kept so flag wiring in root.go
// doesn't need to import pkg/regexast's Syntax name directly at every
// call site.
type regexastSyntax = regexast.Syntax

func readFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
