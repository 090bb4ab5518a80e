package citygml

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CanonicalExtension is the file extension CityGML documents are written
// with, regardless of the caller-supplied one.
const CanonicalExtension = "gml"

// WriteDocument renders the document to indented XML and writes it under
// outputPath, creating parent directories as needed. The path's extension
// is normalized to .gml; the final path is returned.
//
// The write is not atomic: a fault mid-write leaves a partial or missing
// file, never a rollback to a prior version.
func WriteDocument(doc *CityModel, outputPath string) (string, error) {
	finalPath := normalizeExtension(outputPath)

	if dir := filepath.Dir(finalPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}

	f, err := os.Create(finalPath)
	if err != nil {
		return "", fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(xml.Header); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	return finalPath, nil
}

func normalizeExtension(path string) string {
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, "."+CanonicalExtension) {
		return path
	}
	return strings.TrimSuffix(path, ext) + "." + CanonicalExtension
}
