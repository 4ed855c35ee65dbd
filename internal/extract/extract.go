// Package extract converts uploaded résumé documents to plain text.
package extract

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported reports whether ext is a file type the extractor handles.
func Supported(ext string) bool {
	switch ext {
	case "pdf", "docx", "txt":
		return true
	}
	return false
}

// Text converts raw document bytes of the declared type into plain text.
// A document that parses but yields no text returns an empty string, not an
// error; a byte stream the parser cannot open at all returns an error.
func Text(data []byte, ext string) (string, error) {
	switch ext {
	case "txt":
		return string(data), nil

	case "pdf":
		return pdfText(data)

	case "docx":
		return docxText(data)

	default:
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}
}

func pdfText(data []byte) (string, error) {
	r := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(r, int64(r.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// A page with no extractable text contributes nothing.
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

var (
	paragraphCloseRe = regexp.MustCompile(`</w:p>`)
	xmlTagRe         = regexp.MustCompile(`<[^>]*>`)
)

func docxText(data []byte) (string, error) {
	r := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(r, int64(r.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return flattenDocxXML(doc.Editable().GetContent()), nil
}

// flattenDocxXML turns document body XML into plain text, one paragraph per
// line.
func flattenDocxXML(content string) string {
	content = paragraphCloseRe.ReplaceAllString(content, "\n")
	content = xmlTagRe.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
