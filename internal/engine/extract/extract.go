// Package extract converts raw resume documents into a flat text stream.
// Libraries used: github.com/ledongthuc/pdf (PDF) and
// github.com/nguyenthenguyen/docx (DOCX).
package extract

import (
	"bytes"
	"encoding/xml"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Text extracts plain text from document bytes, dispatching on the file
// extension: .pdf and .docx are parsed, anything else is decoded as UTF-8.
// Extraction never fails outward; unreadable or corrupt input yields "",
// which downstream components treat as "no information found".
func Text(data []byte, filename string) (text string) {
	// Malformed documents can panic inside the parsers; map that to the
	// same empty-text result as a plain parse error.
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	default:
		if !utf8.Valid(data) {
			return ""
		}
		return string(data)
	}
}

// pdfText extracts per-page text and joins pages with newlines.
func pdfText(data []byte) string {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			content = ""
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, "\n")
}

// docxText extracts per-paragraph text and joins paragraphs with newlines.
func docxText(data []byte) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	defer doc.Close()
	return flattenDocumentXML(doc.Editable().GetContent())
}

// flattenDocumentXML strips WordprocessingML markup, emitting a newline at
// each paragraph or line-break boundary.
func flattenDocumentXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ""
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
