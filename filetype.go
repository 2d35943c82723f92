package turbosign

import "strings"

// fileTypeInfo is a sniffed MIME type and file extension.
type fileTypeInfo struct {
	MimeType  string
	Extension string
}

// detectFileType sniffs a document's type from its magic bytes. PDFs start
// with %PDF; DOCX and PPTX are ZIP containers distinguished by their
// internal directory names.
func detectFileType(data []byte) fileTypeInfo {
	if len(data) < 4 {
		return fileTypeInfo{MimeType: "application/octet-stream", Extension: "bin"}
	}

	if data[0] == 0x25 && data[1] == 0x50 && data[2] == 0x44 && data[3] == 0x46 {
		return fileTypeInfo{MimeType: "application/pdf", Extension: "pdf"}
	}

	if data[0] == 0x50 && data[1] == 0x4B {
		headerLen := len(data)
		if headerLen > 2000 {
			headerLen = 2000
		}
		header := string(data[:headerLen])

		if strings.Contains(header, "ppt/") {
			return fileTypeInfo{
				MimeType:  "application/vnd.openxmlformats-officedocument.presentationml.presentation",
				Extension: "pptx",
			}
		}
		// Treat unidentified ZIP containers as DOCX, the common case.
		return fileTypeInfo{
			MimeType:  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Extension: "docx",
		}
	}

	return fileTypeInfo{MimeType: "application/octet-stream", Extension: "bin"}
}
