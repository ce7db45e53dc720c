package domain

import "sort"

// FileType represents the allowed document types for extraction.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOC  FileType = "doc"
	FileTypeDOCX FileType = "docx"
	FileTypeTXT  FileType = "txt"
	FileTypePNG  FileType = "png"
	FileTypeJPG  FileType = "jpg"
)

// AllowedFileTypes maps FileType to the MIME content type sent to the OCR provider.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF:  "application/pdf",
	FileTypeDOC:  "application/msword",
	FileTypeDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FileTypeTXT:  "text/plain",
	FileTypePNG:  "image/png",
	FileTypeJPG:  "image/jpeg",
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"doc":  FileTypeDOC,
	"docx": FileTypeDOCX,
	"txt":  FileTypeTXT,
	"png":  FileTypePNG,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
}

// SniffedContentTypes maps FileType to the content type http.DetectContentType
// reports for it. Only formats with a distinctive magic-byte signature are
// listed; doc/docx/txt sniff as generic zip/text/octet-stream and are not checked.
var SniffedContentTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypePNG: "image/png",
	FileTypeJPG: "image/jpeg",
}

// SupportedFormats returns the accepted file extensions with leading dots,
// sorted, for health and error reporting.
func SupportedFormats() []string {
	formats := make([]string, 0, len(AllowedExtensions))
	for ext := range AllowedExtensions {
		formats = append(formats, "."+ext)
	}
	sort.Strings(formats)
	return formats
}
