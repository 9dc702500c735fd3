package documents

import "github.com/Cyannimazing/BCSystem-sub000/internal/forms"

// DocumentExport is the persistable form of a generated PDF. A new value is
// built on every call and the caller owns it from then on.
type DocumentExport struct {
	Base64PDF    string             `json:"base64PDF"`
	Title        string             `json:"title"`
	DocumentType forms.DocumentType `json:"document_type"`
	Metadata     map[string]string  `json:"metadata"`
}

// Archived describes a PDF copied to the archive bucket.
type Archived struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	URL    string `json:"url,omitempty"`
}
