package model

// File is one uploaded input: a name plus its raw bytes.
type File struct {
	Name string
	Data []byte
}

// Finding is a single unknown word discovered in a document.
type Finding struct {
	Word     string `json:"word"`               // lower-cased candidate word
	Tag      string `json:"tag,omitempty"`      // dominant POS tag, "" when untagged
	Suggest  string `json:"suggest"`            // best correction, "" when none
	Distance int    `json:"distance,omitempty"` // Levenshtein(word, suggest)
}

// Analysis is the outcome of analyzing one document.
type Analysis struct {
	Findings     []Finding `json:"findings"` // discovery order
	UnknownCount int       `json:"unknownCount"`
	WordCount    int       `json:"wordCount"` // word-shaped tokens seen
	CharCount    int       `json:"charCount"` // UTF-8 rune length
}

// Row is one line of the cross-file report.
type Row struct {
	File    string `json:"file"`
	Word    string `json:"spelling_error"`
	Tag     string `json:"word_class,omitempty"`
	Suggest string `json:"correction"`
}

// BatchResult aggregates findings across one uploaded batch.
type BatchResult struct {
	Rows         []Row             `json:"rows"`              // discovery order across files
	Unique       []Row             `json:"unique"`            // deduplicated by word, first occurrence wins
	Corrected    map[string]string `json:"-"`                 // file name → corrected text
	Skipped      []string          `json:"skipped,omitempty"` // files skipped after a warning
	Files        int               `json:"files"`
	TotalUnknown int               `json:"totalUnknown"`
}
