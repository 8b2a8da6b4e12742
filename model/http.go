package model

type TransposeChordRequest struct {
	Chord     string `json:"chord"`
	Semitones int    `json:"semitones"`
	Notation  string `json:"notation,omitempty"`
}

type TransposeChordResponse struct {
	Chord string `json:"chord"`
}

// TransposeProgressionRequest carries either a sequence of chords or free
// text, never both. The response mirrors whichever shape was sent.
type TransposeProgressionRequest struct {
	Chords    []string `json:"chords,omitempty"`
	Text      string   `json:"text,omitempty"`
	Semitones int      `json:"semitones"`
	Notation  string   `json:"notation,omitempty"`
}

type TransposeProgressionResponse struct {
	Chords []string `json:"chords,omitempty"`
	Text   string   `json:"text,omitempty"`
}

type KeyInfoResponse struct {
	Key      string `json:"key"`
	Relative string `json:"relative"`
	Parallel string `json:"parallel"`
	Notation string `json:"notation"`
}

type ScaleResponse struct {
	Notes []string `json:"notes"`
}

type NotesResponse struct {
	Sharp []string `json:"sharp"`
	Flat  []string `json:"flat"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
