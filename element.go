package domscan

// VisibleElement is the flat descriptor produced by the secondary
// extraction pass. It trades the indexed block's compactness for
// per-element geometry and an explicit interactivity flag, and is judged by
// computed style alone, without hit-testing.
type VisibleElement struct {
	XPath         string            `json:"xpath"`
	Text          string            `json:"text"`
	TagName       string            `json:"tagName"`
	IsInteractive bool              `json:"isInteractive"`
	Attributes    map[string]string `json:"attributes"`
	BoundingBox   Rect              `json:"boundingBox"`
	ChunkID       int               `json:"chunkId"`
}

// AssignChunks labels each element with the vertical band it belongs to.
// The viewport height is divided into chunkSize bands; elements below the
// viewport land in bands past the visible range.
func AssignChunks(elems []*VisibleElement, viewportHeight float64, chunkSize int) {
	if viewportHeight <= 0 || chunkSize <= 0 {
		return
	}
	band := viewportHeight / float64(chunkSize)
	for _, el := range elems {
		el.ChunkID = int(el.BoundingBox.Y / band)
	}
}
