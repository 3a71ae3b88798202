package lsp

import "sync"

// document is an open file and its most recent analysis. The analysis is
// computed lazily and dropped whenever the content changes.
type document struct {
	content string
	result  *AnalysisResult
}

// DocumentStore holds open document contents keyed by URI.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*document)}
}

func (s *DocumentStore) Open(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &document{content: content}
}

func (s *DocumentStore) Update(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &document{content: content}
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	return doc.content, true
}

// Analysis returns the analysis of the document at uri, running Analyze on
// first use after an open or update. It returns nil for unknown documents.
func (s *DocumentStore) Analysis(uri string) *AnalysisResult {
	s.mu.RLock()
	doc, ok := s.docs[uri]
	var cached *AnalysisResult
	if ok {
		cached = doc.result
	}
	s.mu.RUnlock()

	if !ok {
		return nil
	}
	if cached != nil {
		return cached
	}

	result := Analyze(uri, doc.content)

	s.mu.Lock()
	defer s.mu.Unlock()
	// Only cache if the document was not replaced while analyzing.
	if cur, ok := s.docs[uri]; ok && cur == doc {
		doc.result = result
	}
	return result
}
